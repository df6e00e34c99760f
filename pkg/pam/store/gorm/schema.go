package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
)

// Ensure SchemaStore implements store.SchemaStore
var _ store.SchemaStore = (*SchemaStore)(nil)

// SchemaStore implements store.SchemaStore using GORM
type SchemaStore struct {
	db *gorm.DB
}

// NewSchemaStore creates a new SchemaStore
func NewSchemaStore(db *gorm.DB) *SchemaStore {
	return &SchemaStore{db: db}
}

func (s *SchemaStore) ListSchemaAttributes(applicationID, schemaKind string) ([]model.SchemaAttribute, error) {
	var attrs []model.SchemaAttribute
	tx := s.db.Raw(`
		SELECT * FROM schema_attributes
		WHERE application_id = ? AND schema_kind = ?
		ORDER BY attribute_name
	`, applicationID, schemaKind).Scan(&attrs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return attrs, nil
}
