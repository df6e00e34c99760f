package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
)

// Ensure CaseStore implements store.CaseStore
var _ store.CaseStore = (*CaseStore)(nil)

// CaseStore implements store.CaseStore using GORM
type CaseStore struct {
	db *gorm.DB
}

// NewCaseStore creates a new CaseStore
func NewCaseStore(db *gorm.DB) *CaseStore {
	return &CaseStore{db: db}
}

func (s *CaseStore) CountPendingCases(targetID, targetClass string) (int, error) {
	var count int
	tx := s.db.Raw(`
		SELECT COUNT(*) FROM workflow_cases
		WHERE target_id = ? AND target_class = ? AND completed_at IS NULL
	`, targetID, targetClass).Scan(&count)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return count, nil
}
