package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// Ensure ObjectStore implements store.ObjectStore
var _ store.ObjectStore = (*ObjectStore)(nil)

// ObjectStore implements store.ObjectStore using GORM
type ObjectStore struct {
	db *gorm.DB
}

// NewObjectStore creates a new ObjectStore
func NewObjectStore(db *gorm.DB) *ObjectStore {
	return &ObjectStore{db: db}
}

func (s *ObjectStore) FetchTarget(id string) (*model.Target, error) {
	var target model.Target
	tx := s.db.Where(&model.Target{ID: id}).First(&target)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &target, nil
}

func (s *ObjectStore) FindTargets(f query.Filter) ([]model.Target, error) {
	cond, args := query.Compile(f)

	var targets []model.Target
	tx := s.db.Raw(`
		SELECT t.* FROM targets t WHERE `+cond+` ORDER BY t.name
	`, args...).Scan(&targets)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return targets, nil
}

func (s *ObjectStore) FetchApplication(id string) (*model.Application, error) {
	var app model.Application
	tx := s.db.Where(&model.Application{ID: id}).First(&app)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &app, nil
}

func (s *ObjectStore) FetchApplicationByName(name string) (*model.Application, error) {
	var app model.Application
	tx := s.db.Where(&model.Application{Name: name}).First(&app)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &app, nil
}

func (s *ObjectStore) FetchIdentity(id string) (*model.Identity, error) {
	var identity model.Identity
	tx := s.db.Where(&model.Identity{ID: id}).First(&identity)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &identity, nil
}

func (s *ObjectStore) FetchLink(id string) (*model.Link, error) {
	var link model.Link
	tx := s.db.Where(&model.Link{ID: id}).First(&link)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &link, nil
}

func (s *ObjectStore) FindLinks(f query.Filter) ([]model.Link, error) {
	cond, args := query.Compile(f)

	var links []model.Link
	tx := s.db.Raw(`
		SELECT l.* FROM links l WHERE `+cond+` ORDER BY l.id
	`, args...).Scan(&links)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return links, nil
}

func (s *ObjectStore) FetchManagedAttribute(applicationID, value, objectType string) (*model.ManagedAttribute, error) {
	var ma model.ManagedAttribute
	tx := s.db.Where(&model.ManagedAttribute{
		ApplicationID: applicationID,
		Value:         value,
		Type:          objectType,
	}).First(&ma)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &ma, nil
}

func (s *ObjectStore) FetchManagedAttributeByID(id string) (*model.ManagedAttribute, error) {
	var ma model.ManagedAttribute
	tx := s.db.Where(&model.ManagedAttribute{ID: id}).First(&ma)
	if tx.Error != nil {
		return nil, ignoreNotFound(tx.Error)
	}
	return &ma, nil
}

func (s *ObjectStore) FindManagedAttributes(f query.Filter) ([]model.ManagedAttribute, error) {
	cond, args := query.Compile(f)

	var mas []model.ManagedAttribute
	tx := s.db.Raw(`
		SELECT g.* FROM managed_attributes g WHERE `+cond+` ORDER BY g.value, g.id
	`, args...).Scan(&mas)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return mas, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
