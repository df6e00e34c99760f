package gorm

import (
	"strings"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// Ensure AccessStore implements store.AccessStore
var _ store.AccessStore = (*AccessStore)(nil)

// AccessStore implements store.AccessStore using GORM
type AccessStore struct {
	db *gorm.DB
}

// NewAccessStore creates a new AccessStore
func NewAccessStore(db *gorm.DB) *AccessStore {
	return &AccessStore{db: db}
}

func (s *AccessStore) CountIdentities(f query.Filter) (int, error) {
	cond, args := query.Compile(f)

	var count int
	tx := s.db.Raw(`
		SELECT COUNT(DISTINCT i.id) FROM identities i WHERE `+cond+`
	`, args...).Scan(&count)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return count, nil
}

func (s *AccessStore) SearchIdentityIDs(f query.Filter) ([]string, error) {
	cond, args := query.Compile(f)

	type idRow struct {
		ID string `gorm:"column:id"`
	}
	var rows []idRow
	tx := s.db.Raw(`
		SELECT DISTINCT i.id FROM identities i WHERE `+cond+` ORDER BY i.id
	`, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (s *AccessStore) CountGroupAssociations(targetID string) (int, error) {
	var count int
	tx := s.db.Raw(`
		SELECT COUNT(*) FROM target_associations ta
		WHERE ta.target_id = ? AND ta.owner_type = ?
	`, targetID, model.OwnerTypeAttribute).Scan(&count)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return count, nil
}

func (s *AccessStore) DirectPermissions(targetID, identityID string) ([]store.LinkGrant, error) {
	type grantRow struct {
		LinkID          string `gorm:"column:link_id"`
		IdentityID      string `gorm:"column:identity_id"`
		ApplicationID   string `gorm:"column:application_id"`
		ApplicationName string `gorm:"column:application_name"`
		Instance        string `gorm:"column:instance"`
		NativeIdentity  string `gorm:"column:native_identity"`
		DisplayName     string `gorm:"column:display_name"`
		Rights          string `gorm:"column:rights"`
		Source          string `gorm:"column:source"`
	}

	var rows []grantRow
	tx := s.db.Raw(`
		SELECT l.id AS link_id, l.identity_id, l.application_id,
		       a.name AS application_name, l.instance, l.native_identity,
		       l.display_name, ta.rights, ta.source
		FROM links l
		JOIN target_associations ta ON ta.object_id = l.id AND ta.owner_type = ?
		JOIN applications a ON a.id = l.application_id
		WHERE ta.target_id = ? AND l.identity_id = ?
		ORDER BY l.id, ta.id
	`, model.OwnerTypeLink, targetID, identityID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	grants := make([]store.LinkGrant, 0, len(rows))
	for _, row := range rows {
		grants = append(grants, store.LinkGrant{
			Link: model.Link{
				ID:             row.LinkID,
				IdentityID:     row.IdentityID,
				ApplicationID:  row.ApplicationID,
				Instance:       row.Instance,
				NativeIdentity: row.NativeIdentity,
				DisplayName:    row.DisplayName,
			},
			ApplicationName: row.ApplicationName,
			Rights:          splitRights(row.Rights),
			Source:          row.Source,
		})
	}
	return grants, nil
}

func (s *AccessStore) EffectiveGroups(f query.Filter) ([]store.GroupRow, error) {
	cond, args := query.Compile(f)

	type groupRow struct {
		ID          string `gorm:"column:id"`
		Value       string `gorm:"column:value"`
		DisplayName string `gorm:"column:display_name"`
	}
	var rows []groupRow
	tx := s.db.Raw(`
		SELECT DISTINCT g.id, g.value, g.display_name
		FROM identity_entitlements ie
		JOIN managed_attributes g
		  ON g.attribute = ie.name AND g.value = ie.value
		 AND g.application_id = ie.application_id
		WHERE `+cond+`
		ORDER BY g.value, g.id
	`, args...).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	groups := make([]store.GroupRow, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, store.GroupRow{
			ID:          row.ID,
			Value:       row.Value,
			DisplayName: row.DisplayName,
		})
	}
	return groups, nil
}

func (s *AccessStore) ObjectAssociations(targetID, objectID string) ([]store.Association, error) {
	type assocRow struct {
		Rights string `gorm:"column:rights"`
		Source string `gorm:"column:source"`
	}
	var rows []assocRow
	tx := s.db.Raw(`
		SELECT ta.rights, ta.source FROM target_associations ta
		WHERE ta.target_id = ? AND ta.object_id = ? AND ta.owner_type = ?
		ORDER BY ta.id
	`, targetID, objectID, model.OwnerTypeAttribute).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	assocs := make([]store.Association, 0, len(rows))
	for _, row := range rows {
		assocs = append(assocs, store.Association{
			Rights: splitRights(row.Rights),
			Source: row.Source,
		})
	}
	return assocs, nil
}

// splitRights splits the comma-separated rights list aggregated by target
// collectors.
func splitRights(rights string) []string {
	if rights == "" {
		return []string{}
	}
	parts := strings.Split(rights, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
