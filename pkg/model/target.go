package model

import "time"

// Target association owner types. Link-owned associations are direct
// (account-level) grants; Attribute-owned associations are group-level
// grants inherited by the group's members.
const (
	OwnerTypeLink      = "Link"
	OwnerTypeAttribute = "Attribute"
)

// Target represents a privileged-access container (safe) discovered by
// target aggregation. NativeObjectID is the container's value on the PAM
// application's managed-attribute representation.
type Target struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	DisplayName    string    `gorm:"column:display_name"`
	NativeObjectID string    `gorm:"column:native_object_id;not null"`
	ApplicationID  string    `gorm:"column:application_id;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Target) TableName() string {
	return "targets"
}

// DisplayableName returns the display name, falling back to the name.
func (t Target) DisplayableName() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// TargetAssociation links an account (OwnerTypeLink) or a group
// (OwnerTypeAttribute) to a container with a set of rights. Rights is a
// comma-separated list, matching how target collectors aggregate them.
type TargetAssociation struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	TargetID  string `gorm:"column:target_id;not null"`
	ObjectID  string `gorm:"column:object_id;not null"`
	OwnerType string `gorm:"column:owner_type;not null"`
	Rights    string `gorm:"column:rights"`
	Source    string `gorm:"column:source"`
}

func (TargetAssociation) TableName() string {
	return "target_associations"
}
