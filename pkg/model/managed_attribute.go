package model

import "time"

// Managed-attribute object types.
const (
	ObjectTypeGroup          = "group"
	ObjectTypeContainer      = "Container"
	ObjectTypePrivilegedData = "PrivilegedData"
)

// ManagedAttribute represents an entitlement-bearing object on an
// application: a group, a container or a privileged-data item. Attribute
// and Value identify the account attribute granting it (for groups).
// Key1..Key4 are correlation-key columns declared by the application's
// group schema; stub groups carry the external group's native identifier
// and source application name in them.
type ManagedAttribute struct {
	ID            string     `gorm:"column:id;primaryKey"`
	ApplicationID string     `gorm:"column:application_id;not null"`
	Type          string     `gorm:"column:type;not null"`
	Attribute     string     `gorm:"column:attribute"`
	Value         string     `gorm:"column:value;not null"`
	DisplayName   string     `gorm:"column:display_name"`
	OwnerName     string     `gorm:"column:owner_name"`
	Key1          string     `gorm:"column:key1"`
	Key2          string     `gorm:"column:key2"`
	Key3          string     `gorm:"column:key3"`
	Key4          string     `gorm:"column:key4"`
	Attributes    Attributes `gorm:"column:attributes;type:jsonb"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (ManagedAttribute) TableName() string {
	return "managed_attributes"
}

// DisplayableName returns the display name, falling back to the value.
func (ma ManagedAttribute) DisplayableName() string {
	if ma.DisplayName != "" {
		return ma.DisplayName
	}
	return ma.Value
}

// Key returns the named correlation-key column value ("key1".."key4").
func (ma ManagedAttribute) Key(name string) string {
	switch name {
	case "key1":
		return ma.Key1
	case "key2":
		return ma.Key2
	case "key3":
		return ma.Key3
	case "key4":
		return ma.Key4
	}
	return ""
}
