package model

import "time"

// Application represents a managed system: either the PAM system itself or
// an external identity-management application that groups and accounts can
// be sourced from.
type Application struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;not null;unique"`
	OwnerName    string    `gorm:"column:owner_name"`
	TargetSource string    `gorm:"column:target_source"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Application) TableName() string {
	return "applications"
}

// Schema kinds on an application.
const (
	SchemaAccount = "account"
	SchemaGroup   = "group"
)

// SchemaAttribute is one attribute definition on an application schema.
// CorrelationKey > 0 marks the attribute as a correlation key; its value is
// the index of the keyN column carrying the attribute on links and managed
// attributes.
type SchemaAttribute struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement"`
	ApplicationID  string `gorm:"column:application_id;not null"`
	SchemaKind     string `gorm:"column:schema_kind;not null"`
	AttributeName  string `gorm:"column:attribute_name;not null"`
	CorrelationKey int    `gorm:"column:correlation_key;not null;default:0"`
}

func (SchemaAttribute) TableName() string {
	return "schema_attributes"
}
