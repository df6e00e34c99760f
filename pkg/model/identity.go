package model

import "time"

// Identity represents a governed person.
type Identity struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	DisplayName string    `gorm:"column:display_name"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Identity) TableName() string {
	return "identities"
}

// DisplayableName returns the display name, falling back to the name.
func (i Identity) DisplayableName() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Name
}

// Link represents an identity's account on an application. Key1..Key4 are
// the correlation-key columns; which logical attribute lives in which
// column is declared by the application's account schema.
type Link struct {
	ID             string     `gorm:"column:id;primaryKey"`
	IdentityID     string     `gorm:"column:identity_id;not null"`
	ApplicationID  string     `gorm:"column:application_id;not null"`
	Instance       string     `gorm:"column:instance"`
	NativeIdentity string     `gorm:"column:native_identity;not null"`
	DisplayName    string     `gorm:"column:display_name"`
	Key1           string     `gorm:"column:key1"`
	Key2           string     `gorm:"column:key2"`
	Key3           string     `gorm:"column:key3"`
	Key4           string     `gorm:"column:key4"`
	Attributes     Attributes `gorm:"column:attributes;type:jsonb"`
}

func (Link) TableName() string {
	return "links"
}

// Entitlement aggregation states. Only Connected entitlements count toward
// effective access.
const (
	AggregationConnected    = "Connected"
	AggregationDisconnected = "Disconnected"
)

// IdentityEntitlement records an aggregated group membership: the identity
// holds attribute Name=Value on the application.
type IdentityEntitlement struct {
	ID               uint   `gorm:"column:id;primaryKey;autoIncrement"`
	IdentityID       string `gorm:"column:identity_id;not null"`
	ApplicationID    string `gorm:"column:application_id;not null"`
	Name             string `gorm:"column:name;not null"`
	Value            string `gorm:"column:value;not null"`
	AggregationState string `gorm:"column:aggregation_state;not null"`
}

func (IdentityEntitlement) TableName() string {
	return "identity_entitlements"
}
