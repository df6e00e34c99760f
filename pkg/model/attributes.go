package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Attributes is a JSON attribute bag stored in a jsonb column.
type Attributes map[string]interface{}

// Value implements driver.Valuer.
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported attributes column type %T", value)
	}

	if len(data) == 0 {
		*a = nil
		return nil
	}
	return json.Unmarshal(data, a)
}

// StringList reads a list-valued attribute, tolerating absent keys and
// mixed element representations coming back from jsonb.
func (a Attributes) StringList(name string) []string {
	raw, ok := a[name]
	if !ok || raw == nil {
		return []string{}
	}

	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		return []string{v}
	default:
		return []string{}
	}
}

// String reads a scalar attribute as a string, returning "" when absent.
func (a Attributes) String(name string) string {
	raw, ok := a[name]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}
