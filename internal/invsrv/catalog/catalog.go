// Package catalog implements the dynamic, database-backed type system of the
// inventory service: component categories, types, hardware models, statuses,
// natures, installation statuses, installable types, and location types. Each catalog
// row carries a stable code, an active flag, and declared capabilities; the
// containment evaluator and the status transition graphs live here, free of
// any storage or transport concern.
package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/switchscope/switchscope/internal/common/uuid"
)

// PropertyMap holds the extensible key-value properties attached to a catalog
// row. It is stored as JSONB.
type PropertyMap map[string]string

// Value implements driver.Valuer.
func (m PropertyMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *PropertyMap) Scan(src any) error {
	if src == nil {
		*m = PropertyMap{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PropertyMap", src)
	}
	if len(b) == 0 {
		*m = PropertyMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// CodedEntry is the base shape shared by every catalog row: a stable machine
// code, display metadata, and an active flag. Codes are immutable once other
// rows reference them; inactive entries are excluded from active listings but
// retained for referential integrity.
type CodedEntry struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Code        string      `db:"code" json:"code"`
	DisplayName string      `db:"display_name" json:"displayName"`
	Description string      `db:"description" json:"description,omitempty"`
	Active      bool        `db:"is_active" json:"active"`
	SortOrder   int         `db:"sort_order" json:"sortOrder"`
	ColorClass  string      `db:"color_class" json:"colorClass,omitempty"`
	IconClass   string      `db:"icon_class" json:"iconClass,omitempty"`
	Properties  PropertyMap `db:"properties" json:"properties,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}

// Property returns the custom property for the key, or "" if absent.
func (e *CodedEntry) Property(key string) string {
	return e.Properties[key]
}

// PropertyOrDefault returns the custom property for the key, or the default.
func (e *CodedEntry) PropertyOrDefault(key, def string) string {
	if v, ok := e.Properties[key]; ok {
		return v
	}
	return def
}

// SetProperty sets a custom property on the entry.
func (e *CodedEntry) SetProperty(key, value string) {
	if e.Properties == nil {
		e.Properties = PropertyMap{}
	}
	e.Properties[key] = value
}

// HasProperty reports whether the entry carries the custom property.
func (e *CodedEntry) HasProperty(key string) bool {
	_, ok := e.Properties[key]
	return ok
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
