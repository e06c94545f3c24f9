package domain

import "time"

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeSelect FieldType = "select"
	FieldTypeDate   FieldType = "date"
)

// ValidFieldType reports whether t is one of the supported entry field types.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeSelect, FieldTypeDate:
		return true
	}
	return false
}

// FieldConfig describes one configurable data-entry field. FieldName doubles
// as the attribute key under which entry values are stored.
type FieldConfig struct {
	ID           string    `json:"id"`
	FieldName    string    `json:"field_name"`
	FieldType    FieldType `json:"field_type"`
	Options      []string  `json:"options,omitempty"`
	Required     bool      `json:"required"`
	DisplayOrder int       `json:"display_order"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateFieldRequest struct {
	FieldName    string    `json:"field_name"`
	FieldType    FieldType `json:"field_type"`
	Options      []string  `json:"options"`
	Required     *bool     `json:"required"`
	DisplayOrder int       `json:"display_order"`
}

type UpdateFieldRequest struct {
	ID           string     `json:"id"`
	FieldName    *string    `json:"field_name"`
	FieldType    *FieldType `json:"field_type"`
	Options      []string   `json:"options"`
	Required     *bool      `json:"required"`
	DisplayOrder *int       `json:"display_order"`
}

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)
