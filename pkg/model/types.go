package model

import "fmt"

// FieldName identifies one of the demo form fields.
type FieldName string

const (
	FieldNameName    FieldName = "name"
	FieldNameSurname FieldName = "surname"
	FieldNameAge     FieldName = "age"
	FieldNameCity    FieldName = "city"
	FieldNameGender  FieldName = "gender"
)

// FieldNames returns every field in declaration order.
func FieldNames() []FieldName {
	return []FieldName{
		FieldNameName,
		FieldNameSurname,
		FieldNameAge,
		FieldNameCity,
		FieldNameGender,
	}
}

// ParseFieldName resolves a raw identifier into a known field.
func ParseFieldName(raw string) (FieldName, error) {
	for _, name := range FieldNames() {
		if string(name) == raw {
			return name, nil
		}
	}
	return "", fmt.Errorf("model: unknown field %q", raw)
}

// FieldKind describes the widget family of a field.
type FieldKind string

const (
	// FieldKindText is a free-text input.
	FieldKindText FieldKind = "text"
	// FieldKindNumber is a free-text input parsed as a number by validation.
	FieldKindNumber FieldKind = "number"
	// FieldKindSelection is a multi-select over fetched options.
	FieldKindSelection FieldKind = "selection"
	// FieldKindChoice is a radio group over fixed choices.
	FieldKindChoice FieldKind = "choice"
)

// TouchOnChange reports whether a change event marks the field as touched.
// Compound widgets are touched optimistically on change; plain inputs wait
// for blur.
func (k FieldKind) TouchOnChange() bool {
	return k == FieldKindSelection || k == FieldKindChoice
}

// Choice is a selectable value of a choice field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one input of the form.
type Field struct {
	Name    FieldName `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Choices []Choice  `json:"choices,omitempty"`
}

// CityOption is a selectable city. Identity is the ID; the label is display
// only.
type CityOption struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Equal compares options by identifier.
func (o CityOption) Equal(other CityOption) bool {
	return o.ID == other.ID
}

func (o CityOption) String() string {
	return o.Label
}
