package model

// DemoFields returns the descriptors of the demo form in render order. The
// gender group deliberately offers "incorrect", a value the schema rejects.
func DemoFields() []Field {
	return []Field{
		{Name: FieldNameName, Label: "Name", Kind: FieldKindText},
		{Name: FieldNameSurname, Label: "Surname", Kind: FieldKindText},
		{Name: FieldNameAge, Label: "Age", Kind: FieldKindNumber},
		{Name: FieldNameCity, Label: "City", Kind: FieldKindSelection},
		{
			Name:  FieldNameGender,
			Label: "Gender",
			Kind:  FieldKindChoice,
			Choices: []Choice{
				{Value: "female", Label: "Female"},
				{Value: "male", Label: "Male"},
				{Value: "incorrect", Label: "Incorrect"},
			},
		},
	}
}

// LookupField returns the descriptor for name.
func LookupField(name FieldName) (Field, bool) {
	for _, field := range DemoFields() {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
