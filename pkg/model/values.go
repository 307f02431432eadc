package model

import "fmt"

// Values is a snapshot of every form field. The zero value is the initial
// state: empty strings and no selected cities.
type Values struct {
	Name    string       `json:"name"`
	Surname string       `json:"surname"`
	Age     string       `json:"age"`
	City    []CityOption `json:"city"`
	Gender  string       `json:"gender"`
}

// InitialValues returns the defaults a fresh or reset form starts from.
func InitialValues() Values {
	return Values{City: []CityOption{}}
}

// Clone returns a copy that shares no slices with v.
func (v Values) Clone() Values {
	out := v
	out.City = append([]CityOption{}, v.City...)
	return out
}

// Get returns the value held for field.
func (v Values) Get(field FieldName) (any, bool) {
	switch field {
	case FieldNameName:
		return v.Name, true
	case FieldNameSurname:
		return v.Surname, true
	case FieldNameAge:
		return v.Age, true
	case FieldNameCity:
		return append([]CityOption{}, v.City...), true
	case FieldNameGender:
		return v.Gender, true
	default:
		return nil, false
	}
}

// Set assigns value to field. Text fields accept strings; city accepts a
// slice of options.
func (v *Values) Set(field FieldName, value any) error {
	switch field {
	case FieldNameName, FieldNameSurname, FieldNameAge, FieldNameGender:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("model: field %s expects string, got %T", field, value)
		}
		switch field {
		case FieldNameName:
			v.Name = s
		case FieldNameSurname:
			v.Surname = s
		case FieldNameAge:
			v.Age = s
		default:
			v.Gender = s
		}
		return nil
	case FieldNameCity:
		switch typed := value.(type) {
		case []CityOption:
			v.City = append([]CityOption{}, typed...)
		case nil:
			v.City = []CityOption{}
		default:
			return fmt.Errorf("model: field %s expects []CityOption, got %T", field, value)
		}
		return nil
	default:
		return fmt.Errorf("model: unknown field %q", field)
	}
}

// Map returns a generic view keyed by field name, suitable for
// serialization. City entries become {"id","label"} maps.
func (v Values) Map() map[string]any {
	cities := make([]any, 0, len(v.City))
	for _, c := range v.City {
		cities = append(cities, map[string]any{"id": c.ID, "label": c.Label})
	}
	return map[string]any{
		string(FieldNameName):    v.Name,
		string(FieldNameSurname): v.Surname,
		string(FieldNameAge):     v.Age,
		string(FieldNameCity):    cities,
		string(FieldNameGender):  v.Gender,
	}
}
