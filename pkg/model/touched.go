package model

// TouchedSet records which fields the user interacted with. It only grows
// until Reset.
type TouchedSet map[FieldName]struct{}

// Add inserts field and reports whether it was newly added.
func (s TouchedSet) Add(field FieldName) bool {
	if _, ok := s[field]; ok {
		return false
	}
	s[field] = struct{}{}
	return true
}

// Has reports membership.
func (s TouchedSet) Has(field FieldName) bool {
	_, ok := s[field]
	return ok
}

// Fields lists members in declaration order.
func (s TouchedSet) Fields() []FieldName {
	var out []FieldName
	for _, name := range FieldNames() {
		if s.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
