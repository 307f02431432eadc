// Package model defines the typed values and field descriptors of the demo
// form. Values always carries all five fields (name, surname, age, city,
// gender) even when they are empty, so validators and renderers never have to
// guard against missing keys. Field descriptors carry the label, the kind
// (which decides when a field becomes touched) and, for choice fields, the
// offered options. City options compare by identifier only.
package model
