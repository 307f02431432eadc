// Package validation evaluates the demo form schema. A Schema is a list of
// per-field rule lists; Validate walks each list in order and records the
// first failing rule as the field Issue. Validation problems are values, not
// Go errors: they land in an ErrorMap that callers inspect per field.
//
// The default rules ship as an embedded YAML document (schema.yaml) and can
// be replaced with LoadSchema for callers that need different bounds or
// messages.
package validation
