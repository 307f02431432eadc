package validation

import "github.com/goliatone/go-demoform/pkg/model"

// IssueKind classifies a validation failure.
type IssueKind string

const (
	IssueTypeMismatch IssueKind = "type-mismatch"
	IssueBelowMinimum IssueKind = "below-minimum"
	IssueAboveMaximum IssueKind = "above-maximum"
	IssueRequired     IssueKind = "required-missing"
	IssueEnumMismatch IssueKind = "enum-mismatch"
)

// Issue is the first failing rule of a field.
type Issue struct {
	Field   model.FieldName `json:"field"`
	Kind    IssueKind       `json:"kind"`
	Message string          `json:"message"`
}

// ErrorMap holds at most one Issue per field. A missing entry means the
// field is valid.
type ErrorMap map[model.FieldName]Issue

// Issue returns the issue recorded for field.
func (m ErrorMap) Issue(field model.FieldName) (Issue, bool) {
	issue, ok := m[field]
	return issue, ok
}

// Message returns the error message recorded for field.
func (m ErrorMap) Message(field model.FieldName) (string, bool) {
	issue, ok := m[field]
	if !ok || issue.Message == "" {
		return "", false
	}
	return issue.Message, true
}

// Valid reports whether no field carries an issue.
func (m ErrorMap) Valid() bool {
	for _, issue := range m {
		if issue.Message != "" {
			return false
		}
	}
	return true
}

// Clone copies the map.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
