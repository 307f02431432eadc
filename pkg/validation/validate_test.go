package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-demoform/pkg/model"
	"github.com/goliatone/go-demoform/pkg/validation"
)

var (
	warsaw = model.CityOption{ID: 1, Label: "Warsaw"}
	berlin = model.CityOption{ID: 2, Label: "Berlin"}
	london = model.CityOption{ID: 3, Label: "London"}
)

func validValues() model.Values {
	return model.Values{
		Name:    "Roberto",
		Surname: "Smithson",
		Age:     "30",
		City:    []model.CityOption{warsaw},
		Gender:  "male",
	}
}

func TestValidate_InitialValues(t *testing.T) {
	errs := validation.DefaultSchema().Validate(model.InitialValues())

	required := func(field model.FieldName) validation.Issue {
		return validation.Issue{Field: field, Kind: validation.IssueRequired, Message: "The value is required."}
	}
	want := validation.ErrorMap{
		model.FieldNameName:    required(model.FieldNameName),
		model.FieldNameSurname: required(model.FieldNameSurname),
		model.FieldNameAge:     required(model.FieldNameAge),
		model.FieldNameCity: {
			Field:   model.FieldNameCity,
			Kind:    validation.IssueBelowMinimum,
			Message: "Select at least one option.",
		},
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("initial errors mismatch (-want +got):\n%s", diff)
	}
	if errs.Valid() {
		t.Fatalf("expected initial values to be invalid")
	}
}

func TestValidate_ValidValues(t *testing.T) {
	errs := validation.DefaultSchema().Validate(validValues())
	if !errs.Valid() {
		t.Fatalf("expected valid values, got %v", errs)
	}
	if len(errs) != 0 {
		t.Fatalf("expected empty error map, got %v", errs)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	cases := []struct {
		name    string
		field   model.FieldName
		mutate  func(*model.Values)
		kind    validation.IssueKind
		message string
	}{
		{
			name:    "name too short",
			field:   model.FieldNameName,
			mutate:  func(v *model.Values) { v.Name = "Bob" },
			kind:    validation.IssueBelowMinimum,
			message: "The minimum number of characters is 4.",
		},
		{
			name:   "name ok",
			field:  model.FieldNameName,
			mutate: func(v *model.Values) { v.Name = "Robert" },
		},
		{
			name:    "name too long",
			field:   model.FieldNameName,
			mutate:  func(v *model.Values) { v.Name = strings.Repeat("Robert", 21) },
			kind:    validation.IssueAboveMaximum,
			message: "The maximum number of characters is 20.",
		},
		{
			name:   "name at upper bound",
			field:  model.FieldNameName,
			mutate: func(v *model.Values) { v.Name = strings.Repeat("a", 20) },
		},
		{
			name:   "name counts code points",
			field:  model.FieldNameName,
			mutate: func(v *model.Values) { v.Name = "Łódź" },
		},
		{
			name:    "surname too short",
			field:   model.FieldNameSurname,
			mutate:  func(v *model.Values) { v.Surname = "Li" },
			kind:    validation.IssueBelowMinimum,
			message: "The minimum number of characters is 4.",
		},
		{
			name:    "age not a number",
			field:   model.FieldNameAge,
			mutate:  func(v *model.Values) { v.Age = "abc" },
			kind:    validation.IssueTypeMismatch,
			message: "Incorrect type.",
		},
		{
			name:    "name empty",
			field:   model.FieldNameName,
			mutate:  func(v *model.Values) { v.Name = "" },
			kind:    validation.IssueRequired,
			message: "The value is required.",
		},
		{
			name:    "name only whitespace",
			field:   model.FieldNameName,
			mutate:  func(v *model.Values) { v.Name = "   " },
			kind:    validation.IssueBelowMinimum,
			message: "The minimum number of characters is 4.",
		},
		{
			name:    "surname empty",
			field:   model.FieldNameSurname,
			mutate:  func(v *model.Values) { v.Surname = "" },
			kind:    validation.IssueRequired,
			message: "The value is required.",
		},
		{
			name:    "age empty",
			field:   model.FieldNameAge,
			mutate:  func(v *model.Values) { v.Age = "" },
			kind:    validation.IssueRequired,
			message: "The value is required.",
		},
		{
			name:    "age only whitespace",
			field:   model.FieldNameAge,
			mutate:  func(v *model.Values) { v.Age = "   " },
			kind:    validation.IssueTypeMismatch,
			message: "Incorrect type.",
		},
		{
			name:    "age below minimum",
			field:   model.FieldNameAge,
			mutate:  func(v *model.Values) { v.Age = "10" },
			kind:    validation.IssueBelowMinimum,
			message: "You are not of legal age.",
		},
		{
			name:    "age above maximum",
			field:   model.FieldNameAge,
			mutate:  func(v *model.Values) { v.Age = "200" },
			kind:    validation.IssueAboveMaximum,
			message: "You are probably dead.",
		},
		{
			name:   "age ok",
			field:  model.FieldNameAge,
			mutate: func(v *model.Values) { v.Age = "35" },
		},
		{
			name:   "age with inner whitespace",
			field:  model.FieldNameAge,
			mutate: func(v *model.Values) { v.Age = " 3 5 " },
		},
		{
			name:    "no city",
			field:   model.FieldNameCity,
			mutate:  func(v *model.Values) { v.City = nil },
			kind:    validation.IssueBelowMinimum,
			message: "Select at least one option.",
		},
		{
			name:   "two cities",
			field:  model.FieldNameCity,
			mutate: func(v *model.Values) { v.City = []model.CityOption{warsaw, berlin} },
		},
		{
			name:    "three cities",
			field:   model.FieldNameCity,
			mutate:  func(v *model.Values) { v.City = []model.CityOption{warsaw, berlin, london} },
			kind:    validation.IssueAboveMaximum,
			message: "The maximum number of options has been exceeded.",
		},
		{
			name:    "city without label",
			field:   model.FieldNameCity,
			mutate:  func(v *model.Values) { v.City = []model.CityOption{warsaw, {ID: 9}} },
			kind:    validation.IssueRequired,
			message: "city[1].label is a required field",
		},
		{
			name:    "gender incorrect",
			field:   model.FieldNameGender,
			mutate:  func(v *model.Values) { v.Gender = "incorrect" },
			kind:    validation.IssueEnumMismatch,
			message: "Select the correct gender.",
		},
		{
			name:   "gender female",
			field:  model.FieldNameGender,
			mutate: func(v *model.Values) { v.Gender = "female" },
		},
		{
			name:   "gender unset",
			field:  model.FieldNameGender,
			mutate: func(v *model.Values) { v.Gender = "" },
		},
	}

	schema := validation.DefaultSchema()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := validValues()
			tc.mutate(&values)

			errs := schema.Validate(values)
			issue, failed := errs.Issue(tc.field)
			if tc.kind == "" {
				if failed {
					t.Fatalf("expected no error on %s, got %+v", tc.field, issue)
				}
				return
			}
			want := validation.Issue{Field: tc.field, Kind: tc.kind, Message: tc.message}
			if diff := cmp.Diff(want, issue); diff != "" {
				t.Fatalf("issue mismatch (-want +got):\n%s", diff)
			}
			if len(errs) != 1 {
				t.Fatalf("expected only %s to fail, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	values := validValues()
	values.City = []model.CityOption{warsaw, berlin, london}
	before := values.Clone()

	_ = validation.DefaultSchema().Validate(values)

	if diff := cmp.Diff(before, values); diff != "" {
		t.Fatalf("values mutated (-before +after):\n%s", diff)
	}
}

func TestValidateField(t *testing.T) {
	values := validValues()
	values.Age = "17"

	issue, failed := validation.DefaultSchema().ValidateField(values, model.FieldNameAge)
	if !failed || issue.Kind != validation.IssueBelowMinimum {
		t.Fatalf("expected below-minimum for age, got %+v (failed=%v)", issue, failed)
	}
	if _, failed := validation.DefaultSchema().ValidateField(values, model.FieldNameName); failed {
		t.Fatalf("expected name to pass")
	}
}

func TestErrorMapMessage(t *testing.T) {
	errs := validation.ErrorMap{
		model.FieldNameAge: {Field: model.FieldNameAge, Kind: validation.IssueTypeMismatch, Message: "Incorrect type."},
	}
	if msg, ok := errs.Message(model.FieldNameAge); !ok || msg != "Incorrect type." {
		t.Fatalf("unexpected message %q (ok=%v)", msg, ok)
	}
	if _, ok := errs.Message(model.FieldNameName); ok {
		t.Fatalf("expected no message for name")
	}
}

func TestValidate_BlankWithoutRequiredRule(t *testing.T) {
	schema := validation.Schema{Fields: []validation.FieldRules{
		{
			Field: model.FieldNameAge,
			Type:  validation.ValueTypeNumber,
			Rules: []validation.Rule{{Kind: validation.RuleKindMin, Limit: 18, Message: "too young"}},
		},
	}}
	if errs := schema.Validate(model.Values{}); !errs.Valid() {
		t.Fatalf("blank optional age must be valid, got %v", errs)
	}
}

func TestValidate_AgeNumberSyntax(t *testing.T) {
	cases := []struct {
		input string
		kind  validation.IssueKind
	}{
		{input: "0x20"},
		{input: "0X14"},
		{input: "0b10010"},
		{input: "0o22"},
		{input: "2.5e1"},
		{input: ".5e2"},
		{input: "30."},
		{input: "+30"},
		{input: "Infinity", kind: validation.IssueAboveMaximum},
		{input: "-Infinity", kind: validation.IssueBelowMinimum},
		{input: "1e400", kind: validation.IssueAboveMaximum},
		{input: "0x10", kind: validation.IssueBelowMinimum},
		{input: "inf", kind: validation.IssueTypeMismatch},
		{input: "infinity", kind: validation.IssueTypeMismatch},
		{input: "NaN", kind: validation.IssueTypeMismatch},
		{input: "-0x20", kind: validation.IssueTypeMismatch},
		{input: "0x", kind: validation.IssueTypeMismatch},
		{input: "0b102", kind: validation.IssueTypeMismatch},
		{input: "1_000", kind: validation.IssueTypeMismatch},
		{input: "0x1p4", kind: validation.IssueTypeMismatch},
		{input: "30abc", kind: validation.IssueTypeMismatch},
		{input: ".", kind: validation.IssueTypeMismatch},
	}

	schema := validation.DefaultSchema()
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			values := validValues()
			values.Age = tc.input

			issue, failed := schema.ValidateField(values, model.FieldNameAge)
			if tc.kind == "" {
				if failed {
					t.Fatalf("age %q: expected no error, got %+v", tc.input, issue)
				}
				return
			}
			if !failed || issue.Kind != tc.kind {
				t.Fatalf("age %q: expected %s, got %+v (failed=%v)", tc.input, tc.kind, issue, failed)
			}
		})
	}
}
