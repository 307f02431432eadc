package validation

import (
	"fmt"
	"slices"

	"github.com/goliatone/go-demoform/pkg/model"
)

// ValueType is the type a field value is coerced to before rules run.
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeNumber ValueType = "number"
	ValueTypeArray  ValueType = "array"
)

// RuleKind identifies a rule in a field rule list.
type RuleKind string

const (
	RuleKindType     RuleKind = "type"
	RuleKindMin      RuleKind = "min"
	RuleKindMax      RuleKind = "max"
	RuleKindRequired RuleKind = "required"
	RuleKindOneOf    RuleKind = "oneOf"
	RuleKindItems    RuleKind = "items"
)

// Rule is a single tagged constraint. Limit applies to min/max (characters
// for strings, value for numbers, size for arrays); Values applies to oneOf.
// Message is reported verbatim when the rule fails, except for items rules
// where "{index}" is replaced by the offending position.
type Rule struct {
	Kind    RuleKind `yaml:"kind" json:"kind"`
	Limit   float64  `yaml:"limit,omitempty" json:"limit,omitempty"`
	Values  []string `yaml:"values,omitempty" json:"values,omitempty"`
	Message string   `yaml:"message" json:"message"`
}

// FieldRules is the ordered rule list of one field.
type FieldRules struct {
	Field model.FieldName `yaml:"field" json:"field"`
	Type  ValueType       `yaml:"type" json:"type"`
	Rules []Rule          `yaml:"rules" json:"rules"`
}

// Schema is the full set of field rule lists.
type Schema struct {
	Fields []FieldRules `yaml:"fields" json:"fields"`
}

// Rules returns the rule list for field.
func (s Schema) Rules(field model.FieldName) (FieldRules, bool) {
	for _, fr := range s.Fields {
		if fr.Field == field {
			return fr, true
		}
	}
	return FieldRules{}, false
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	out := Schema{Fields: make([]FieldRules, len(s.Fields))}
	for i, fr := range s.Fields {
		rules := make([]Rule, len(fr.Rules))
		for j, r := range fr.Rules {
			r.Values = slices.Clone(r.Values)
			rules[j] = r
		}
		out.Fields[i] = FieldRules{Field: fr.Field, Type: fr.Type, Rules: rules}
	}
	return out
}

func (s Schema) check() error {
	seen := make(map[model.FieldName]struct{}, len(s.Fields))
	for _, fr := range s.Fields {
		if _, err := model.ParseFieldName(string(fr.Field)); err != nil {
			return fmt.Errorf("validation: %w", err)
		}
		if _, dup := seen[fr.Field]; dup {
			return fmt.Errorf("validation: duplicate rules for field %s", fr.Field)
		}
		seen[fr.Field] = struct{}{}

		switch fr.Type {
		case ValueTypeString, ValueTypeNumber, ValueTypeArray:
		default:
			return fmt.Errorf("validation: field %s has unknown type %q", fr.Field, fr.Type)
		}

		for _, r := range fr.Rules {
			switch r.Kind {
			case RuleKindType, RuleKindMin, RuleKindMax, RuleKindRequired:
			case RuleKindOneOf:
				if len(r.Values) == 0 {
					return fmt.Errorf("validation: field %s oneOf rule has no values", fr.Field)
				}
			case RuleKindItems:
				if fr.Type != ValueTypeArray {
					return fmt.Errorf("validation: field %s items rule requires array type", fr.Field)
				}
			default:
				return fmt.Errorf("validation: field %s has unknown rule %q", fr.Field, r.Kind)
			}
		}
	}
	return nil
}
