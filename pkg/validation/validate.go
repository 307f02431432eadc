package validation

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-demoform/pkg/model"
)

const defaultTypeMessage = "Incorrect type."

// Validate evaluates every field rule list against values and returns the
// first failing rule of each field. values is never mutated.
func (s Schema) Validate(values model.Values) ErrorMap {
	out := make(ErrorMap)
	for _, fr := range s.Fields {
		raw, ok := values.Get(fr.Field)
		if !ok {
			continue
		}
		if issue, failed := fr.evaluate(raw); failed {
			out[fr.Field] = issue
		}
	}
	return out
}

// ValidateField evaluates a single field.
func (s Schema) ValidateField(values model.Values, field model.FieldName) (Issue, bool) {
	fr, ok := s.Rules(field)
	if !ok {
		return Issue{}, false
	}
	raw, ok := values.Get(field)
	if !ok {
		return Issue{}, false
	}
	return fr.evaluate(raw)
}

// subject is a field value after coercion.
type subject struct {
	text   string
	length float64
	number float64
	items  []model.CityOption
}

func (fr FieldRules) evaluate(raw any) (Issue, bool) {
	if fr.blank(raw) {
		// a blank input is an absent value: only required applies
		for _, r := range fr.Rules {
			if r.Kind == RuleKindRequired {
				return fr.issue(IssueRequired, r.Message), true
			}
		}
		return Issue{}, false
	}

	subj, ok := coerce(fr.Type, raw)
	if !ok {
		msg := defaultTypeMessage
		for _, r := range fr.Rules {
			if r.Kind == RuleKindType && r.Message != "" {
				msg = r.Message
				break
			}
		}
		return fr.issue(IssueTypeMismatch, msg), true
	}

	for _, r := range fr.Rules {
		switch r.Kind {
		case RuleKindMin:
			if fr.measure(subj) < r.Limit {
				return fr.issue(IssueBelowMinimum, r.Message), true
			}
		case RuleKindMax:
			if fr.measure(subj) > r.Limit {
				return fr.issue(IssueAboveMaximum, r.Message), true
			}
		case RuleKindRequired:
			if fr.absent(subj) {
				return fr.issue(IssueRequired, r.Message), true
			}
		case RuleKindOneOf:
			// Absent values are not checked; only a chosen value must be allowed.
			if subj.text != "" && !slices.Contains(r.Values, subj.text) {
				return fr.issue(IssueEnumMismatch, r.Message), true
			}
		case RuleKindItems:
			for idx, item := range subj.items {
				if strings.TrimSpace(item.Label) == "" {
					msg := strings.ReplaceAll(r.Message, "{index}", strconv.Itoa(idx))
					return fr.issue(IssueRequired, msg), true
				}
			}
		}
	}
	return Issue{}, false
}

func (fr FieldRules) issue(kind IssueKind, msg string) Issue {
	return Issue{Field: fr.Field, Kind: kind, Message: msg}
}

func (fr FieldRules) measure(subj subject) float64 {
	switch fr.Type {
	case ValueTypeNumber:
		return subj.number
	default:
		return subj.length
	}
}

// blank reports an empty text or number input. Whitespace is a value
// and goes through the regular rules.
func (fr FieldRules) blank(raw any) bool {
	if fr.Type != ValueTypeString && fr.Type != ValueTypeNumber {
		return false
	}
	s, ok := raw.(string)
	return ok && s == ""
}

func (fr FieldRules) absent(subj subject) bool {
	switch fr.Type {
	case ValueTypeNumber:
		// a coerced number is always present
		return false
	default:
		return subj.length == 0
	}
}

func coerce(typ ValueType, raw any) (subject, bool) {
	switch typ {
	case ValueTypeString:
		s, ok := raw.(string)
		if !ok {
			return subject{}, false
		}
		return subject{text: s, length: float64(utf8.RuneCountInString(s))}, true
	case ValueTypeNumber:
		s, ok := raw.(string)
		if !ok {
			return subject{}, false
		}
		n, ok := parseNumber(s)
		if !ok {
			return subject{}, false
		}
		return subject{text: s, number: n}, true
	case ValueTypeArray:
		items, ok := raw.([]model.CityOption)
		if !ok {
			return subject{}, false
		}
		return subject{items: items, length: float64(len(items))}, true
	default:
		return subject{}, false
	}
}

// decimalNumber matches the decimal literals accepted by number inputs:
// optional sign, digits with an optional fraction (either side may be
// empty, not both) and an optional exponent.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber strips all whitespace and parses the remainder the way a
// browser number coercion does: decimal literals, unsigned 0x/0o/0b
// integer literals and a case-sensitive signed "Infinity". Anything else,
// including an all-whitespace input, is not a number.
func parseNumber(raw string) (float64, bool) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if clean == "" {
		return 0, false
	}

	switch clean {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(clean) > 2 && clean[0] == '0' {
		base := 0
		switch clean[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, ok := new(big.Int).SetString(clean[2:], base)
			if !ok || n.Sign() < 0 || strings.ContainsAny(clean[2:], "+-_") {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
	}

	if !decimalNumber.MatchString(clean) {
		return 0, false
	}
	n, err := strconv.ParseFloat(clean, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// out of range literals saturate to ±Inf or 0, like float64 coercion
	return n, true
}
