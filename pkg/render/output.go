package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-demoform/pkg/model"
)

// OutputFormat controls how submitted values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat resolves a user supplied format name. Empty input maps
// to JSON.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatFormURLEncoded:
		return OutputFormatFormURLEncoded, nil
	case OutputFormatPrettyText:
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("render: unknown output format %q", raw)
	}
}

// ContentType reports the media type produced for format.
func ContentType(format OutputFormat) string {
	switch format {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Serialize encodes values in the requested format. Fields keep their
// declaration order wherever the format allows it.
func Serialize(values model.Values, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		out, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("render: encode json: %w", err)
		}
		return out, nil
	}
}

// pair is a flattened path/value entry.
type pair struct {
	path  string
	value string
}

func flattenValues(values model.Values) []pair {
	out := []pair{
		{path: string(model.FieldNameName), value: values.Name},
		{path: string(model.FieldNameSurname), value: values.Surname},
		{path: string(model.FieldNameAge), value: values.Age},
	}
	for idx, city := range values.City {
		prefix := string(model.FieldNameCity) + "[" + strconv.Itoa(idx) + "]"
		out = append(out,
			pair{path: prefix + ".id", value: strconv.Itoa(city.ID)},
			pair{path: prefix + ".label", value: city.Label},
		)
	}
	return append(out, pair{path: string(model.FieldNameGender), value: values.Gender})
}

func flattenForm(values model.Values) string {
	form := url.Values{}
	for _, p := range flattenValues(values) {
		form.Add(p.path, p.value)
	}
	return form.Encode()
}

func prettyPrint(values model.Values) string {
	var b strings.Builder
	for _, p := range flattenValues(values) {
		fmt.Fprintf(&b, "%s=%s\n", p.path, p.value)
	}
	return b.String()
}
