package validation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var defaultSchemaYAML []byte

var defaultSchema = sync.OnceValue(func() Schema {
	schema, err := LoadSchema(bytes.NewReader(defaultSchemaYAML))
	if err != nil {
		panic(fmt.Sprintf("validation: embedded schema: %v", err))
	}
	return schema
})

// DefaultSchema returns the demo form rules. Each call returns an
// independent copy.
func DefaultSchema() Schema {
	return defaultSchema().Clone()
}

// LoadSchema decodes a YAML schema document and checks that it only names
// known fields, types and rule kinds.
func LoadSchema(r io.Reader) (Schema, error) {
	if r == nil {
		return Schema{}, errors.New("validation: schema reader is nil")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var schema Schema
	if err := dec.Decode(&schema); err != nil {
		if errors.Is(err, io.EOF) {
			return Schema{}, errors.New("validation: schema document is empty")
		}
		return Schema{}, fmt.Errorf("validation: decode schema: %w", err)
	}
	if err := schema.check(); err != nil {
		return Schema{}, err
	}
	return schema, nil
}
