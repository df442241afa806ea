// Package schema holds the JSON Schema descriptors used to validate API
// responses before they are projected into typed records.
//
// Each descriptor describes the *minimum* required shape of a payload:
// required field names, coarse per-field types, and nested object/array
// structure. Deeper semantic checks (hash formats, non-empty strings) belong
// to the consuming package. Descriptors are compiled once at package init and
// are never mutated afterwards.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled, immutable JSON Schema descriptor.
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

// Name identifies the schema in diagnostics.
func (s *Schema) Name() string { return s.name }

// Validate checks doc (a decoded JSON tree) against the schema. The returned
// error carries the validator's field-level detail; callers are expected to
// surface it at debug level only.
func (s *Schema) Validate(doc any) error {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema %s: %w", s.name, err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return fmt.Errorf("schema %s: %s", s.name, strings.Join(details, "; "))
}

// compile builds a Schema from a Go map literal. The descriptors below are
// static, so a compile failure is a programming error.
func compile(name string, def map[string]any) *Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def))
	if err != nil {
		panic(fmt.Sprintf("schema %s failed to compile: %v", name, err))
	}
	return &Schema{name: name, compiled: compiled}
}
