// Package schema derives JSON Schema descriptions of Go types for use as
// structured-output contracts, and validates model output against them.
//
// Derivation is pure reflection over the target type: no I/O, and the same
// type always yields the same required set and field descriptors. Struct
// fields without `json:",omitempty"` are required; nested structs are
// inlined; unknown extra fields are rejected via additionalProperties.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// Definition is the structural description of a recovery target type,
// ready to be sent as the `json_schema` body of a response_format clause.
type Definition struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

var (
	cacheMu sync.RWMutex
	cache   = map[reflect.Type]Definition{}
)

// Derive builds the Definition for type T.
func Derive[T any]() Definition {
	return DeriveType(reflect.TypeOf((*T)(nil)).Elem())
}

// DeriveType builds the Definition for t. Results are cached by type
// identity; the returned Schema map must be treated as read-only.
func DeriveType(t reflect.Type) Definition {
	cacheMu.RLock()
	def, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		return def
	}

	def = reflectDefinition(t)

	cacheMu.Lock()
	cache[t] = def
	cacheMu.Unlock()
	return def
}

func reflectDefinition(t reflect.Type) Definition {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	s := r.ReflectFromType(t)

	raw, err := json.Marshal(s)
	if err != nil {
		// Reflection output always marshals; a failure here means the type
		// carries something like a channel field, which is a programming
		// error at the registration site.
		panic(fmt.Sprintf("schema: cannot describe %s: %v", t, err))
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		panic(fmt.Sprintf("schema: cannot describe %s: %v", t, err))
	}
	delete(body, "$schema")
	delete(body, "$id")

	return Definition{Name: schemaName(t), Schema: body}
}

// schemaName derives a backend-facing name from the Go type name.
func schemaName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return "response"
	}
	return strings.ToLower(name)
}

// Validate checks content against the definition and returns a descriptive
// error when the document does not conform.
func (d Definition) Validate(content []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(d.Schema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return fmt.Errorf("schema validation system error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errMsg string
	for _, desc := range result.Errors() {
		errMsg += fmt.Sprintf("- %s; ", desc)
	}
	return fmt.Errorf("schema validation failed: %s", errMsg)
}

// Object hand-builds a flat object Definition from (name, type, description)
// triples. All listed properties are required.
func Object(name string, properties [][3]string) Definition {
	props := map[string]any{}
	required := make([]string, 0, len(properties))

	for _, p := range properties {
		props[p[0]] = map[string]any{
			"type":        p[1],
			"description": p[2],
		}
		required = append(required, p[0])
	}

	return Definition{
		Name: name,
		Schema: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}
