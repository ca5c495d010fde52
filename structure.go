package ollamawire

import (
	"reflect"

	j "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// Draft07 is the schema version every document produced by this package
// declares. The service validates structured output against draft-07.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// JSONStructure wraps a normalized JSON Schema root document: draft-07, fully
// self-contained, every local reference inlined in place. The service cannot
// resolve $ref indirection, so normalization happens at construction and the
// document is immutable afterwards.
type JSONStructure struct {
	root map[string]any
}

// StructureFor generates a schema document from the shape of T, honoring
// `json` and `jsonschema` struct tags. Sub-schemas are expanded in place
// rather than collected under $defs. Total for well-formed struct types.
func StructureFor[T any]() *JSONStructure {
	r := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	s := r.ReflectFromType(reflect.TypeOf((*T)(nil)).Elem())
	s.Version = Draft07
	raw, err := j.Marshal(s)
	if err != nil {
		panic("ollamawire: marshal reflected schema: " + err.Error())
	}
	var root map[string]any
	if err := j.Unmarshal(raw, &root); err != nil {
		panic("ollamawire: normalize reflected schema: " + err.Error())
	}
	return &JSONStructure{root: root}
}

// ParseStructure parses JSON schema text and inlines every local reference
// (#/$defs/..., #/definitions/..., or any local JSON Pointer) so the result
// is self-contained.
func ParseStructure(data []byte) (*JSONStructure, error) {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeSchemaParse, Message: "invalid schema document", Cause: err}}
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeSchemaParse, Message: "schema root must be a JSON object"}}
	}
	inlined, err := inlineRefs(root)
	if err != nil {
		return nil, err
	}
	return &JSONStructure{root: inlined}, nil
}

// Root returns the underlying document. Callers must treat it as read-only.
func (s *JSONStructure) Root() map[string]any { return s.root }

// MarshalJSON emits the schema document as a JSON value.
func (s *JSONStructure) MarshalJSON() ([]byte, error) {
	return j.Marshal(s.root)
}
