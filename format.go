package ollamawire

import (
	j "github.com/goccy/go-json"
)

// FormatType selects the response format of a generation request: plain JSON
// mode, or output constrained by a JSON Schema document ("structured output",
// Ollama 0.5.0+). The zero value is plain JSON mode. Immutable once built.
type FormatType struct {
	structured *JSONStructure
}

// FormatJSON returns the plain "json" response format.
func FormatJSON() FormatType { return FormatType{} }

// FormatStructured returns a response format constrained by the given schema.
func FormatStructured(s *JSONStructure) FormatType {
	return FormatType{structured: s}
}

// FormatStructuredFor builds a structured response format from the shape of T.
func FormatStructuredFor[T any]() FormatType {
	return FormatType{structured: StructureFor[T]()}
}

// Structure returns the schema document of the structured variant, or nil for
// plain JSON mode.
func (f FormatType) Structure() *JSONStructure { return f.structured }

// MarshalJSON encodes the plain variant as the literal string "json" and the
// structured variant as the schema document embedded as a JSON value (the
// service reads the schema from the request body directly, not from a nested
// string).
func (f FormatType) MarshalJSON() ([]byte, error) {
	if f.structured == nil {
		return j.Marshal("json")
	}
	return j.Marshal(f.structured)
}

// UnmarshalJSON accepts three wire shapes: the string "json", a schema
// document embedded as a JSON object, or a JSON string whose contents are
// schema text (the form older clients emitted). A string payload that is
// neither "json" nor parseable schema text fails with a schema_parse issue
// carrying the parse diagnostic.
func (f *FormatType) UnmarshalJSON(data []byte) error {
	var s string
	if err := j.Unmarshal(data, &s); err == nil {
		if s == "json" {
			f.structured = nil
			return nil
		}
		st, err := ParseStructure([]byte(s))
		if err != nil {
			return err
		}
		f.structured = st
		return nil
	}
	st, err := ParseStructure(data)
	if err != nil {
		return err
	}
	f.structured = st
	return nil
}
