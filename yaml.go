package ollamawire

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// StructureFromYAML parses a schema document authored in YAML and inlines its
// local references the same way ParseStructure does. When the input is a
// multi-document stream, the first document that decodes to a mapping is
// used.
func StructureFromYAML(data []byte) (*JSONStructure, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, Issues{{Path: "/", Code: CodeSchemaParse, Message: "invalid YAML schema document", Cause: err}}
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		inlined, err := inlineRefs(m)
		if err != nil {
			return nil, err
		}
		return &JSONStructure{root: inlined}, nil
	}
	return nil, Issues{{Path: "/", Code: CodeSchemaParse, Message: "no mapping document found in YAML input"}}
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
