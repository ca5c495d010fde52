package ollamawire

import (
	"strconv"
	"strings"
)

// inlineRefs rewrites a schema document so every "$ref" node is replaced by a
// copy of the sub-schema it points to, resolved against the original root.
// $defs/definitions containers are dropped from the output once their members
// are inlined. Remote, dangling and cyclic references are schema_ref issues.
func inlineRefs(root map[string]any) (map[string]any, error) {
	out, err := inlineNode(root, root, nil, map[string]bool{})
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		// a root-level $ref resolved to a non-object sub-schema
		return nil, Issues{{Path: "/", Code: CodeSchemaRef, Message: "root reference must resolve to an object schema"}}
	}
	return m, nil
}

func inlineNode(node any, root map[string]any, path []string, active map[string]bool) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if ref, ok := n["$ref"].(string); ok {
			// draft-07 ignores siblings of $ref, so the node is replaced
			// wholesale by the expansion
			return expandRef(ref, root, path, active)
		}
		out := make(map[string]any, len(n))
		for k, v := range n {
			if k == "$defs" || k == "definitions" {
				continue
			}
			iv, err := inlineNode(v, root, append(path, escapeToken(k)), active)
			if err != nil {
				return nil, err
			}
			out[k] = iv
		}
		return out, nil
	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			iv, err := inlineNode(v, root, append(path, strconv.Itoa(i)), active)
			if err != nil {
				return nil, err
			}
			out[i] = iv
		}
		return out, nil
	default:
		return n, nil
	}
}

func expandRef(ref string, root map[string]any, path []string, active map[string]bool) (any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, Issues{{Path: pointer(path), Code: CodeSchemaRef, Message: "remote reference cannot be inlined: " + ref}}
	}
	if active[ref] {
		return nil, Issues{{Path: pointer(path), Code: CodeSchemaRef, Message: "reference cycle: " + ref}}
	}
	target, ok := resolvePointer(root, ref[1:])
	if !ok {
		return nil, Issues{{Path: pointer(path), Code: CodeSchemaRef, Message: "dangling reference: " + ref}}
	}
	active[ref] = true
	out, err := inlineNode(target, root, path, active)
	delete(active, ref)
	return out, err
}

// resolvePointer walks an RFC 6901 pointer ("" addresses the whole document)
// against JSON-like maps and slices.
func resolvePointer(root map[string]any, ptr string) (any, bool) {
	if ptr == "" {
		return root, true
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, false
	}
	var cur any = root
	for _, tok := range strings.Split(ptr[1:], "/") {
		tok = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[tok]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// escapeToken escapes '~' -> '~0', '/' -> '~1' per RFC6901.
func escapeToken(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}

func pointer(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}
