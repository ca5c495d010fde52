package ollamawire

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeSchemaParse flags a format payload that is neither the literal
	// "json" nor a parseable schema document.
	CodeSchemaParse = "schema_parse"
	// CodeSchemaRef flags a $ref that cannot be inlined: remote, dangling
	// or cyclic.
	CodeSchemaRef = "schema_ref"
	// CodeInvalidType flags a wire value of the wrong JSON type.
	CodeInvalidType = "invalid_type"
	// CodeInvalidFormat flags a keep_alive string that does not match
	// <integer><unit>.
	CodeInvalidFormat = "invalid_format"
)

// Issue represents a single decoding entry.
type Issue struct {
	Path    string // JSON Pointer into the wire value (for example: /properties/city).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error, surfaced unmodified.
}

// Issues is a collection of decoding errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. schema_parse at /format
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
