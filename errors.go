package chartwire

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType         = "invalid_type"
	CodeInvalidValue        = "invalid_value"
	CodeRequired            = "required"
	CodeUnknownKey          = "unknown_key"
	CodeDuplicateValue      = "duplicate_value"
	CodeInvalidColor        = "invalid_color"
	CodeInvalidTime         = "invalid_time"
	CodeUnsupportedTimeType = "unsupported_time_type"
	CodeNotFound            = "not_found"
)

// Issue represents a single validation or configuration failure.
type Issue struct {
	Field   string // Declared field name in the native convention (for example: border_color).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, accepted forms, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"bool", "got":"int"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
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
		// e.g. invalid_color at border_color
		fmt.Fprintf(b, "%s at %s", it.Code, it.Field)
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

// IsCode reports whether err carries at least one Issue with the given code.
func IsCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
