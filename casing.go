package chartwire

import (
	"strings"
	"unicode"
)

// Direction selects the target naming convention for key conversion.
type Direction int

const (
	ToWire   Direction = iota // snake_case -> camelCase
	ToNative                  // camelCase -> snake_case
)

// ToCamel converts a snake_case identifier to camelCase. Empty components
// produced by doubled or trailing separators are dropped. A single leading
// separator acts as a leading-capital marker: "_foo_bar" becomes "FooBar".
func ToCamel(s string) string {
	if s == "" || !strings.ContainsRune(s, '_') {
		return s
	}
	leadCap := strings.HasPrefix(s, "_")
	parts := strings.Split(s, "_")
	b := &strings.Builder{}
	b.Grow(len(s))
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first && !leadCap {
			b.WriteString(p)
		} else {
			r := []rune(p)
			b.WriteRune(unicode.ToUpper(r[0]))
			b.WriteString(string(r[1:]))
		}
		first = false
	}
	return b.String()
}

// ToSnake converts a camelCase identifier to snake_case by inserting a
// separator before every uppercase letter not at position zero, then
// lowercasing the result.
func ToSnake(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func convertKey(k string, dir Direction) string {
	if dir == ToNative {
		return ToSnake(k)
	}
	return ToCamel(k)
}

// ConvertKeys rewrites every key of a mapping using the scalar converter for
// dir. When recursive is true, mappings nested inside mappings or sequences
// are rewritten too; sequences are walked element-wise without renaming.
// Values that are neither mappings nor sequences pass through unchanged, as
// does non-mapping input. ConvertKeys never fails.
func ConvertKeys(v any, dir Direction, recursive bool) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if recursive {
				val = convertNested(val, dir)
			}
			out[convertKey(k, dir)] = val
		}
		return out
	case *WireMap:
		if t == nil {
			return t
		}
		out := NewWireMap()
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			if recursive {
				val = convertNested(val, dir)
			}
			out.Set(convertKey(k, dir), val)
		}
		return out
	default:
		return v
	}
}

// convertNested descends into containers during a recursive ConvertKeys.
func convertNested(v any, dir Direction) any {
	switch t := v.(type) {
	case map[string]any, *WireMap:
		return ConvertKeys(t, dir, true)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = convertNested(e, dir)
		}
		return out
	default:
		return v
	}
}
