package chartwire

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/reoring/chartwire/i18n"
)

// ValidatorFunc is a semantic validator: it receives the field name and the
// kind-checked value and returns the validated (possibly normalized) value.
// Returning Absent stores the absence marker on nullable fields.
type ValidatorFunc func(field string, v any) (any, error)

// Built-in validator names accepted by Validate on a field declaration.
const (
	ValidatorColor           = "color"
	ValidatorPrecision       = "precision"
	ValidatorMinMove         = "min_move"
	ValidatorPriceFormatType = "price_format_type"
	ValidatorLineWidth       = "line_width"
	ValidatorPercent         = "percent"
	ValidatorTime            = "time"
)

var builtinValidators = map[string]ValidatorFunc{
	ValidatorColor:           validateColor,
	ValidatorPrecision:       validatePrecision,
	ValidatorMinMove:         validateMinMove,
	ValidatorPriceFormatType: validatePriceFormatType,
	ValidatorLineWidth:       validateLineWidth,
	ValidatorPercent:         validatePercent,
	ValidatorTime:            validateTime,
}

var (
	_userValidatorMu sync.RWMutex
	_userValidators  = map[string]ValidatorFunc{}
)

// RegisterValidator installs a named validator usable from field declarations.
// Registering a name that is already taken (built-in or user) fails with
// duplicate_value.
func RegisterValidator(name string, fn ValidatorFunc) error {
	if name == "" || fn == nil {
		return Issues{{Field: name, Code: CodeInvalidValue, Message: i18n.T(CodeInvalidValue, nil), Hint: "validator name and func required"}}
	}
	if _, ok := builtinValidators[name]; ok {
		return Issues{{Field: name, Code: CodeDuplicateValue, Message: i18n.T(CodeDuplicateValue, nil), Hint: "built-in validator name"}}
	}
	_userValidatorMu.Lock()
	defer _userValidatorMu.Unlock()
	if _, ok := _userValidators[name]; ok {
		return Issues{{Field: name, Code: CodeDuplicateValue, Message: i18n.T(CodeDuplicateValue, nil), Hint: "validator already registered"}}
	}
	_userValidators[name] = fn
	return nil
}

func lookupValidator(name string) (ValidatorFunc, bool) {
	if fn, ok := builtinValidators[name]; ok {
		return fn, true
	}
	_userValidatorMu.RLock()
	defer _userValidatorMu.RUnlock()
	fn, ok := _userValidators[name]
	return fn, ok
}

// ---- color ----

// namedColors is the fixed set of accepted color keywords.
var namedColors = map[string]struct{}{
	"black": {}, "silver": {}, "gray": {}, "grey": {}, "white": {},
	"maroon": {}, "red": {}, "purple": {}, "fuchsia": {}, "magenta": {},
	"green": {}, "lime": {}, "olive": {}, "yellow": {}, "navy": {},
	"blue": {}, "teal": {}, "aqua": {}, "cyan": {}, "orange": {},
	"brown": {}, "pink": {}, "gold": {}, "indigo": {}, "violet": {},
	"coral": {}, "crimson": {}, "khaki": {}, "lavender": {}, "salmon": {},
	"turquoise": {}, "tan": {}, "plum": {}, "orchid": {}, "beige": {},
	"transparent": {},
}

// validateColor accepts "#RGB"/"#RGBA"/"#RRGGBB"/"#RRGGBBAA" hex forms,
// rgb(r,g,b) / rgba(r,g,b,a) with integer channels and optional 0-1 alpha,
// or a fixed named-color set. The empty string means absence.
func validateColor(field string, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, Issues{{
			Field: field, Code: CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Params:  map[string]any{"expected": "string", "got": reflect.TypeOf(v).String()},
		}}
	}
	if s == "" {
		return Absent, nil
	}
	if colorOK(s) {
		return s, nil
	}
	return nil, Issues{{
		Field: field, Code: CodeInvalidColor,
		Message: i18n.T(CodeInvalidColor, nil),
		Hint:    "want #RGB[A]/#RRGGBB[AA], rgb()/rgba(), or a color name",
		Params:  map[string]any{"got": s},
	}}
}

func colorOK(s string) bool {
	if strings.HasPrefix(s, "#") {
		return hexColorOK(s[1:])
	}
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "rgb(") && strings.HasSuffix(low, ")") {
		return rgbChannelsOK(low[4:len(low)-1], false)
	}
	if strings.HasPrefix(low, "rgba(") && strings.HasSuffix(low, ")") {
		return rgbChannelsOK(low[5:len(low)-1], true)
	}
	_, ok := namedColors[low]
	return ok
}

func hexColorOK(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func rgbChannelsOK(body string, alpha bool) bool {
	parts := strings.Split(body, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return false
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	if alpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return false
		}
	}
	return true
}

// ---- numeric validators ----

func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func wrongTypeIssue(field, expected string, v any) Issues {
	return Issues{{
		Field: field, Code: CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Params:  map[string]any{"expected": expected, "got": reflect.TypeOf(v).String()},
	}}
}

func rangeIssue(field, hint string, v any) Issues {
	return Issues{{
		Field: field, Code: CodeInvalidValue,
		Message: i18n.T(CodeInvalidValue, nil),
		Hint:    hint,
		Params:  map[string]any{"got": v},
	}}
}

// validatePrecision accepts a non-negative integer.
func validatePrecision(field string, v any) (any, error) {
	f, ok := numericValue(v)
	if !ok {
		return nil, wrongTypeIssue(field, "int", v)
	}
	if f < 0 || f != float64(int64(f)) {
		return nil, rangeIssue(field, "want a non-negative integer", v)
	}
	return int(f), nil
}

// validateMinMove accepts a positive real, normalized to float64.
func validateMinMove(field string, v any) (any, error) {
	f, ok := numericValue(v)
	if !ok {
		return nil, wrongTypeIssue(field, "number", v)
	}
	if f <= 0 {
		return nil, rangeIssue(field, "want a positive number", v)
	}
	return f, nil
}

// validatePriceFormatType accepts one of the fixed formatting kinds.
func validatePriceFormatType(field string, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, wrongTypeIssue(field, "string", v)
	}
	switch s {
	case "price", "volume", "percent", "custom":
		return s, nil
	}
	return nil, rangeIssue(field, "want price|volume|percent|custom", v)
}

// validateLineWidth accepts an integer stroke width in [1, 10].
func validateLineWidth(field string, v any) (any, error) {
	f, ok := numericValue(v)
	if !ok {
		return nil, wrongTypeIssue(field, "int", v)
	}
	if f != float64(int64(f)) || f < 1 || f > 10 {
		return nil, rangeIssue(field, "want an integer in [1, 10]", v)
	}
	return int(f), nil
}

// validatePercent accepts a real in [0, 100], normalized to float64.
func validatePercent(field string, v any) (any, error) {
	f, ok := numericValue(v)
	if !ok {
		return nil, wrongTypeIssue(field, "number", v)
	}
	if f < 0 || f > 100 {
		return nil, rangeIssue(field, "want a number in [0, 100]", v)
	}
	return f, nil
}
