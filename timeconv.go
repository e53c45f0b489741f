package chartwire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/reoring/chartwire/i18n"
)

// timeLayouts are tried in order for string inputs. Layouts without a zone
// are interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeTime converts the distinguished temporal field to epoch seconds.
// Accepted inputs: integer and floating epoch values, time.Time, json.Number,
// and parseable date-time strings. Unparseable strings fail with
// invalid_time; any other type fails with unsupported_time_type.
func NormalizeTime(v any) (int64, error) {
	return normalizeTimeAs("time", v)
}

// validateTime is the "time" built-in: it runs NormalizeTime against the
// declared field so temporal normalization happens on construction and on
// every mutation alike.
func validateTime(field string, v any) (any, error) {
	n, err := normalizeTimeAs(field, v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func normalizeTimeAs(field string, v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, invalidTime(field, fmt.Sprintf("%v", t), nil)
		}
		return int64(t), nil
	case float32:
		return normalizeTimeAs(field, float64(t))
	case json.Number:
		return normalizeNumberString(field, string(t))
	case time.Time:
		return t.Unix(), nil
	case string:
		return normalizeTimeString(field, t)
	default:
		return 0, Issues{{
			Field: field, Code: CodeUnsupportedTimeType,
			Message: i18n.T(CodeUnsupportedTimeType, nil),
			Params:  map[string]any{"got": fmt.Sprintf("%T", v)},
		}}
	}
}

func normalizeNumberString(field, s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), nil
	}
	return 0, invalidTime(field, s, nil)
}

func normalizeTimeString(field, s string) (int64, error) {
	// bare epoch digits are accepted in string form too
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, invalidTime(field, s, nil)
}

func invalidTime(field, got string, cause error) error {
	return Issues{{
		Field: field, Code: CodeInvalidTime,
		Message: i18n.T(CodeInvalidTime, nil),
		Hint:    "want epoch seconds, time.Time, or an ISO date/date-time string",
		Cause:   cause,
		Params:  map[string]any{"got": got},
	}}
}
