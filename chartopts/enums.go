package chartopts

import (
	chartwire "github.com/reoring/chartwire"
	"github.com/reoring/chartwire/i18n"
)

// LineStyle selects the stroke pattern of a plotted line.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDotted
	LineDashed
	LineLargeDashed
	LineSparseDotted
)

// EnumValue returns the wire scalar.
func (s LineStyle) EnumValue() any { return int(s) }

func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "solid"
	case LineDotted:
		return "dotted"
	case LineDashed:
		return "dashed"
	case LineLargeDashed:
		return "large_dashed"
	case LineSparseDotted:
		return "sparse_dotted"
	default:
		return "unknown"
	}
}

// validLineStyle accepts a LineStyle, its numeric code, or its name.
func validLineStyle(field string, v any) (any, error) {
	switch t := v.(type) {
	case LineStyle:
		if t >= LineSolid && t <= LineSparseDotted {
			return t, nil
		}
	case int:
		if t >= 0 && t <= 4 {
			return LineStyle(t), nil
		}
	case float64:
		if t == float64(int(t)) && t >= 0 && t <= 4 {
			return LineStyle(int(t)), nil
		}
	case string:
		for s := LineSolid; s <= LineSparseDotted; s++ {
			if t == s.String() {
				return s, nil
			}
		}
	}
	return nil, chartwire.Issues{{
		Field: field, Code: chartwire.CodeInvalidValue,
		Message: i18n.T(chartwire.CodeInvalidValue, nil),
		Hint:    "want solid|dotted|dashed|large_dashed|sparse_dotted or 0..4",
		Params:  map[string]any{"got": v},
	}}
}

// PriceFormatKind is the formatting family applied to a price axis.
type PriceFormatKind string

const (
	FormatPrice   PriceFormatKind = "price"
	FormatVolume  PriceFormatKind = "volume"
	FormatPercent PriceFormatKind = "percent"
	FormatCustom  PriceFormatKind = "custom"
)

// EnumValue returns the wire scalar.
func (k PriceFormatKind) EnumValue() any { return string(k) }

// validFormatKind accepts a PriceFormatKind or its string form.
func validFormatKind(field string, v any) (any, error) {
	var s string
	switch t := v.(type) {
	case PriceFormatKind:
		s = string(t)
	case string:
		s = t
	default:
		return nil, chartwire.Issues{{
			Field: field, Code: chartwire.CodeInvalidType,
			Message: i18n.T(chartwire.CodeInvalidType, nil),
			Params:  map[string]any{"expected": "string"},
		}}
	}
	switch PriceFormatKind(s) {
	case FormatPrice, FormatVolume, FormatPercent, FormatCustom:
		return PriceFormatKind(s), nil
	}
	return nil, chartwire.Issues{{
		Field: field, Code: chartwire.CodeInvalidValue,
		Message: i18n.T(chartwire.CodeInvalidValue, nil),
		Hint:    "want price|volume|percent|custom",
		Params:  map[string]any{"got": v},
	}}
}
