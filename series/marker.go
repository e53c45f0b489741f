package series

import (
	chartwire "github.com/reoring/chartwire"
	"github.com/reoring/chartwire/i18n"
)

// MarkerPosition places a marker relative to its bar.
type MarkerPosition string

const (
	MarkerAboveBar MarkerPosition = "aboveBar"
	MarkerBelowBar MarkerPosition = "belowBar"
	MarkerInBar    MarkerPosition = "inBar"
)

// EnumValue returns the wire scalar.
func (p MarkerPosition) EnumValue() any { return string(p) }

// MarkerShape selects the glyph drawn for a marker.
type MarkerShape string

const (
	MarkerCircle    MarkerShape = "circle"
	MarkerSquare    MarkerShape = "square"
	MarkerArrowUp   MarkerShape = "arrowUp"
	MarkerArrowDown MarkerShape = "arrowDown"
)

// EnumValue returns the wire scalar.
func (s MarkerShape) EnumValue() any { return string(s) }

func validPosition(field string, v any) (any, error) {
	switch t := v.(type) {
	case MarkerPosition:
		switch t {
		case MarkerAboveBar, MarkerBelowBar, MarkerInBar:
			return t, nil
		}
	case string:
		switch t {
		case "aboveBar", "above_bar":
			return MarkerAboveBar, nil
		case "belowBar", "below_bar":
			return MarkerBelowBar, nil
		case "inBar", "in_bar":
			return MarkerInBar, nil
		}
	}
	return nil, chartwire.Issues{{
		Field: field, Code: chartwire.CodeInvalidValue,
		Message: i18n.T(chartwire.CodeInvalidValue, nil),
		Hint:    "want above_bar|below_bar|in_bar",
		Params:  map[string]any{"got": v},
	}}
}

func validShape(field string, v any) (any, error) {
	switch t := v.(type) {
	case MarkerShape:
		switch t {
		case MarkerCircle, MarkerSquare, MarkerArrowUp, MarkerArrowDown:
			return t, nil
		}
	case string:
		switch t {
		case "circle":
			return MarkerCircle, nil
		case "square":
			return MarkerSquare, nil
		case "arrowUp", "arrow_up":
			return MarkerArrowUp, nil
		case "arrowDown", "arrow_down":
			return MarkerArrowDown, nil
		}
	}
	return nil, chartwire.Issues{{
		Field: field, Code: chartwire.CodeInvalidValue,
		Message: i18n.T(chartwire.CodeInvalidValue, nil),
		Hint:    "want circle|square|arrow_up|arrow_down",
		Params:  map[string]any{"got": v},
	}}
}

var markerFields = chartwire.Fields().
	Field("time", chartwire.KindAny).Required().Validate(chartwire.ValidatorTime).
	Field("position", chartwire.KindAny).Required().ValidateFunc(validPosition).
	Field("shape", chartwire.KindAny).Required().ValidateFunc(validShape).
	Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("text", chartwire.KindString).Nullable().
	Field("size", chartwire.KindInt).Nullable().Validate(chartwire.ValidatorLineWidth).
	MustBuild()

// Marker annotates one bar of a series with a positioned glyph.
type Marker struct {
	*chartwire.Record
}

// NewMarker constructs a validated marker.
func NewMarker(t any, pos MarkerPosition, shape MarkerShape) (*Marker, error) {
	rec, err := markerFields.New(map[string]any{
		"time":     t,
		"position": pos,
		"shape":    shape,
	})
	if err != nil {
		return nil, err
	}
	return &Marker{Record: rec}, nil
}

// MarkerFromMap constructs a marker from a native-convention mapping.
func MarkerFromMap(m map[string]any) (*Marker, error) {
	rec, err := markerFields.New(m)
	if err != nil {
		return nil, err
	}
	return &Marker{Record: rec}, nil
}

func (m *Marker) SetTime(t any) *Marker                  { m.With("time", t); return m }
func (m *Marker) SetPosition(p MarkerPosition) *Marker   { m.With("position", p); return m }
func (m *Marker) SetShape(s MarkerShape) *Marker         { m.With("shape", s); return m }
func (m *Marker) SetColor(c string) *Marker              { m.With("color", c); return m }
func (m *Marker) SetText(s string) *Marker               { m.With("text", s); return m }
func (m *Marker) SetSize(n int) *Marker                  { m.With("size", n); return m }

func (m *Marker) Time() int64 { return m.MustGet("time").(int64) }

func (m *Marker) Position() MarkerPosition { return m.MustGet("position").(MarkerPosition) }
func (m *Marker) Shape() MarkerShape       { return m.MustGet("shape").(MarkerShape) }
