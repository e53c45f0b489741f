package series

import (
	chartwire "github.com/reoring/chartwire"
)

var histogramFields = chartwire.Fields().
	Field("time", chartwire.KindAny).Required().Validate(chartwire.ValidatorTime).
	Field("value", chartwire.KindFloat).Required().
	Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	MustBuild()

// HistogramPoint is one column of a histogram series.
type HistogramPoint struct {
	*chartwire.Record
}

// NewHistogramPoint constructs a validated histogram column.
func NewHistogramPoint(t any, value float64) (*HistogramPoint, error) {
	rec, err := histogramFields.New(map[string]any{"time": t, "value": value})
	if err != nil {
		return nil, err
	}
	return &HistogramPoint{Record: rec}, nil
}

// HistogramPointFromMap constructs a column from a native-convention mapping.
func HistogramPointFromMap(m map[string]any) (*HistogramPoint, error) {
	rec, err := histogramFields.New(m)
	if err != nil {
		return nil, err
	}
	return &HistogramPoint{Record: rec}, nil
}

func (h *HistogramPoint) SetTime(t any) *HistogramPoint      { h.With("time", t); return h }
func (h *HistogramPoint) SetValue(v float64) *HistogramPoint { h.With("value", v); return h }
func (h *HistogramPoint) SetColor(c string) *HistogramPoint  { h.With("color", c); return h }

func (h *HistogramPoint) Time() int64    { return h.MustGet("time").(int64) }
func (h *HistogramPoint) Value() float64 { return h.MustGet("value").(float64) }
