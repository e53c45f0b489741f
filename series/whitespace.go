package series

import (
	chartwire "github.com/reoring/chartwire"
)

var whitespaceFields = chartwire.Fields().
	Field("time", chartwire.KindAny).Required().Validate(chartwire.ValidatorTime).
	MustBuild()

// WhitespacePoint marks a gap in a series: a time with no value, used to
// keep the axis continuous across missing data.
type WhitespacePoint struct {
	*chartwire.Record
}

// NewWhitespacePoint constructs a validated gap marker.
func NewWhitespacePoint(t any) (*WhitespacePoint, error) {
	rec, err := whitespaceFields.New(map[string]any{"time": t})
	if err != nil {
		return nil, err
	}
	return &WhitespacePoint{Record: rec}, nil
}

func (w *WhitespacePoint) SetTime(t any) *WhitespacePoint { w.With("time", t); return w }

func (w *WhitespacePoint) Time() int64 { return w.MustGet("time").(int64) }
