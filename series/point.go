package series

import (
	chartwire "github.com/reoring/chartwire"
)

var pointFields = chartwire.Fields().
	Field("time", chartwire.KindAny).Required().Validate(chartwire.ValidatorTime).
	Field("value", chartwire.KindFloat).Required().
	Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	MustBuild()

// Point is a single-value line point: time, value, and an optional color.
type Point struct {
	*chartwire.Record
}

// NewPoint constructs a validated point. t accepts anything NormalizeTime
// accepts (epoch numbers, time.Time, date strings).
func NewPoint(t any, value float64) (*Point, error) {
	rec, err := pointFields.New(map[string]any{"time": t, "value": value})
	if err != nil {
		return nil, err
	}
	return &Point{Record: rec}, nil
}

// PointFromMap constructs a point from a native-convention mapping.
func PointFromMap(m map[string]any) (*Point, error) {
	rec, err := pointFields.New(m)
	if err != nil {
		return nil, err
	}
	return &Point{Record: rec}, nil
}

func (p *Point) SetTime(t any) *Point {
	p.With("time", t)
	return p
}

func (p *Point) SetValue(v float64) *Point {
	p.With("value", v)
	return p
}

func (p *Point) SetColor(c string) *Point {
	p.With("color", c)
	return p
}

// Time returns the normalized epoch seconds.
func (p *Point) Time() int64 { return p.MustGet("time").(int64) }

// Value returns the point's value.
func (p *Point) Value() float64 { return p.MustGet("value").(float64) }

// Color returns the color and whether one is set.
func (p *Point) Color() (string, bool) {
	v, ok := p.Get("color")
	if !ok {
		return "", false
	}
	return v.(string), true
}
