package series

import (
	chartwire "github.com/reoring/chartwire"
)

var barFields = chartwire.Fields().
	Field("time", chartwire.KindAny).Required().Validate(chartwire.ValidatorTime).
	Field("open", chartwire.KindFloat).Required().
	Field("high", chartwire.KindFloat).Required().
	Field("low", chartwire.KindFloat).Required().
	Field("close", chartwire.KindFloat).Required().
	Field("volume", chartwire.KindFloat).Nullable().
	Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("border_color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("wick_color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	MustBuild()

// Bar is one OHLC candle, optionally carrying volume and per-bar colors.
// Low/high against open/close are not cross-checked; the frontend accepts
// raw bars as-is.
type Bar struct {
	*chartwire.Record
}

// NewBar constructs a validated bar.
func NewBar(t any, open, high, low, closePrice float64) (*Bar, error) {
	rec, err := barFields.New(map[string]any{
		"time":  t,
		"open":  open,
		"high":  high,
		"low":   low,
		"close": closePrice,
	})
	if err != nil {
		return nil, err
	}
	return &Bar{Record: rec}, nil
}

// BarFromMap constructs a bar from a native-convention mapping.
func BarFromMap(m map[string]any) (*Bar, error) {
	rec, err := barFields.New(m)
	if err != nil {
		return nil, err
	}
	return &Bar{Record: rec}, nil
}

func (b *Bar) SetTime(t any) *Bar            { b.With("time", t); return b }
func (b *Bar) SetOpen(v float64) *Bar        { b.With("open", v); return b }
func (b *Bar) SetHigh(v float64) *Bar        { b.With("high", v); return b }
func (b *Bar) SetLow(v float64) *Bar         { b.With("low", v); return b }
func (b *Bar) SetClose(v float64) *Bar       { b.With("close", v); return b }
func (b *Bar) SetVolume(v float64) *Bar      { b.With("volume", v); return b }
func (b *Bar) SetColor(c string) *Bar        { b.With("color", c); return b }
func (b *Bar) SetBorderColor(c string) *Bar  { b.With("border_color", c); return b }
func (b *Bar) SetWickColor(c string) *Bar    { b.With("wick_color", c); return b }

// Time returns the normalized epoch seconds.
func (b *Bar) Time() int64 { return b.MustGet("time").(int64) }

func (b *Bar) Open() float64  { return b.MustGet("open").(float64) }
func (b *Bar) High() float64  { return b.MustGet("high").(float64) }
func (b *Bar) Low() float64   { return b.MustGet("low").(float64) }
func (b *Bar) Close() float64 { return b.MustGet("close").(float64) }
