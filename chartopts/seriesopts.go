package chartopts

import (
	chartwire "github.com/reoring/chartwire"
)

var seriesOptionFields = chartwire.Fields().
	Field("title", chartwire.KindString).Nullable().
	Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("line_width", chartwire.KindInt).Nullable().Validate(chartwire.ValidatorLineWidth).
	Field("line_style", chartwire.KindAny).Nullable().ValidateFunc(validLineStyle).
	Field("visible", chartwire.KindBool).Nullable().
	Field("price_line_visible", chartwire.KindBool).Nullable().
	Field("last_value_visible", chartwire.KindBool).Nullable().
	Field("price_format", chartwire.KindRecord).Nullable().
	MustBuild()

// SeriesOptions configures one plotted series: styling, visibility toggles,
// and the nested price format.
type SeriesOptions struct {
	*chartwire.Record
}

// NewSeriesOptions constructs empty series options; every field starts
// absent and is omitted from the wire mapping until set.
func NewSeriesOptions() (*SeriesOptions, error) {
	rec, err := seriesOptionFields.New(nil)
	if err != nil {
		return nil, err
	}
	return &SeriesOptions{Record: rec}, nil
}

// SeriesOptionsFromMapping reconstructs series options from a
// wire-convention mapping, dropping unknown keys. A nested priceFormat
// mapping reconstructs through PriceFormatFromMapping.
func SeriesOptionsFromMapping(m map[string]any) (*SeriesOptions, error) {
	native := filterMapping(seriesOptionFields, m)
	if pf, ok := native["price_format"].(map[string]any); ok {
		rec, err := PriceFormatFromMapping(pf)
		if err != nil {
			return nil, err
		}
		native["price_format"] = rec
	}
	rec, err := seriesOptionFields.New(native)
	if err != nil {
		return nil, err
	}
	return &SeriesOptions{Record: rec}, nil
}

// Update assigns matching fields from a wire-convention mapping in place.
func (o *SeriesOptions) Update(m map[string]any) error {
	native, _ := chartwire.ConvertKeys(m, chartwire.ToNative, false).(map[string]any)
	if pf, ok := native["price_format"].(map[string]any); ok {
		rec, err := PriceFormatFromMapping(pf)
		if err != nil {
			return err
		}
		native["price_format"] = rec
	}
	return updateRecord(o.Record, native)
}

func (o *SeriesOptions) SetTitle(t string) *SeriesOptions     { o.With("title", t); return o }
func (o *SeriesOptions) SetColor(c string) *SeriesOptions     { o.With("color", c); return o }
func (o *SeriesOptions) SetLineWidth(n int) *SeriesOptions    { o.With("line_width", n); return o }
func (o *SeriesOptions) SetLineStyle(s LineStyle) *SeriesOptions {
	o.With("line_style", s)
	return o
}
func (o *SeriesOptions) SetVisible(v bool) *SeriesOptions { o.With("visible", v); return o }
func (o *SeriesOptions) SetPriceLineVisible(v bool) *SeriesOptions {
	o.With("price_line_visible", v)
	return o
}
func (o *SeriesOptions) SetLastValueVisible(v bool) *SeriesOptions {
	o.With("last_value_visible", v)
	return o
}
func (o *SeriesOptions) SetPriceFormat(f *PriceFormat) *SeriesOptions {
	o.With("price_format", f)
	return o
}

// PriceFormat returns the nested format and whether one is set.
func (o *SeriesOptions) PriceFormat() (*PriceFormat, bool) {
	v, ok := o.Get("price_format")
	if !ok {
		return nil, false
	}
	f, ok := v.(*PriceFormat)
	return f, ok
}
