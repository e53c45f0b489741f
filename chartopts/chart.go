package chartopts

import (
	chartwire "github.com/reoring/chartwire"
)

var chartFields = chartwire.Fields().
	Field("width", chartwire.KindInt).Nullable().
	Field("height", chartwire.KindInt).Nullable().
	Field("auto_size", chartwire.KindBool).Nullable().
	Field("watermark", chartwire.KindString).Nullable().
	Field("layout", chartwire.KindRecord).Nullable().
	MustBuild()

// ChartOptions is the top-level option bundle of one chart instance.
type ChartOptions struct {
	*chartwire.Record
}

// NewChartOptions constructs empty chart options.
func NewChartOptions() (*ChartOptions, error) {
	rec, err := chartFields.New(nil)
	if err != nil {
		return nil, err
	}
	return &ChartOptions{Record: rec}, nil
}

// ChartOptionsFromMapping reconstructs chart options from a wire-convention
// mapping, dropping unknown keys. A nested layout mapping reconstructs
// through LayoutFromMapping.
func ChartOptionsFromMapping(m map[string]any) (*ChartOptions, error) {
	native := filterMapping(chartFields, m)
	if lo, ok := native["layout"].(map[string]any); ok {
		rec, err := LayoutFromMapping(lo)
		if err != nil {
			return nil, err
		}
		native["layout"] = rec
	}
	rec, err := chartFields.New(native)
	if err != nil {
		return nil, err
	}
	return &ChartOptions{Record: rec}, nil
}

// Update assigns matching fields from a wire-convention mapping in place.
func (c *ChartOptions) Update(m map[string]any) error {
	native, _ := chartwire.ConvertKeys(m, chartwire.ToNative, false).(map[string]any)
	if lo, ok := native["layout"].(map[string]any); ok {
		rec, err := LayoutFromMapping(lo)
		if err != nil {
			return err
		}
		native["layout"] = rec
	}
	return updateRecord(c.Record, native)
}

func (c *ChartOptions) SetWidth(n int) *ChartOptions  { c.With("width", n); return c }
func (c *ChartOptions) SetHeight(n int) *ChartOptions { c.With("height", n); return c }
func (c *ChartOptions) SetAutoSize(v bool) *ChartOptions {
	c.With("auto_size", v)
	return c
}
func (c *ChartOptions) SetWatermark(s string) *ChartOptions { c.With("watermark", s); return c }
func (c *ChartOptions) SetLayout(l *LayoutOptions) *ChartOptions {
	c.With("layout", l)
	return c
}

// Layout returns the nested layout options and whether one is set.
func (c *ChartOptions) Layout() (*LayoutOptions, bool) {
	v, ok := c.Get("layout")
	if !ok {
		return nil, false
	}
	l, ok := v.(*LayoutOptions)
	return l, ok
}
