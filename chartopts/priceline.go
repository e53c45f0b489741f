package chartopts

import (
	chartwire "github.com/reoring/chartwire"
)

var priceLineFields = chartwire.Fields().
	Field("price", chartwire.KindFloat).Required().
	Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("line_width", chartwire.KindInt).Nullable().Validate(chartwire.ValidatorLineWidth).
	Field("line_style", chartwire.KindAny).Nullable().ValidateFunc(validLineStyle).
	Field("axis_label_visible", chartwire.KindBool).Nullable().
	Field("title", chartwire.KindString).Nullable().
	MustBuild()

// PriceLineOptions configures a horizontal line pinned to a price level.
type PriceLineOptions struct {
	*chartwire.Record
}

// NewPriceLine constructs price-line options at the given level.
func NewPriceLine(price float64) (*PriceLineOptions, error) {
	rec, err := priceLineFields.New(map[string]any{"price": price})
	if err != nil {
		return nil, err
	}
	return &PriceLineOptions{Record: rec}, nil
}

// PriceLineFromMapping reconstructs price-line options from a
// wire-convention mapping, dropping unknown keys.
func PriceLineFromMapping(m map[string]any) (*PriceLineOptions, error) {
	rec, err := priceLineFields.New(filterMapping(priceLineFields, m))
	if err != nil {
		return nil, err
	}
	return &PriceLineOptions{Record: rec}, nil
}

// Update assigns matching fields from a wire-convention mapping in place.
func (p *PriceLineOptions) Update(m map[string]any) error {
	return updateRecord(p.Record, m)
}

func (p *PriceLineOptions) SetPrice(v float64) *PriceLineOptions { p.With("price", v); return p }
func (p *PriceLineOptions) SetColor(c string) *PriceLineOptions  { p.With("color", c); return p }
func (p *PriceLineOptions) SetLineWidth(n int) *PriceLineOptions { p.With("line_width", n); return p }
func (p *PriceLineOptions) SetLineStyle(s LineStyle) *PriceLineOptions {
	p.With("line_style", s)
	return p
}
func (p *PriceLineOptions) SetAxisLabelVisible(v bool) *PriceLineOptions {
	p.With("axis_label_visible", v)
	return p
}
func (p *PriceLineOptions) SetTitle(t string) *PriceLineOptions { p.With("title", t); return p }

func (p *PriceLineOptions) Price() float64 { return p.MustGet("price").(float64) }
