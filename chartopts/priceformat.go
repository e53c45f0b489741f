package chartopts

import (
	chartwire "github.com/reoring/chartwire"
)

var priceFormatFields = chartwire.Fields().
	Field("type", chartwire.KindAny).Required().ValidateFunc(validFormatKind).
	Field("precision", chartwire.KindInt).Nullable().Validate(chartwire.ValidatorPrecision).
	Field("min_move", chartwire.KindFloat).Nullable().Validate(chartwire.ValidatorMinMove).
	MustBuild()

// PriceFormat describes how prices of a series render on the axis.
type PriceFormat struct {
	*chartwire.Record
}

// NewPriceFormat constructs a price format of the given kind.
func NewPriceFormat(kind PriceFormatKind) (*PriceFormat, error) {
	rec, err := priceFormatFields.New(map[string]any{"type": kind})
	if err != nil {
		return nil, err
	}
	return &PriceFormat{Record: rec}, nil
}

// PriceFormatFromMapping reconstructs a price format from a wire-convention
// mapping, dropping unknown keys.
func PriceFormatFromMapping(m map[string]any) (*PriceFormat, error) {
	rec, err := priceFormatFields.New(filterMapping(priceFormatFields, m))
	if err != nil {
		return nil, err
	}
	return &PriceFormat{Record: rec}, nil
}

// Update assigns matching fields from a wire-convention mapping in place.
func (f *PriceFormat) Update(m map[string]any) error {
	return updateRecord(f.Record, m)
}

func (f *PriceFormat) SetKind(k PriceFormatKind) *PriceFormat { f.With("type", k); return f }
func (f *PriceFormat) SetPrecision(n int) *PriceFormat        { f.With("precision", n); return f }
func (f *PriceFormat) SetMinMove(v float64) *PriceFormat      { f.With("min_move", v); return f }

func (f *PriceFormat) Kind() PriceFormatKind { return f.MustGet("type").(PriceFormatKind) }
