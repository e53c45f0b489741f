package chartopts

import (
	chartwire "github.com/reoring/chartwire"
)

var layoutFields = chartwire.Fields().
	Field("background_color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("text_color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
	Field("font_size", chartwire.KindInt).Nullable().Validate(chartwire.ValidatorPrecision).
	Field("font_family", chartwire.KindString).Nullable().
	MustBuild()

// LayoutOptions configures chart-wide colors and typography.
type LayoutOptions struct {
	*chartwire.Record
}

// NewLayoutOptions constructs empty layout options.
func NewLayoutOptions() (*LayoutOptions, error) {
	rec, err := layoutFields.New(nil)
	if err != nil {
		return nil, err
	}
	return &LayoutOptions{Record: rec}, nil
}

// LayoutFromMapping reconstructs layout options from a wire-convention
// mapping, dropping unknown keys.
func LayoutFromMapping(m map[string]any) (*LayoutOptions, error) {
	rec, err := layoutFields.New(filterMapping(layoutFields, m))
	if err != nil {
		return nil, err
	}
	return &LayoutOptions{Record: rec}, nil
}

// Update assigns matching fields from a wire-convention mapping in place.
func (l *LayoutOptions) Update(m map[string]any) error {
	return updateRecord(l.Record, m)
}

func (l *LayoutOptions) SetBackgroundColor(c string) *LayoutOptions {
	l.With("background_color", c)
	return l
}
func (l *LayoutOptions) SetTextColor(c string) *LayoutOptions { l.With("text_color", c); return l }
func (l *LayoutOptions) SetFontSize(n int) *LayoutOptions     { l.With("font_size", n); return l }
func (l *LayoutOptions) SetFontFamily(f string) *LayoutOptions {
	l.With("font_family", f)
	return l
}
