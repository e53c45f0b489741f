package chartopts_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	chartwire "github.com/reoring/chartwire"
	"github.com/reoring/chartwire/chartopts"
)

func TestPriceFormat_Serialize(t *testing.T) {
	f, err := chartopts.NewPriceFormat(chartopts.FormatPrice)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	f.SetPrecision(2).SetMinMove(0.01)
	if err := f.Err(); err != nil {
		t.Fatalf("chain: %v", err)
	}
	got := f.Serialize(chartwire.DefaultOptions()).ToMap()
	want := map[string]any{"type": "price", "precision": 2, "minMove": 0.01}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("price format wire (-want +got):\n%s", diff)
	}
}

func TestPriceFormat_RejectsBadKind(t *testing.T) {
	if _, err := chartopts.NewPriceFormat("scientific"); !chartwire.IsCode(err, chartwire.CodeInvalidValue) {
		t.Fatalf("expected invalid_value, got %v", err)
	}
}

func TestPriceLine_LineStyleUnwraps(t *testing.T) {
	p, err := chartopts.NewPriceLine(101.5)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	p.SetColor("green").SetLineWidth(2).SetLineStyle(chartopts.LineDashed).SetAxisLabelVisible(true)
	if err := p.Err(); err != nil {
		t.Fatalf("chain: %v", err)
	}
	got := p.Serialize(chartwire.DefaultOptions()).ToMap()
	want := map[string]any{
		"price": 101.5, "color": "green", "lineWidth": 2,
		"lineStyle": 2, "axisLabelVisible": true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("price line wire (-want +got):\n%s", diff)
	}
}

func TestUpdate_IgnoresUnknownKeys(t *testing.T) {
	p, _ := chartopts.NewPriceLine(100)
	err := p.Update(map[string]any{
		"lineWidth":   3,
		"lineStyle":   "dotted",
		"unknownKnob": "ignored",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got := p.Serialize(chartwire.DefaultOptions()).ToMap()
	if got["lineWidth"] != 3 || got["lineStyle"] != 1 {
		t.Fatalf("update lost values: %v", got)
	}
	if _, ok := got["unknownKnob"]; ok {
		t.Fatalf("unknown key must not appear: %v", got)
	}
}

func TestUpdate_StillValidates(t *testing.T) {
	p, _ := chartopts.NewPriceLine(100)
	err := p.Update(map[string]any{"color": "notacolor"})
	if !chartwire.IsCode(err, chartwire.CodeInvalidColor) {
		t.Fatalf("expected invalid_color, got %v", err)
	}
}

func TestSeriesOptions_NestedPriceFormat(t *testing.T) {
	o, err := chartopts.SeriesOptionsFromMapping(map[string]any{
		"title":            "AAPL",
		"priceFormat":      map[string]any{"type": "volume", "precision": 0},
		"priceLineVisible": false,
		"ignoredExtra":     1,
	})
	if err != nil {
		t.Fatalf("from mapping: %v", err)
	}
	pf, ok := o.PriceFormat()
	if !ok || pf.Kind() != chartopts.FormatVolume {
		t.Fatalf("nested price format lost: %v", pf)
	}

	got := o.Serialize(chartwire.DefaultOptions()).ToMap()
	want := map[string]any{
		"title":            "AAPL",
		"priceFormat":      map[string]any{"type": "volume", "precision": 0},
		"priceLineVisible": false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("series options wire (-want +got):\n%s", diff)
	}
}

func TestSeriesOptions_FlattenedPriceFormat(t *testing.T) {
	o, _ := chartopts.NewSeriesOptions()
	pf, _ := chartopts.NewPriceFormat(chartopts.FormatPercent)
	o.SetPriceFormat(pf)

	opt := chartwire.DefaultOptions().WithFlatten("price_format")
	got := o.Serialize(opt).ToMap()
	if got["type"] != "percent" {
		t.Fatalf("flattened price format must surface type at top level, got %v", got)
	}
	if _, ok := got["priceFormat"]; ok {
		t.Fatalf("flattened field must not nest: %v", got)
	}
}

func TestChartOptions_UpdateAndLayout(t *testing.T) {
	c, err := chartopts.NewChartOptions()
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	err = c.Update(map[string]any{
		"width":  800,
		"height": 600,
		"layout": map[string]any{"backgroundColor": "#1e1e1e", "textColor": "white"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	l, ok := c.Layout()
	if !ok {
		t.Fatalf("layout not assigned")
	}
	if v := l.MustGet("background_color"); v != "#1e1e1e" {
		t.Fatalf("nested layout value lost: %v", v)
	}

	got := c.Serialize(chartwire.DefaultOptions()).ToMap()
	want := map[string]any{
		"width": 800, "height": 600,
		"layout": map[string]any{"backgroundColor": "#1e1e1e", "textColor": "white"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chart options wire (-want +got):\n%s", diff)
	}
}

func TestChartOptionsFromYAML(t *testing.T) {
	doc := []byte(`
width: 640
height: 480
auto_size: true
layout:
  background_color: "#FFFFFF"
  font_size: 12
ignored_key: nope
`)
	c, err := chartopts.ChartOptionsFromYAML(doc)
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	got := c.Serialize(chartwire.DefaultOptions()).ToMap()
	want := map[string]any{
		"width": 640, "height": 480, "autoSize": true,
		"layout": map[string]any{"backgroundColor": "#FFFFFF", "fontSize": 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("yaml chart options (-want +got):\n%s", diff)
	}
}

func TestPriceLineFromYAML_Invalid(t *testing.T) {
	doc := []byte("price: 10\ncolor: notacolor\n")
	if _, err := chartopts.PriceLineFromYAML(doc); !chartwire.IsCode(err, chartwire.CodeInvalidColor) {
		t.Fatalf("expected invalid_color, got %v", err)
	}
}
