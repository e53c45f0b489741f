package chartwire_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	chartwire "github.com/reoring/chartwire"
)

// wireStyle is a tiny enum used to exercise unwrap behavior.
type wireStyle int

func (s wireStyle) EnumValue() any { return int(s) }

func TestSerialize_EndToEndScenario(t *testing.T) {
	fs := chartwire.Fields().
		Field("value", chartwire.KindFloat).Required().
		Field("color", chartwire.KindString).Nullable().Validate(chartwire.ValidatorColor).
		MustBuild()
	rec, err := fs.New(map[string]any{"value": 12.5})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	wm := chartwire.Serialize(rec, chartwire.DefaultOptions())
	want := map[string]any{"value": 12.5}
	if diff := cmp.Diff(want, wm.ToMap()); diff != "" {
		t.Fatalf("color must be omitted (-want +got):\n%s", diff)
	}

	if err := rec.Set("color", "#FF0000"); err != nil {
		t.Fatalf("set color: %v", err)
	}
	wm = chartwire.Serialize(rec, chartwire.DefaultOptions())
	want = map[string]any{"value": 12.5, "color": "#FF0000"}
	if diff := cmp.Diff(want, wm.ToMap()); diff != "" {
		t.Fatalf("after mutation (-want +got):\n%s", diff)
	}
}

func TestSerialize_OmissionToggles(t *testing.T) {
	fs := chartwire.Fields().
		Field("title", chartwire.KindString).Nullable().
		Field("meta", chartwire.KindMap).Nullable().
		Field("tags", chartwire.KindSlice).Nullable().
		MustBuild()
	rec, _ := fs.New(map[string]any{
		"title": "",
		"meta":  map[string]any{},
		"tags":  []any{},
	})

	wm := chartwire.Serialize(rec, chartwire.DefaultOptions())
	if wm.Len() != 0 {
		t.Fatalf("default policy must omit empties, got %v", wm.ToMap())
	}

	keep := chartwire.Options{} // every omission disabled
	wm = chartwire.Serialize(rec, keep)
	got := wm.ToMap()
	if got["title"] != "" {
		t.Fatalf("empty string must survive, got %v", got)
	}
	if _, ok := got["meta"]; !ok {
		t.Fatalf("empty map must survive, got %v", got)
	}
	// absent nullable fields emit explicit nulls when OmitNil is off
	fs2 := chartwire.Fields().Field("gone", chartwire.KindString).Nullable().MustBuild()
	rec2, _ := fs2.New(nil)
	got2 := chartwire.Serialize(rec2, keep).ToMap()
	if v, ok := got2["gone"]; !ok || v != nil {
		t.Fatalf("expected explicit null, got %v", got2)
	}
}

func TestSerialize_KeyConversionAndFixedKeys(t *testing.T) {
	fs := chartwire.Fields().
		Field("time", chartwire.KindInt).Required().
		Field("value", chartwire.KindFloat).Required().
		Field("border_color", chartwire.KindString).Nullable().
		MustBuild()
	rec, _ := fs.New(map[string]any{"time": 1700000000, "value": 1.0, "border_color": "red"})
	got := chartwire.Serialize(rec, chartwire.DefaultOptions()).ToMap()
	want := map[string]any{"time": 1700000000, "value": 1.0, "borderColor": "red"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wire keys (-want +got):\n%s", diff)
	}
}

func TestSerialize_ZeroNaN(t *testing.T) {
	fs := chartwire.Fields().Field("value", chartwire.KindFloat).Required().MustBuild()
	rec, _ := fs.New(map[string]any{"value": math.NaN()})

	got := chartwire.Serialize(rec, chartwire.DefaultOptions()).ToMap()
	if got["value"] != 0.0 {
		t.Fatalf("NaN must become 0.0, got %v", got["value"])
	}

	raw := chartwire.Serialize(rec, chartwire.Options{}).ToMap()
	if f, ok := raw["value"].(float64); !ok || !math.IsNaN(f) {
		t.Fatalf("NaN must pass through when ZeroNaN is off, got %v", raw["value"])
	}
}

func TestSerialize_EnumUnwrap(t *testing.T) {
	fs := chartwire.Fields().Field("line_style", chartwire.KindAny).Nullable().MustBuild()
	rec, _ := fs.New(map[string]any{"line_style": wireStyle(2)})

	got := chartwire.Serialize(rec, chartwire.DefaultOptions()).ToMap()
	if got["lineStyle"] != 2 {
		t.Fatalf("enum must unwrap to scalar, got %v (%T)", got["lineStyle"], got["lineStyle"])
	}

	opt := chartwire.DefaultOptions()
	opt.UnwrapEnums = false
	kept := chartwire.Serialize(rec, opt).ToMap()
	if _, ok := kept["lineStyle"].(wireStyle); !ok {
		t.Fatalf("enum must stay wrapped, got %T", kept["lineStyle"])
	}
}

func TestSerialize_NestedRecordAndMapKeys(t *testing.T) {
	inner := chartwire.Fields().
		Field("min_move", chartwire.KindFloat).Required().
		MustBuild()
	innerRec, _ := inner.New(map[string]any{"min_move": 0.01})

	fs := chartwire.Fields().
		Field("price_format", chartwire.KindRecord).Nullable().
		Field("extra", chartwire.KindMap).Nullable().
		MustBuild()
	rec, _ := fs.New(map[string]any{
		"price_format": innerRec,
		"extra":        map[string]any{"deep_key": []any{map[string]any{"inner_key": 1}}},
	})

	got := chartwire.Serialize(rec, chartwire.DefaultOptions()).ToMap()
	want := map[string]any{
		"priceFormat": map[string]any{"minMove": 0.01},
		"extra":       map[string]any{"deepKey": []any{map[string]any{"innerKey": 1}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nested serialization (-want +got):\n%s", diff)
	}
}

func TestSerialize_Flattening(t *testing.T) {
	fs := chartwire.Fields().
		Field("price_format", chartwire.KindMap).Nullable().
		MustBuild()
	rec, _ := fs.New(map[string]any{"price_format": map[string]any{"a": 1, "b": 2}})

	opt := chartwire.DefaultOptions().WithFlatten("price_format")
	got := chartwire.Serialize(rec, opt).ToMap()
	want := map[string]any{"a": 1, "b": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("flatten (-want +got):\n%s", diff)
	}

	// without the hint the mapping nests under the converted key
	nested := chartwire.Serialize(rec, chartwire.DefaultOptions()).ToMap()
	if _, ok := nested["priceFormat"]; !ok {
		t.Fatalf("expected nested priceFormat, got %v", nested)
	}
}

func TestSerialize_FlatteningLastWriterWins(t *testing.T) {
	fs := chartwire.Fields().
		Field("a", chartwire.KindInt).Required().
		Field("bundle", chartwire.KindMap).Nullable().
		MustBuild()
	rec, _ := fs.New(map[string]any{
		"a":      1,
		"bundle": map[string]any{"a": 99},
	})
	opt := chartwire.DefaultOptions().WithFlatten("bundle")
	got := chartwire.Serialize(rec, opt).ToMap()
	if got["a"] != 99 {
		t.Fatalf("flattened entry must overwrite earlier key, got %v", got["a"])
	}
}

func TestSerializeWith_Overrides(t *testing.T) {
	fs := chartwire.Fields().
		Field("value", chartwire.KindFloat).Required().
		MustBuild()
	rec, _ := fs.New(map[string]any{"value": 1.0})
	got := chartwire.SerializeWith(rec, chartwire.DefaultOptions(), map[string]any{"value": 2.5}).ToMap()
	if got["value"] != 2.5 {
		t.Fatalf("override must win, got %v", got["value"])
	}
}
