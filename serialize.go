package chartwire

import (
	"math"
	"sort"
)

// Serializer is the capability interface implemented by every record and
// configuration type that can render itself as a wire mapping. Recursive
// serialization dispatches through it rather than probing for methods.
type Serializer interface {
	Serialize(opt Options) *WireMap
}

// Enum is implemented by enumerated option values; under UnwrapEnums the
// serializer replaces the enum with its underlying scalar.
type Enum interface {
	EnumValue() any
}

// Options is the serialization policy. It is a plain immutable value: build
// it once (or take DefaultOptions) and share it freely across calls.
type Options struct {
	OmitNil         bool     // drop absent fields instead of emitting null
	OmitEmptyString bool     // drop fields holding ""
	OmitEmptyStruct bool     // drop fields holding an empty map/slice
	ZeroNaN         bool     // emit 0.0 for NaN floats
	UnwrapEnums     bool     // replace Enum values with their underlying scalar
	Flatten         []string // field names whose nested mapping merges into the parent
}

// DefaultOptions is the documented default policy: omit everything empty,
// zero NaN, unwrap enums, no flattening.
func DefaultOptions() Options {
	return Options{
		OmitNil:         true,
		OmitEmptyString: true,
		OmitEmptyStruct: true,
		ZeroNaN:         true,
		UnwrapEnums:     true,
	}
}

// WithFlatten returns a copy of the policy with the flatten hint list set.
func (o Options) WithFlatten(names ...string) Options {
	o.Flatten = names
	return o
}

// fixedWireKeys are the field names whose wire key never goes through the
// naming converter: the distinguished temporal field and the distinguished
// single-value field each have one canonical wire name.
var fixedWireKeys = map[string]string{
	"time":  "time",
	"value": "value",
}

// WireKey computes the wire name for a declared field.
func WireKey(field string) string {
	if k, ok := fixedWireKeys[field]; ok {
		return k
	}
	return ToCamel(field)
}

// Serialize renders the record as a wire mapping under the given policy.
// The engine never fails: values it cannot interpret pass through unchanged.
func Serialize(r *Record, opt Options) *WireMap {
	return SerializeWith(r, opt, nil)
}

// SerializeWith is Serialize with an explicit override mapping: for every
// field named in overrides the supplied value takes precedence over the
// record's own slot.
//
// Flattening merges a nested mapping's entries directly into the result;
// on key collision the flattened entry overwrites the earlier one
// (last-writer-wins). Candidate for stricter collision detection.
func SerializeWith(r *Record, opt Options, overrides map[string]any) *WireMap {
	out := NewWireMap()
	if r == nil {
		return out
	}
	for _, d := range r.fs.descs {
		v, present := r.Get(d.Name)
		if overrides != nil {
			if ov, ok := overrides[d.Name]; ok {
				v, present = ov, true
			}
		}
		// inclusion tests run before normalization
		if !present || v == nil {
			if opt.OmitNil {
				continue
			}
			out.Set(WireKey(d.Name), nil)
			continue
		}
		if s, ok := v.(string); ok && s == "" && opt.OmitEmptyString {
			continue
		}
		if opt.OmitEmptyStruct && emptyStructure(v) {
			continue
		}
		nv := normalizeValue(v, opt)
		if flattenHint(opt.Flatten, d.Name) {
			if wm, ok := nv.(*WireMap); ok {
				out.Merge(wm)
				continue
			}
		}
		out.Set(WireKey(d.Name), nv)
	}
	return out
}

func flattenHint(names []string, field string) bool {
	for _, n := range names {
		if n == field {
			return true
		}
	}
	return false
}

func emptyStructure(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case *WireMap:
		return t.Len() == 0
	}
	return false
}

// normalizeValue applies the policy's value rules recursively. Mappings are
// the one place keys are converted during value normalization, independent of
// field-name conversion.
func normalizeValue(v any, opt Options) any {
	switch t := v.(type) {
	case Serializer:
		return t.Serialize(opt)
	case Enum:
		if opt.UnwrapEnums {
			return normalizeValue(t.EnumValue(), opt)
		}
		return t
	case float64:
		if opt.ZeroNaN && math.IsNaN(t) {
			return 0.0
		}
		return t
	case float32:
		if opt.ZeroNaN && math.IsNaN(float64(t)) {
			return 0.0
		}
		return t
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e, opt)
		}
		return out
	case map[string]any:
		out := NewWireMap()
		for _, k := range sortedKeys(t) {
			out.Set(ToCamel(k), normalizeValue(t[k], opt))
		}
		return out
	case *WireMap:
		out := NewWireMap()
		for _, k := range t.Keys() {
			e, _ := t.Get(k)
			out.Set(ToCamel(k), normalizeValue(e, opt))
		}
		return out
	default:
		return v
	}
}

// sortedKeys orders plain-map keys for deterministic output.
func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Serialize makes Record itself a Serializer, so nested records recurse
// through the same entry point.
func (r *Record) Serialize(opt Options) *WireMap {
	return Serialize(r, opt)
}
