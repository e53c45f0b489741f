package chartwire

import (
	"reflect"

	"github.com/reoring/chartwire/i18n"
)

type absentMarker struct{}

// Absent is the explicit absence marker for nullable fields. Setting a
// nullable field to Absent (or nil) clears it; validators may return Absent
// to signal "treat this input as no value".
var Absent = absentMarker{}

// Record is one instance of a declared record type: one slot per declared
// field, validated on construction and on every mutation. Records are not
// safe for concurrent mutation; callers serialize access externally.
type Record struct {
	fs    *FieldSet
	slots map[string]any
	iss   Issues // deferred issues from chainable With calls
}

// New constructs a record, assigning and validating every declared field
// exactly as Set would. Missing non-nullable fields fail with required;
// unknown keys fail with not_found. On any failure the record is not
// returned: construction is atomic.
func (fs *FieldSet) New(values map[string]any) (*Record, error) {
	r := &Record{fs: fs, slots: make(map[string]any, len(fs.descs))}
	var iss Issues
	for k := range values {
		if _, ok := fs.index[k]; !ok {
			iss = AppendIssues(iss, Issue{
				Field: k, Code: CodeNotFound,
				Message: i18n.T(CodeNotFound, nil),
				Hint:    "not a declared field",
			})
		}
	}
	for _, d := range fs.descs {
		v, ok := values[d.Name]
		if !ok {
			if !d.Nullable {
				iss = AppendIssues(iss, Issue{
					Field: d.Name, Code: CodeRequired,
					Message: i18n.T(CodeRequired, nil),
				})
			}
			continue
		}
		if err := r.Set(d.Name, v); err != nil {
			if more, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, more...)
			} else {
				iss = AppendIssues(iss, Issue{Field: d.Name, Code: CodeInvalidValue, Message: err.Error(), Cause: err})
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// MustNew is like New but panics on error. Intended for static declarations.
func (fs *FieldSet) MustNew(values map[string]any) *Record {
	r, err := fs.New(values)
	if err != nil {
		panic(err)
	}
	return r
}

// FieldSet returns the shared descriptor table of the record's type.
func (r *Record) FieldSet() *FieldSet { return r.fs }

// Set validates and assigns one field: absence handling for nullable fields,
// then the kind check, then the semantic validator, then the store. A failed
// Set leaves the slot untouched.
func (r *Record) Set(name string, v any) error {
	d, ok := r.fs.Desc(name)
	if !ok {
		return Issues{{
			Field: name, Code: CodeNotFound,
			Message: i18n.T(CodeNotFound, nil),
			Hint:    "not a declared field",
		}}
	}
	if _, isAbsent := v.(absentMarker); v == nil || isAbsent {
		return r.storeAbsent(d)
	}
	checked, err := d.Kind.check(name, v)
	if err != nil {
		return err
	}
	if fn, ok := fieldValidator(d); ok {
		validated, err := fn(name, checked)
		if err != nil {
			return err
		}
		if _, isAbsent := validated.(absentMarker); isAbsent {
			return r.storeAbsent(d)
		}
		checked = validated
	}
	r.slots[name] = checked
	return nil
}

func fieldValidator(d FieldDesc) (ValidatorFunc, bool) {
	if d.Fn != nil {
		return d.Fn, true
	}
	if d.Validator != "" {
		return lookupValidator(d.Validator)
	}
	return nil, false
}

func (r *Record) storeAbsent(d FieldDesc) error {
	if !d.Nullable {
		return Issues{{
			Field: d.Name, Code: CodeRequired,
			Message: i18n.T(CodeRequired, nil),
			Hint:    "field is not nullable",
		}}
	}
	delete(r.slots, d.Name)
	return nil
}

// With is the chainable form of Set: a failure is deferred into the record's
// issue list (surfaced by Err) and the slot is left unchanged, so a chain of
// With calls behaves like the equivalent sequence of Sets.
func (r *Record) With(name string, v any) *Record {
	if err := r.Set(name, v); err != nil {
		if more, ok := AsIssues(err); ok {
			r.iss = AppendIssues(r.iss, more...)
		} else {
			r.iss = AppendIssues(r.iss, Issue{Field: name, Code: CodeInvalidValue, Message: err.Error(), Cause: err})
		}
	}
	return r
}

// Err reports issues deferred by With calls since construction (or the last
// ClearErr). Nil when every chained mutation succeeded.
func (r *Record) Err() error {
	if len(r.iss) == 0 {
		return nil
	}
	return r.iss
}

// ClearErr drops deferred issues, typically after the caller handled them.
func (r *Record) ClearErr() { r.iss = nil }

// Get returns the field's value and whether it is present. An absent nullable
// field yields (nil, false). Unknown names yield (nil, false) as well.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.slots[name]
	return v, ok
}

// MustGet is like Get but panics when the field holds no value.
func (r *Record) MustGet(name string) any {
	v, ok := r.slots[name]
	if !ok {
		panic("chartwire: no value for field " + name)
	}
	return v
}

// Unset stores the absence marker. Non-nullable fields fail with required.
func (r *Record) Unset(name string) error {
	d, ok := r.fs.Desc(name)
	if !ok {
		return Issues{{Field: name, Code: CodeNotFound, Message: i18n.T(CodeNotFound, nil)}}
	}
	return r.storeAbsent(d)
}

// Clone deep-copies the record: slot maps and slices are copied, nested
// records cloned. The FieldSet is shared (it is immutable).
func (r *Record) Clone() *Record {
	out := &Record{fs: r.fs, slots: make(map[string]any, len(r.slots))}
	for k, v := range r.slots {
		out.slots[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.Clone()
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

// Equal reports whether two records share a field set and hold equal slots.
// Deferred issues do not participate in equality.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.fs != o.fs {
		return false
	}
	return reflect.DeepEqual(r.slots, o.slots)
}
