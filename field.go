package chartwire

import (
	"reflect"

	"github.com/reoring/chartwire/i18n"
)

// Kind is the declared type constraint of a field.
type Kind int

const (
	KindAny    Kind = iota // no structural constraint
	KindBool               // strictly bool-kinded; numeric 0/1 are rejected
	KindInt                // integer-kinded, or a float carrying an integral value
	KindFloat              // float-kinded; integers coerce to float64
	KindNumber             // int or float, kept as-is
	KindString             // string-kinded
	KindMap                // map with string keys
	KindSlice              // slice or array
	KindRecord             // *Record or any Serializer
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	case KindSlice:
		return "slice"
	case KindRecord:
		return "record"
	default:
		return "any"
	}
}

// check verifies v against the kind and returns the (possibly coerced) value.
func (k Kind) check(field string, v any) (any, error) {
	bad := func() error {
		return Issues{{
			Field:   field,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Params:  map[string]any{"expected": k.String(), "got": reflect.TypeOf(v).String()},
		}}
	}
	switch k {
	case KindAny:
		return v, nil
	case KindRecord:
		if _, ok := v.(Serializer); ok {
			return v, nil
		}
		return nil, bad()
	}
	rv := reflect.ValueOf(v)
	switch k {
	case KindBool:
		if rv.Kind() == reflect.Bool {
			return v, nil
		}
	case KindInt:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return v, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return v, nil
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if f == float64(int64(f)) {
				return int(f), nil
			}
		}
	case KindFloat:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), nil
		}
	case KindNumber:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return v, nil
		}
	case KindString:
		if rv.Kind() == reflect.String {
			return v, nil
		}
	case KindMap:
		if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
			return v, nil
		}
	case KindSlice:
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return v, nil
		}
	}
	return nil, bad()
}

// FieldDesc is the declaration-time metadata of one record field. Immutable
// once the owning FieldSet is built.
type FieldDesc struct {
	Name      string
	Kind      Kind
	Validator string        // named built-in, "" for none
	Fn        ValidatorFunc // custom validator, nil for none
	Nullable  bool
}

// FieldSet is the ordered, immutable descriptor table of a record type.
// Built once per type and shared read-only by every instance.
type FieldSet struct {
	descs []FieldDesc
	index map[string]int
}

// Len reports the number of declared fields.
func (fs *FieldSet) Len() int { return len(fs.descs) }

// Names returns the declared field names in declaration order.
func (fs *FieldSet) Names() []string {
	out := make([]string, len(fs.descs))
	for i, d := range fs.descs {
		out[i] = d.Name
	}
	return out
}

// Desc returns the descriptor for name.
func (fs *FieldSet) Desc(name string) (FieldDesc, bool) {
	i, ok := fs.index[name]
	if !ok {
		return FieldDesc{}, false
	}
	return fs.descs[i], true
}

type fieldsBuilder struct {
	descs []FieldDesc
	iss   Issues
}

type declStep struct {
	b *fieldsBuilder
	i int // index of the field being declared
}

// Fields creates a new field-set builder.
func Fields() *fieldsBuilder {
	return &fieldsBuilder{}
}

// Field declares a field with its type constraint. Fields are non-nullable
// unless Nullable is called on the returned step.
func (b *fieldsBuilder) Field(name string, k Kind) *declStep {
	for _, d := range b.descs {
		if d.Name == name {
			b.iss = AppendIssues(b.iss, Issue{
				Field: name, Code: CodeDuplicateValue,
				Message: i18n.T(CodeDuplicateValue, nil),
				Hint:    "field declared twice",
			})
		}
	}
	b.descs = append(b.descs, FieldDesc{Name: name, Kind: k})
	return &declStep{b: b, i: len(b.descs) - 1}
}

// Required marks the field non-nullable (the default) and returns the step.
func (s *declStep) Required() *declStep {
	s.b.descs[s.i].Nullable = false
	return s
}

// Nullable marks the field nullable: the absence marker is a legal value.
func (s *declStep) Nullable() *declStep {
	s.b.descs[s.i].Nullable = true
	return s
}

// Validate attaches a named built-in semantic validator to the field.
func (s *declStep) Validate(name string) *declStep {
	s.b.descs[s.i].Validator = name
	return s
}

// ValidateFunc attaches a custom semantic validator to the field.
func (s *declStep) ValidateFunc(fn ValidatorFunc) *declStep {
	s.b.descs[s.i].Fn = fn
	return s
}

func (s *declStep) Field(name string, k Kind) *declStep { return s.b.Field(name, k) }
func (s *declStep) Build() (*FieldSet, error)           { return s.b.Build() }
func (s *declStep) MustBuild() *FieldSet                { return s.b.MustBuild() }

// Build validates the declaration and returns the immutable FieldSet.
func (b *fieldsBuilder) Build() (*FieldSet, error) {
	iss := b.iss
	for _, d := range b.descs {
		if d.Validator == "" {
			continue
		}
		if _, ok := lookupValidator(d.Validator); !ok {
			iss = AppendIssues(iss, Issue{
				Field: d.Name, Code: CodeNotFound,
				Message: i18n.T(CodeNotFound, nil),
				Hint:    "unknown validator " + d.Validator,
			})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	descs := make([]FieldDesc, len(b.descs))
	copy(descs, b.descs)
	idx := make(map[string]int, len(descs))
	for i, d := range descs {
		idx[d.Name] = i
	}
	return &FieldSet{descs: descs, index: idx}, nil
}

// MustBuild is like Build but panics on error.
func (b *fieldsBuilder) MustBuild() *FieldSet {
	fs, err := b.Build()
	if err != nil {
		panic(err)
	}
	return fs
}
