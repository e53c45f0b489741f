package chartwire

// Package chartwire models the typed records a charting frontend consumes:
// series points (bars, line points, histograms, markers) and option bundles,
// validated on construction and on every mutation, then serialized into the
// frontend's wire convention (camelCase keys, omitted nulls, unwrapped enums,
// flattened sub-objects).
//
// Design policy:
// - The root package holds the engine: field descriptors, the record type,
//   the serializer, the naming converter, and the error model.
// - Concrete record catalogues live under series/ (value records) and
//   chartopts/ (configuration records); the CLI under cmd/chartwire.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	fs := chartwire.Fields().
//		Field("value", chartwire.KindFloat).Required().
//		Field("color", chartwire.KindString).Nullable().Validate("color").
//		MustBuild()
//
//	rec, err := fs.New(map[string]any{"value": 12.5})
//	wm := chartwire.Serialize(rec, chartwire.DefaultOptions())
