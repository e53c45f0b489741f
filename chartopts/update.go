package chartopts

import (
	chartwire "github.com/reoring/chartwire"
)

// updateRecord applies a wire-convention mapping to an existing record:
// incoming keys convert to the native convention, values matching a declared
// field go through the validating Set, unknown keys are silently ignored.
func updateRecord(r *chartwire.Record, m map[string]any) error {
	native, _ := chartwire.ConvertKeys(m, chartwire.ToNative, false).(map[string]any)
	var iss chartwire.Issues
	for _, name := range r.FieldSet().Names() {
		v, ok := native[name]
		if !ok {
			continue
		}
		if err := r.Set(name, v); err != nil {
			if more, ok := chartwire.AsIssues(err); ok {
				iss = chartwire.AppendIssues(iss, more...)
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// filterMapping converts incoming keys to the native convention and keeps
// only declared field names, dropping the rest without error.
func filterMapping(fs *chartwire.FieldSet, m map[string]any) map[string]any {
	native, _ := chartwire.ConvertKeys(m, chartwire.ToNative, false).(map[string]any)
	out := make(map[string]any, len(native))
	for _, name := range fs.Names() {
		if v, ok := native[name]; ok {
			out[name] = v
		}
	}
	return out
}
