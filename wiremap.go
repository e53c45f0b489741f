package chartwire

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// WireMap is the mapping that crosses the boundary to the rendering frontend:
// camelCase string keys, JSON-compatible values, insertion order preserved.
// A WireMap has no identity beyond the serialization call that produced it.
type WireMap struct {
	keys []string
	vals map[string]any
}

// NewWireMap returns an empty ordered mapping.
func NewWireMap() *WireMap {
	return &WireMap{vals: map[string]any{}}
}

// Set stores v under k, keeping the original insertion position when k is
// already present.
func (m *WireMap) Set(k string, v any) *WireMap {
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
	return m
}

// Get returns the value stored under k.
func (m *WireMap) Get(k string) (any, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Delete removes k. It is a no-op when k is absent.
func (m *WireMap) Delete(k string) {
	if _, ok := m.vals[k]; !ok {
		return
	}
	delete(m.vals, k)
	for i, kk := range m.keys {
		if kk == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len reports the number of entries.
func (m *WireMap) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (m *WireMap) Keys() []string { return m.keys }

// Merge copies every entry of other into m in other's order. Existing keys
// are overwritten in place (last writer wins).
func (m *WireMap) Merge(other *WireMap) *WireMap {
	if other == nil {
		return m
	}
	for _, k := range other.keys {
		m.Set(k, other.vals[k])
	}
	return m
}

// ToMap flattens the ordered mapping into a plain map, recursively converting
// nested WireMaps. Order is lost; useful for comparisons and tests.
func (m *WireMap) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = plainValue(m.vals[k])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *WireMap:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON emits entries in insertion order.
func (m *WireMap) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := j.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
