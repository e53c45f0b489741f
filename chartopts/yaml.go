package chartopts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAMLMapping decodes one YAML document into a JSON-like
// map[string]any, normalizing map[any]any nodes recursively. Keys may be in
// either naming convention; the FromMapping constructors convert them.
func DecodeYAMLMapping(data []byte) (map[string]any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return map[string]any{}, nil
	}
	return m, nil
}

// DecodeYAMLSequence decodes one YAML document holding a sequence of
// mappings, normalizing each element like DecodeYAMLMapping.
func DecodeYAMLSequence(data []byte) ([]map[string]any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	seq, ok := node.([]any)
	if !ok {
		return nil, fmt.Errorf("chartopts: YAML document is not a sequence")
	}
	out := make([]map[string]any, 0, len(seq))
	for i, e := range seq {
		m := yamlAnyToStringMap(e)
		if m == nil {
			return nil, fmt.Errorf("chartopts: sequence element %d is not a mapping", i)
		}
		out = append(out, m)
	}
	return out, nil
}

// ChartOptionsFromYAML decodes a YAML document and reconstructs chart options.
func ChartOptionsFromYAML(data []byte) (*ChartOptions, error) {
	m, err := DecodeYAMLMapping(data)
	if err != nil {
		return nil, err
	}
	return ChartOptionsFromMapping(m)
}

// SeriesOptionsFromYAML decodes a YAML document and reconstructs series options.
func SeriesOptionsFromYAML(data []byte) (*SeriesOptions, error) {
	m, err := DecodeYAMLMapping(data)
	if err != nil {
		return nil, err
	}
	return SeriesOptionsFromMapping(m)
}

// PriceLineFromYAML decodes a YAML document and reconstructs price-line options.
func PriceLineFromYAML(data []byte) (*PriceLineOptions, error) {
	m, err := DecodeYAMLMapping(data)
	if err != nil {
		return nil, err
	}
	return PriceLineFromMapping(m)
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
