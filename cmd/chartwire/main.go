package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"

	chartwire "github.com/reoring/chartwire"
	"github.com/reoring/chartwire/chartopts"
	"github.com/reoring/chartwire/series"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "options":
		optionsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "chartwire CLI\n\nUsage:\n  chartwire convert -type point|bar|histogram|marker -in data.json|data.yaml [-o out.json]\n  chartwire options -type chart|series|priceline -in opts.json|opts.yaml [-o out.json]\n\nReads records in the native (snake_case) convention and emits wire JSON.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var typ, in, out string
	fs.StringVar(&typ, "type", "point", "record type: point, bar, histogram, marker")
	fs.StringVar(&in, "in", "", "input file (JSON or YAML array of records)")
	fs.StringVar(&out, "o", "", "output filename (stdout when empty)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	rows, err := readRows(in)
	if err != nil {
		fatalf("reading %s: %v", in, err)
	}
	wire := make([]*chartwire.WireMap, 0, len(rows))
	for i, row := range rows {
		rec, err := buildRecord(typ, row)
		if err != nil {
			fatalf("record %d: %v", i, err)
		}
		wire = append(wire, rec.Serialize(chartwire.DefaultOptions()))
	}
	writeJSON(out, wire)
}

func optionsCmd(args []string) {
	fs := flag.NewFlagSet("options", flag.ExitOnError)
	var typ, in, out string
	fs.StringVar(&typ, "type", "chart", "options type: chart, series, priceline")
	fs.StringVar(&in, "in", "", "input file (JSON or YAML mapping)")
	fs.StringVar(&out, "o", "", "output filename (stdout when empty)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading %s: %v", in, err)
	}
	var rec chartwire.Serializer
	switch typ {
	case "chart":
		rec, err = loadOptions(in, data, func(m map[string]any) (chartwire.Serializer, error) {
			return chartopts.ChartOptionsFromMapping(m)
		}, func(b []byte) (chartwire.Serializer, error) {
			return chartopts.ChartOptionsFromYAML(b)
		})
	case "series":
		rec, err = loadOptions(in, data, func(m map[string]any) (chartwire.Serializer, error) {
			return chartopts.SeriesOptionsFromMapping(m)
		}, func(b []byte) (chartwire.Serializer, error) {
			return chartopts.SeriesOptionsFromYAML(b)
		})
	case "priceline":
		rec, err = loadOptions(in, data, func(m map[string]any) (chartwire.Serializer, error) {
			return chartopts.PriceLineFromMapping(m)
		}, func(b []byte) (chartwire.Serializer, error) {
			return chartopts.PriceLineFromYAML(b)
		})
	default:
		fatalf("unknown options type %q", typ)
	}
	if err != nil {
		fatalf("building %s options: %v", typ, err)
	}
	writeJSON(out, rec.Serialize(chartwire.DefaultOptions()))
}

func loadOptions(
	path string,
	data []byte,
	fromMap func(map[string]any) (chartwire.Serializer, error),
	fromYAML func([]byte) (chartwire.Serializer, error),
) (chartwire.Serializer, error) {
	if isYAML(path) {
		return fromYAML(data)
	}
	var m map[string]any
	if err := j.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return fromMap(m)
}

func buildRecord(typ string, row map[string]any) (chartwire.Serializer, error) {
	switch typ {
	case "point":
		return series.PointFromMap(row)
	case "bar":
		return series.BarFromMap(row)
	case "histogram":
		return series.HistogramPointFromMap(row)
	case "marker":
		return series.MarkerFromMap(row)
	default:
		return nil, fmt.Errorf("unknown record type %q", typ)
	}
}

func readRows(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAML(path) {
		return chartopts.DecodeYAMLSequence(data)
	}
	var raw []any
	if err := j.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	rows := make([]map[string]any, 0, len(raw))
	for i, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not a mapping", i)
		}
		rows = append(rows, m)
	}
	return rows, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func writeJSON(out string, v any) {
	data, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encoding output: %v", err)
	}
	data = append(data, '\n')
	if out == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
