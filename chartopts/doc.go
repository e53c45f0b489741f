// Package chartopts holds the configuration records of the chart: price
// formatting, price lines, per-series options, layout, and top-level chart
// options. Every type supports structured in-place update from a wire
// mapping (unknown keys ignored) and reconstruction from a mapping or YAML.
package chartopts
