// Package series holds the value records a chart plots: single-value line
// points, OHLC bars, histogram points, markers, and whitespace gaps. Every
// type normalizes its temporal field to epoch seconds on construction and
// serializes through the chartwire engine.
package series
