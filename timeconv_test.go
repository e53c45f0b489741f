package chartwire_test

import (
	"encoding/json"
	"testing"
	"time"

	chartwire "github.com/reoring/chartwire"
)

func TestNormalizeTime_EquivalentForms(t *testing.T) {
	const want = int64(1700000000) // 2023-11-14T22:13:20Z
	forms := []any{
		1700000000,
		int64(1700000000),
		1700000000.0,
		json.Number("1700000000"),
		"1700000000",
		"2023-11-14T22:13:20Z",
		"2023-11-14 22:13:20",
		time.Unix(1700000000, 0),
	}
	for _, f := range forms {
		got, err := chartwire.NormalizeTime(f)
		if err != nil {
			t.Fatalf("NormalizeTime(%v %T): %v", f, f, err)
		}
		if got != want {
			t.Fatalf("NormalizeTime(%v %T) = %d, want %d", f, f, got, want)
		}
	}
}

func TestNormalizeTime_DateOnlyIsUTCMidnight(t *testing.T) {
	got, err := chartwire.NormalizeTime("2023-11-14")
	if err != nil {
		t.Fatalf("date-only: %v", err)
	}
	want := time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC).Unix()
	if got != want {
		t.Fatalf("date-only = %d, want %d", got, want)
	}
}

func TestNormalizeTime_Failures(t *testing.T) {
	if _, err := chartwire.NormalizeTime("not a date"); !chartwire.IsCode(err, chartwire.CodeInvalidTime) {
		t.Fatalf("expected invalid_time, got %v", err)
	}
	if _, err := chartwire.NormalizeTime(struct{}{}); !chartwire.IsCode(err, chartwire.CodeUnsupportedTimeType) {
		t.Fatalf("expected unsupported_time_type, got %v", err)
	}
	iss, _ := chartwire.AsIssues(func() error {
		_, err := chartwire.NormalizeTime(struct{}{})
		return err
	}())
	if len(iss) == 0 || iss[0].Params["got"] == "" {
		t.Fatalf("unsupported type issue must name the offending type, got %v", iss)
	}
}
