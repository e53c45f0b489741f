package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_color", nil); msg == "invalid_color" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_color", nil); msg == "invalid color format" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodePassesThrough(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected pass-through for unknown code, got %q", msg)
	}
}

func TestSetTranslator_NilResets(t *testing.T) {
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required field missing" {
		t.Fatalf("expected english default after nil reset, got %q", msg)
	}
}
