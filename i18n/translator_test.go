package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("duplicate_field", nil); msg != "duplicate field" {
		t.Fatalf("expected english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("duplicate_field", nil); msg == "duplicate field" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code passthrough, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("custom", nil); msg != "X:custom" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("custom", nil); msg != "constraint violated" {
		t.Fatalf("expected reset to en, got %q", msg)
	}
}
