package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if got := GetCatalog(""); got != base {
		t.Fatal("expected empty locale to resolve to en-US")
	}
	if got := GetCatalog("not a locale!"); got != base {
		t.Fatal("expected unparsable locale to fall back to en-US")
	}
	if got := GetCatalog("ja-JP"); got != base {
		t.Fatalf("expected unsupported locale to fall back to en-US, got %s", got.Locale())
	}
}

func TestGetCatalogMatchesLanguage(t *testing.T) {
	for _, locale := range []string{"es-CO", "es", "es-MX"} {
		if got := GetCatalog(locale).Locale(); got != "es-CO" {
			t.Fatalf("GetCatalog(%q) locale = %q, want es-CO", locale, got)
		}
	}
}

func TestFormatNotFoundTemplates(t *testing.T) {
	cat := GetCatalog("en-US")

	subjectOnly := cat.Format(CodeNotFound, map[string]string{"Subject": "CS101"})
	if subjectOnly != "Subject CS101 was not found" {
		t.Fatalf("subject message = %q", subjectOnly)
	}
	withGroup := cat.Format(CodeNotFound, map[string]string{"Subject": "CS101", "Group": "A"})
	if withGroup != "Group A of subject CS101 was not found" {
		t.Fatalf("group message = %q", withGroup)
	}

	es := GetCatalog("es-CO").Format(CodeScheduleNothingToUndo, nil)
	if es != "No hay acciones que deshacer" {
		t.Fatalf("es message = %q", es)
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUSMessages {
		if _, ok := esCOMessages[code]; !ok {
			t.Fatalf("es-CO catalog is missing %s", code)
		}
	}
	for code := range esCOMessages {
		if _, ok := enUSMessages[code]; !ok {
			t.Fatalf("en-US catalog is missing %s", code)
		}
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
