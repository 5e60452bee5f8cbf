package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDefaults(t *testing.T) {
	f, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if f.DefaultLocale() != "en" {
		t.Fatalf("DefaultLocale = %q", f.DefaultLocale())
	}

	expected := []string{"de", "en", "es", "fr"}
	locales := f.Locales()
	if len(locales) != len(expected) {
		t.Fatalf("Locales = %v, want %v", locales, expected)
	}
	for i, locale := range expected {
		if locales[i] != locale {
			t.Fatalf("Locales[%d] = %q, want %q", i, locales[i], locale)
		}
	}
}

func TestNewRejectsEmptyDefaults(t *testing.T) {
	if _, err := New(WithDefaultLocale("  ")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for empty locale, got %v", err)
	}
	if _, err := New(WithDefaultCurrency("")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for empty currency, got %v", err)
	}
}

func TestNewNormalizesLocale(t *testing.T) {
	f, err := New(WithDefaultLocale("es_ES"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.DefaultLocale() != "es-ES" {
		t.Fatalf("DefaultLocale = %q", f.DefaultLocale())
	}
	if got, _ := f.FormatDate("2021-05-14"); got != "14 de mayo de 2021" {
		t.Fatalf("es-ES date = %q", got)
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv("FORMATTER_LOCALE", "es")
	t.Setenv("FORMATTER_CURRENCY", "usd")
	t.Setenv("FORMATTER_TIMEZONE", "UTC")

	f, err := New(WithEnv())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if f.DefaultLocale() != "es" {
		t.Fatalf("DefaultLocale = %q", f.DefaultLocale())
	}
	if got, _ := f.FormatCurrency(5); got != "$5,00" {
		t.Fatalf("env currency = %q", got)
	}

	// explicit options after WithEnv win
	f, err = New(WithEnv(), WithDefaultLocale("en"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f.DefaultLocale() != "en" {
		t.Fatalf("DefaultLocale = %q", f.DefaultLocale())
	}
}

func TestWithEnvErrors(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("FORMATTER_LOG_LEVEL", "loud")
		if _, err := New(WithEnv()); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("timezone", func(t *testing.T) {
		t.Setenv("FORMATTER_TIMEZONE", "Nowhere/Special")
		if _, err := New(WithEnv()); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("locale data", func(t *testing.T) {
		t.Setenv("FORMATTER_LOCALE_DATA", "testdata/missing.yaml")
		if _, err := New(WithEnv()); err == nil {
			t.Fatal("expected missing file error")
		}
	})
}

func TestWithLocaleDataJSON(t *testing.T) {
	f, err := New(WithLocaleData("testdata/locales_it.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, ok := f.FormatDate("2021-05-14", WithLocale("it"))
	if !ok || got != "14 maggio 2021" {
		t.Fatalf("it date = %q,%v", got, ok)
	}

	// embedded locales stay available
	if got, _ := f.FormatDate("2021-05-14", WithLocale("fr")); got != "14 mai 2021" {
		t.Fatalf("fr date = %q", got)
	}
}

func TestWithLocaleDataYAMLMerges(t *testing.T) {
	f, err := New(WithLocaleData("testdata/locales_en.yaml"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, _ := f.FormatDate("2021-05-14", WithLocale("en-GB")); got != "14 May 2021" {
		t.Fatalf("en-GB date = %q", got)
	}

	value := "2021-05-14T15:04:00Z"
	if got, _ := f.FormatDate(value, WithFormat("LT")); got != "15:04" {
		t.Fatalf("merged LT = %q", got)
	}
	if got, _ := f.FormatDate(value); got != "May 14, 2021" {
		t.Fatalf("untouched LL = %q", got)
	}
}

func TestWithLocaleOverrideTOML(t *testing.T) {
	f, err := New(WithLocaleOverride("es", "testdata/es_override.toml"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, _ := f.FormatDate("2021-05-14", WithLocale("es")); got != "14/mayo/2021" {
		t.Fatalf("override LL = %q", got)
	}
}

func TestLocaleDataErrors(t *testing.T) {
	_, err := New(WithLocaleData("testdata/locales.ini"))
	if !errors.Is(err, ErrUnsupportedDataFormat) {
		t.Fatalf("expected ErrUnsupportedDataFormat, got %v", err)
	}

	_, err = New(WithLocaleOverride("pt", "testdata/pt_incomplete.yaml"))
	if err == nil || !strings.Contains(err.Error(), "months") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLocaleDataProviderLookup(t *testing.T) {
	set, err := NewLocaleDataLoader("").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	provider := NewLocaleDataProvider(set)

	data, err := provider.Lookup("fr-CA")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if data.Locale != "fr" {
		t.Fatalf("Lookup(fr-CA) = %q", data.Locale)
	}

	if _, err := provider.Lookup("ja"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
	if got := provider.Get("ja"); got.Locale != "en" {
		t.Fatalf("Get(ja) = %q", got.Locale)
	}

	var empty *LocaleDataProvider
	if got := empty.Get("es"); got.Locale != "en" || len(got.Months) != 12 {
		t.Fatalf("nil provider = %+v", got)
	}
}

func TestWithPatternRules(t *testing.T) {
	if _, err := New(WithPatternRules(PatternRule{Pattern: `\d+`})); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}

	f, err := New(WithPatternRules(MustPatternRule(`(\d{3})(\d{3})`, "$1 $2")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, _ := f.FormatString("123456"); got != "123 456" {
		t.Fatalf("configured rule = %q", got)
	}
	// configured rules replace the built-ins
	if got, _ := f.FormatString("4111111111111111"); got != "4111111111111111" {
		t.Fatalf("built-in card rule still applied: %q", got)
	}
}

func TestWithLoggerRecordsFallbacks(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	f, err := New(WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := f.FormatInt("nope"); ok {
		t.Fatal("expected fallback")
	}

	out := buf.String()
	if !strings.Contains(out, `"op":"format_int"`) || !strings.Contains(out, "formatter fallback") {
		t.Fatalf("unexpected log output: %s", out)
	}

	buf.Reset()
	if _, ok := f.FormatInt(10); !ok || buf.Len() != 0 {
		t.Fatalf("successful call logged: %s", buf.String())
	}
}
