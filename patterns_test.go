package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFormatStringBuiltins(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		want    string
	}{
		{name: "idn", subject: "12345678Z", want: "12345678-Z"},
		{name: "card", subject: "4111111111111111", want: "4111 1111 1111 1111"},
		{name: "iban", subject: "ES9121000418450200051332", want: "ES91 2100 0418 45 0200051332"},
		{name: "vat es", subject: "B1234567C", want: "B1234567C"},
		{name: "catch all", subject: "hello world", want: "hello world"},
		{name: "empty", subject: "", want: ""},
		{name: "partial match is not enough", subject: "x4111111111111111", want: "x4111111111111111"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FormatString(tc.subject)
			if !ok || got != tc.want {
				t.Fatalf("FormatString(%q) = %q,%v want %q", tc.subject, got, ok, tc.want)
			}
		})
	}
}

func TestFormatStringNewlineHasNoResult(t *testing.T) {
	got, ok := FormatString("line one\nline two")
	if ok || got != "" {
		t.Fatalf("expected no result, got %q,%v", got, ok)
	}
}

func TestFormatStringCustomRules(t *testing.T) {
	digits := MustPatternRule(`(\d+)`, "#$1")

	if got, ok := FormatString("42", digits); !ok || got != "#42" {
		t.Fatalf("match = %q,%v", got, ok)
	}

	// without a fallback the chain continues to the catch all
	if got, ok := FormatString("abc", digits); !ok || got != "abc" {
		t.Fatalf("no fallback = %q,%v", got, ok)
	}

	strict := digits.WithFallback("invalid")
	if got, ok := FormatString("abc", strict, CardFormat); !ok || got != "invalid" {
		t.Fatalf("fallback = %q,%v", got, ok)
	}

	withFallback, err := NewPatternRule(`(\d+)`, "#$1", "none")
	if err != nil {
		t.Fatalf("NewPatternRule: %v", err)
	}
	if withFallback.Fallback != "none" {
		t.Fatalf("fallback = %q", withFallback.Fallback)
	}
}

func TestFormatStringOptionalGroups(t *testing.T) {
	rule := MustPatternRule(`(a)?(b)`, "[$1][$2]")
	if got, ok := FormatString("b", rule); !ok || got != "[][b]" {
		t.Fatalf("optional group = %q,%v", got, ok)
	}
}

func TestFormatStringLiteralRules(t *testing.T) {
	rule := PatternRule{Pattern: `(\d{3})(\d{3})`, Format: "$1-$2"}
	if got, ok := FormatString("123456", rule); !ok || got != "123-456" {
		t.Fatalf("literal rule = %q,%v", got, ok)
	}

	broken := PatternRule{Pattern: `(`, Format: "$1", Fallback: "bad"}
	if got, ok := FormatString("anything", broken); !ok || got != "bad" {
		t.Fatalf("broken rule with fallback = %q,%v", got, ok)
	}

	broken.Fallback = ""
	if got, ok := FormatString("anything", broken); !ok || got != "anything" {
		t.Fatalf("broken rule without fallback = %q,%v", got, ok)
	}
}

func TestNewPatternRuleInvalid(t *testing.T) {
	_, err := NewPatternRule(`(`, "$1")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustPatternRule should panic on an invalid pattern")
		}
	}()
	MustPatternRule(`[`, "")
}

func TestToolFormats(t *testing.T) {
	card, ok := ToolFormats["card"]
	if !ok {
		t.Fatal("missing card rule")
	}
	if got, _ := FormatString("1234567812345678", card); got != "1234 5678 1234 5678" {
		t.Fatalf("card = %q", got)
	}
}

func TestFormatStringCatchAllProperty(t *testing.T) {
	never := MustPatternRule(`never`, "x")

	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("unmatched subjects come back unchanged unless they span lines", prop.ForAll(
		func(s string) bool {
			if s == "never" {
				return true
			}
			got, ok := FormatString(s, never)
			if strings.Contains(s, "\n") {
				return !ok && got == ""
			}
			return ok && got == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
