package formatter

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"hello":       "Hello",
		"Hello":       "Hello",
		"hello world": "Hello world",
		"élan":        "Élan",
		"1st place":   "1st place",
		"ǆemal":       "Ǆemal",
		"ßtraße":      "SStraße",
		" lead":       " lead",
	}

	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalizeAll(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"hello world":       "Hello World",
		"  hello  world ":   "Hello  World",
		"madrid españa":     "Madrid España",
		"already Capital x": "Already Capital X",
	}

	for in, want := range cases {
		if got := CapitalizeAll(in); got != want {
			t.Fatalf("CapitalizeAll(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalizeMultiByteIsIdempotent(t *testing.T) {
	for _, in := range []string{"ßa", "ǆx", "ŉ", "ᾳb", "\u0345", "ﬀ ok"} {
		once := Capitalize(in)
		if twice := Capitalize(once); twice != once {
			t.Fatalf("Capitalize(%q) = %q, again %q", in, once, twice)
		}
	}
}

func TestCapitalizeProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("capitalize is idempotent", prop.ForAll(
		func(s string) bool {
			once := Capitalize(s)
			return Capitalize(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("only the first character changes", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return Capitalize(s) == ""
			}
			return Capitalize(s)[1:] == s[1:]
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
