package formatter

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// localeTag resolves the language tag used by x/text printers. Malformed
// identifiers degrade to the best effort tag returned by language.Make.
func localeTag(locale string) language.Tag {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return language.English
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Make(normalized)
	}
	return tag
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeCandidates returns locale followed by its parents, closest first,
// then the base language.
func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)
	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)
	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		appendLocale(current)
	}

	if tag, err := language.Parse(locale); err == nil {
		base, _ := tag.Base()
		appendLocale(base.String())
	} else if idx := strings.Index(locale, "-"); idx > 0 {
		appendLocale(strings.ToLower(locale[:idx]))
	}

	return candidates
}

// regionFromLocale infers an upper case region code, e.g. "es" -> "ES", "en" -> "US".
func regionFromLocale(locale string) string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}

	region, confidence := tag.Region()
	if confidence == language.No {
		return ""
	}
	value := region.String()
	if value == "" || value == "ZZ" {
		return ""
	}
	return strings.ToUpper(value)
}
