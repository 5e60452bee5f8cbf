package formatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PatternRule rewrites a string that fully matches Pattern into Format, where
// $0, $1, ... stand for the whole match and the capture groups.
//
// When Pattern does not match and Fallback is non empty, FormatString stops
// and returns Fallback without trying the remaining rules.
type PatternRule struct {
	Pattern  string
	Format   string
	Fallback string

	re *regexp.Regexp
}

// Built-in rules
var (
	IBANFormat = MustPatternRule(`^(\w{2}\d{2})(\d{4})(\d{4})(\d{2})(\d{10})$`, "$1 $2 $3 $4 $5")
	IDNFormat  = MustPatternRule(`^(\d{8})([a-zA-Z])$`, "$1-$2")
	CardFormat = MustPatternRule(`^(\d{4})(\d{4})(\d{4})(\d{4})$`, "$1 $2 $3 $4")
	// https://en.wikipedia.org/wiki/VAT_identification_number#VAT_numbers_by_country
	VATFormatES = MustPatternRule(`^(\w)(\d{7})(\w)$`, "$1$2$3")

	// CatchAllFormat is appended to every rule list and returns the subject unchanged.
	CatchAllFormat = MustPatternRule(`^(.*)$`, "$1")
)

// ToolFormats groups the rules for payment instruments and similar tools.
var ToolFormats = map[string]PatternRule{
	"card": CardFormat,
}

// AllFormats is the default rule list used when FormatString gets no rules.
var AllFormats = []PatternRule{
	IBANFormat,
	IDNFormat,
	VATFormatES,
	CardFormat,
}

// NewPatternRule compiles pattern so that it must match the whole subject.
func NewPatternRule(pattern, format string, fallback ...string) (PatternRule, error) {
	re, err := compileFullMatch(pattern)
	if err != nil {
		return PatternRule{}, err
	}

	rule := PatternRule{
		Pattern: pattern,
		Format:  format,
		re:      re,
	}
	if len(fallback) > 0 {
		rule.Fallback = fallback[0]
	}
	return rule, nil
}

// MustPatternRule is like NewPatternRule but panics on an invalid pattern.
func MustPatternRule(pattern, format string, fallback ...string) PatternRule {
	rule, err := NewPatternRule(pattern, format, fallback...)
	if err != nil {
		panic(err)
	}
	return rule
}

// WithFallback returns a copy of the rule that short-circuits to fallback on no match.
func (r PatternRule) WithFallback(fallback string) PatternRule {
	r.Fallback = fallback
	return r
}

func compileFullMatch(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

func (r PatternRule) compiled() (*regexp.Regexp, error) {
	if r.re != nil {
		return r.re, nil
	}
	return compileFullMatch(r.Pattern)
}

// apply substitutes the captured groups into Format in ascending index order.
func (r PatternRule) apply(re *regexp.Regexp, subject string) (string, bool) {
	groups := re.FindStringSubmatch(subject)
	if groups == nil {
		return "", false
	}

	result := r.Format
	for i, group := range groups {
		result = strings.ReplaceAll(result, "$"+strconv.Itoa(i), group)
	}
	return result, true
}

// FormatString tries rules in order and returns the first rewrite. Without
// rules the formatter's default list is used. CatchAllFormat always runs last.
func (f *Formatter) FormatString(subject string, rules ...PatternRule) (string, bool) {
	if len(rules) == 0 {
		rules = f.rules
	}

	chain := make([]PatternRule, 0, len(rules)+1)
	chain = append(chain, rules...)
	chain = append(chain, CatchAllFormat)

	for _, rule := range chain {
		re, err := rule.compiled()
		if err != nil {
			f.logger.Debug().Str("op", "format_string").Err(err).Msg("skipping rule")
		} else if result, ok := rule.apply(re, subject); ok {
			return result, true
		}

		if rule.Fallback != "" {
			return rule.Fallback, true
		}
	}

	return "", false
}
