// Package formatter provides locale aware helpers that turn numbers, dates,
// amounts and identifiers into display strings.
//
// Every formatter returns (string, bool). When ok is false the string holds the
// caller's fallback (see WithFallback), which defaults to "".
package formatter

// defaultFormatter backs the package level functions. It only uses the
// embedded locale data, so construction cannot fail at runtime.
var defaultFormatter = mustNew()

func mustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Default returns the formatter used by the package level functions.
func Default() *Formatter {
	return defaultFormatter
}

func FormatInt(value any, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatInt(value, opts...)
}

func FormatFloat(value any, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatFloat(value, opts...)
}

func FormatNumber(value any, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatNumber(value, opts...)
}

func FormatPercentage(value any, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatPercentage(value, opts...)
}

func FormatDate(value any, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatDate(value, opts...)
}

func FormatCurrency(amount any, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatCurrency(amount, opts...)
}

func FormatString(subject string, rules ...PatternRule) (string, bool) {
	return defaultFormatter.FormatString(subject, rules...)
}

func FormatPhone(raw string, opts ...FormatOption) (string, bool) {
	return defaultFormatter.FormatPhone(raw, opts...)
}

// Locales lists the locales with calendar data available to FormatDate.
func (f *Formatter) Locales() []string {
	return f.locales.Locales()
}

// DefaultLocale returns the locale applied when a call does not set one.
func (f *Formatter) DefaultLocale() string {
	return f.locale
}
