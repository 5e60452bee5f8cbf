package formatter

import (
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

// FormatOptions holds every per-call setting understood by the formatters.
// Each formatter reads the fields it needs and ignores the rest.
type FormatOptions struct {
	Locale   string
	ShowUnit bool
	Fallback string

	// Pattern describes the layout of a date input, e.g. "DD/MM/YYYY".
	Pattern string
	// Format is the output layout for dates, e.g. "LL" or "DD/MM/YYYY".
	Format   string
	Location *time.Location

	Currency   string
	ForceFloat bool

	Region      string
	PhoneFormat phonenumbers.PhoneNumberFormat
}

// FormatOption mutates FormatOptions for a single call
type FormatOption func(*FormatOptions)

const (
	defaultLocale     = "en"
	defaultCurrency   = "eur"
	defaultDateFormat = "LL"
)

// DefaultNumberOptions returns the defaults used by the numeric formatters.
func DefaultNumberOptions() FormatOptions {
	return FormatOptions{
		Locale:   defaultLocale,
		ShowUnit: true,
	}
}

// DefaultDateOptions returns the defaults used by FormatDate.
func DefaultDateOptions() FormatOptions {
	return FormatOptions{
		Locale:   defaultLocale,
		Format:   defaultDateFormat,
		Location: time.UTC,
	}
}

// DefaultCurrencyOptions returns the defaults used by FormatCurrency.
func DefaultCurrencyOptions() FormatOptions {
	return FormatOptions{
		Locale:     defaultLocale,
		ShowUnit:   true,
		Currency:   defaultCurrency,
		ForceFloat: true,
	}
}

// DefaultPhoneOptions returns the defaults used by FormatPhone.
func DefaultPhoneOptions() FormatOptions {
	return FormatOptions{
		Locale:      defaultLocale,
		PhoneFormat: phonenumbers.INTERNATIONAL,
	}
}

func WithLocale(locale string) FormatOption {
	return func(o *FormatOptions) {
		if normalized := normalizeLocale(locale); normalized != "" {
			o.Locale = normalized
		}
	}
}

func WithShowUnit(show bool) FormatOption {
	return func(o *FormatOptions) {
		o.ShowUnit = show
	}
}

// WithFallback sets the string returned when no value can be produced.
func WithFallback(fallback string) FormatOption {
	return func(o *FormatOptions) {
		o.Fallback = fallback
	}
}

// WithPattern declares the layout of a date input using moment style tokens.
func WithPattern(pattern string) FormatOption {
	return func(o *FormatOptions) {
		o.Pattern = pattern
	}
}

// WithFormat sets the output layout for dates.
func WithFormat(format string) FormatOption {
	return func(o *FormatOptions) {
		if format != "" {
			o.Format = format
		}
	}
}

func WithLocation(loc *time.Location) FormatOption {
	return func(o *FormatOptions) {
		if loc != nil {
			o.Location = loc
		}
	}
}

// WithCurrency selects the ISO 4217 code used for the currency symbol.
func WithCurrency(code string) FormatOption {
	return func(o *FormatOptions) {
		if trimmed := strings.TrimSpace(code); trimmed != "" {
			o.Currency = trimmed
		}
	}
}

func WithForceFloat(force bool) FormatOption {
	return func(o *FormatOptions) {
		o.ForceFloat = force
	}
}

// WithRegion forces phone parsing with an ISO 3166-1 alpha-2 region.
func WithRegion(region string) FormatOption {
	return func(o *FormatOptions) {
		o.Region = strings.ToUpper(strings.TrimSpace(region))
	}
}

func WithPhoneFormat(format phonenumbers.PhoneNumberFormat) FormatOption {
	return func(o *FormatOptions) {
		o.PhoneFormat = format
	}
}

func applyFormatOptions(base FormatOptions, opts []FormatOption) FormatOptions {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&base)
	}
	return base
}
