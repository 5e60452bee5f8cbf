package formatter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config captures the defaults a Formatter applies to every call
type Config struct {
	DefaultLocale   string
	DefaultCurrency string
	Location        *time.Location
	Logger          zerolog.Logger
	PatternRules    []PatternRule

	localeDataPath  string
	localeOverrides map[string]string
}

// EnvConfig is populated from FORMATTER_* environment variables.
type EnvConfig struct {
	Locale     string `env:"FORMATTER_LOCALE" envDefault:"en"`
	Currency   string `env:"FORMATTER_CURRENCY" envDefault:"eur"`
	Timezone   string `env:"FORMATTER_TIMEZONE" envDefault:"UTC"`
	LocaleData string `env:"FORMATTER_LOCALE_DATA"`
	LogLevel   string `env:"FORMATTER_LOG_LEVEL" envDefault:"disabled"`
}

// Option mutates Config during construction
type Option func(*Config) error

// Formatter applies locale aware formatting with a fixed set of defaults.
// It is immutable once built and safe for concurrent use.
type Formatter struct {
	locale   string
	currency string
	location *time.Location
	logger   zerolog.Logger
	locales  *LocaleDataProvider
	rules    []PatternRule
}

// New builds a Formatter via the supplied options
func New(opts ...Option) (*Formatter, error) {
	cfg := &Config{
		DefaultLocale:   defaultLocale,
		DefaultCurrency: defaultCurrency,
		Location:        time.UTC,
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	locales, err := cfg.loadLocaleData()
	if err != nil {
		return nil, err
	}

	rules := AllFormats
	if len(cfg.PatternRules) > 0 {
		rules = append([]PatternRule(nil), cfg.PatternRules...)
	}

	return &Formatter{
		locale:   cfg.DefaultLocale,
		currency: cfg.DefaultCurrency,
		location: cfg.Location,
		logger:   cfg.Logger,
		locales:  locales,
		rules:    rules,
	}, nil
}

func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return fmt.Errorf("%w: empty default locale", ErrInvalidConfig)
		}
		c.DefaultLocale = normalized
		return nil
	}
}

func WithDefaultCurrency(code string) Option {
	return func(c *Config) error {
		code = strings.TrimSpace(code)
		if code == "" {
			return fmt.Errorf("%w: empty default currency", ErrInvalidConfig)
		}
		c.DefaultCurrency = code
		return nil
	}
}

// WithTimezone sets the location dates are rendered in
func WithTimezone(loc *time.Location) Option {
	return func(c *Config) error {
		if loc != nil {
			c.Location = loc
		}
		return nil
	}
}

// WithLogger enables debug logging of fallback decisions
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithLocaleData merges a locale data file (yaml, json or toml) over the embedded defaults
func WithLocaleData(path string) Option {
	return func(c *Config) error {
		c.localeDataPath = path
		return nil
	}
}

// WithLocaleOverride merges a single locale definition from path
func WithLocaleOverride(locale, path string) Option {
	return func(c *Config) error {
		locale = normalizeLocale(locale)
		if locale == "" || path == "" {
			return nil
		}
		if c.localeOverrides == nil {
			c.localeOverrides = make(map[string]string)
		}
		c.localeOverrides[locale] = path
		return nil
	}
}

// WithPatternRules replaces the default rule list used by FormatString
func WithPatternRules(rules ...PatternRule) Option {
	return func(c *Config) error {
		for _, rule := range rules {
			if rule.re == nil {
				return fmt.Errorf("%w: rule %q was not built with NewPatternRule", ErrInvalidPattern, rule.Pattern)
			}
		}
		c.PatternRules = append(c.PatternRules, rules...)
		return nil
	}
}

// WithEnv reads FORMATTER_* environment variables. Explicit options applied
// after WithEnv take precedence.
func WithEnv() Option {
	return func(c *Config) error {
		var ec EnvConfig
		if err := env.Parse(&ec); err != nil {
			return fmt.Errorf("%w: parse env: %v", ErrInvalidConfig, err)
		}
		return ec.apply(c)
	}
}

func (ec EnvConfig) apply(c *Config) error {
	if locale := normalizeLocale(ec.Locale); locale != "" {
		c.DefaultLocale = locale
	}
	if currency := strings.TrimSpace(ec.Currency); currency != "" {
		c.DefaultCurrency = currency
	}
	if ec.Timezone != "" {
		loc, err := time.LoadLocation(ec.Timezone)
		if err != nil {
			return fmt.Errorf("%w: load timezone %q: %v", ErrInvalidConfig, ec.Timezone, err)
		}
		c.Location = loc
	}
	if ec.LocaleData != "" {
		c.localeDataPath = ec.LocaleData
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(ec.LogLevel)))
	if err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalidConfig, ec.LogLevel, err)
	}
	if level != zerolog.Disabled && level != zerolog.NoLevel {
		c.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return nil
}

func (c *Config) loadLocaleData() (*LocaleDataProvider, error) {
	loader := NewLocaleDataLoader(c.localeDataPath)
	for locale, path := range c.localeOverrides {
		loader.AddOverride(locale, path)
	}
	data, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewLocaleDataProvider(data), nil
}

func (f *Formatter) numberOptions(opts []FormatOption) FormatOptions {
	base := DefaultNumberOptions()
	base.Locale = f.locale
	return applyFormatOptions(base, opts)
}

func (f *Formatter) dateOptions(opts []FormatOption) FormatOptions {
	base := DefaultDateOptions()
	base.Locale = f.locale
	base.Location = f.location
	return applyFormatOptions(base, opts)
}

func (f *Formatter) currencyOptions(opts []FormatOption) FormatOptions {
	base := DefaultCurrencyOptions()
	base.Locale = f.locale
	base.Currency = f.currency
	return applyFormatOptions(base, opts)
}

func (f *Formatter) phoneOptions(opts []FormatOption) FormatOptions {
	base := DefaultPhoneOptions()
	base.Locale = f.locale
	return applyFormatOptions(base, opts)
}

// fallback logs why a value could not be produced and returns the configured fallback.
func (f *Formatter) fallback(op string, opts FormatOptions, reason error) (string, bool) {
	if reason != nil {
		f.logger.Debug().Str("op", op).Str("locale", opts.Locale).Err(reason).Msg("formatter fallback")
	}
	return opts.Fallback, false
}
