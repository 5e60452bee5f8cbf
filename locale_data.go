package formatter

import (
	"fmt"
	"sort"
)

// LocaleData contains the calendar vocabulary used to render dates for a locale
type LocaleData struct {
	Locale          string            `json:"locale" yaml:"locale" toml:"locale"`
	Months          []string          `json:"months" yaml:"months" toml:"months"`
	MonthsShort     []string          `json:"months_short" yaml:"months_short" toml:"months_short"`
	Weekdays        []string          `json:"weekdays" yaml:"weekdays" toml:"weekdays"`
	WeekdaysShort   []string          `json:"weekdays_short" yaml:"weekdays_short" toml:"weekdays_short"`
	WeekdaysMin     []string          `json:"weekdays_min" yaml:"weekdays_min" toml:"weekdays_min"`
	Meridiem        MeridiemNames     `json:"meridiem" yaml:"meridiem" toml:"meridiem"`
	Ordinal         OrdinalRules      `json:"ordinal" yaml:"ordinal" toml:"ordinal"`
	LongDateFormats map[string]string `json:"long_date_formats" yaml:"long_date_formats" toml:"long_date_formats"`
}

// MeridiemNames holds the "a" and "A" token values
type MeridiemNames struct {
	AM      string `json:"am" yaml:"am" toml:"am"`
	PM      string `json:"pm" yaml:"pm" toml:"pm"`
	UpperAM string `json:"upper_am" yaml:"upper_am" toml:"upper_am"`
	UpperPM string `json:"upper_pm" yaml:"upper_pm" toml:"upper_pm"`
}

// OrdinalRules describes how the "Do" and "Mo" tokens render.
// System is "english" (1st, 2nd, 3rd) or "suffix".
type OrdinalRules struct {
	System      string `json:"system" yaml:"system" toml:"system"`
	Suffix      string `json:"suffix" yaml:"suffix" toml:"suffix"`
	FirstSuffix string `json:"first_suffix" yaml:"first_suffix" toml:"first_suffix"`
}

// LocaleDataSet is the on-disk shape of a locale data file
type LocaleDataSet struct {
	Locales map[string]LocaleData `json:"locales" yaml:"locales" toml:"locales"`
}

func (d LocaleData) validate() error {
	if n := len(d.Months); n != 12 {
		return fmt.Errorf("formatter: locale %q: months has %d entries, want 12", d.Locale, n)
	}
	if n := len(d.MonthsShort); n != 12 {
		return fmt.Errorf("formatter: locale %q: months_short has %d entries, want 12", d.Locale, n)
	}
	for name, list := range map[string][]string{
		"weekdays":       d.Weekdays,
		"weekdays_short": d.WeekdaysShort,
		"weekdays_min":   d.WeekdaysMin,
	} {
		if len(list) != 7 {
			return fmt.Errorf("formatter: locale %q: %s has %d entries, want 7", d.Locale, name, len(list))
		}
	}
	return nil
}

// merge overlays the non empty fields of src onto d
func (d LocaleData) merge(src LocaleData) LocaleData {
	if len(src.Months) > 0 {
		d.Months = src.Months
	}
	if len(src.MonthsShort) > 0 {
		d.MonthsShort = src.MonthsShort
	}
	if len(src.Weekdays) > 0 {
		d.Weekdays = src.Weekdays
	}
	if len(src.WeekdaysShort) > 0 {
		d.WeekdaysShort = src.WeekdaysShort
	}
	if len(src.WeekdaysMin) > 0 {
		d.WeekdaysMin = src.WeekdaysMin
	}
	if src.Meridiem != (MeridiemNames{}) {
		d.Meridiem = src.Meridiem
	}
	if src.Ordinal != (OrdinalRules{}) {
		d.Ordinal = src.Ordinal
	}
	if len(src.LongDateFormats) > 0 {
		formats := make(map[string]string, len(d.LongDateFormats)+len(src.LongDateFormats))
		for k, v := range d.LongDateFormats {
			formats[k] = v
		}
		for k, v := range src.LongDateFormats {
			formats[k] = v
		}
		d.LongDateFormats = formats
	}
	return d
}

// LocaleDataProvider resolves locale data with parent and base language fallback.
type LocaleDataProvider struct {
	data map[string]LocaleData
}

func NewLocaleDataProvider(set *LocaleDataSet) *LocaleDataProvider {
	data := make(map[string]LocaleData)
	if set != nil {
		for k, v := range set.Locales {
			data[k] = v
		}
	}
	return &LocaleDataProvider{data: data}
}

// Lookup returns data for locale, walking its parent chain and base language.
// It reports ErrUnknownLocale when no candidate is defined.
func (p *LocaleDataProvider) Lookup(locale string) (*LocaleData, error) {
	if p != nil {
		for _, candidate := range localeCandidates(locale) {
			if data, ok := p.data[candidate]; ok {
				return &data, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// Get works like Lookup but falls back to English
func (p *LocaleDataProvider) Get(locale string) *LocaleData {
	if data, err := p.Lookup(locale); err == nil {
		return data
	}
	if p != nil {
		if data, ok := p.data[defaultLocale]; ok {
			return &data
		}
	}
	data := embeddedEnglish()
	return &data
}

// Locales lists the locales with data, sorted.
func (p *LocaleDataProvider) Locales() []string {
	if p == nil {
		return nil
	}
	result := make([]string, 0, len(p.data))
	for locale := range p.data {
		result = append(result, locale)
	}
	sort.Strings(result)
	return result
}
