package formatter

// FuncMap exposes the formatters as text/template and html/template helpers.
// Helpers return the fallback ("") when a value cannot be formatted.
func (f *Formatter) FuncMap() map[string]any {
	return map[string]any{
		"format_int": func(locale string, value any) string {
			s, _ := f.FormatInt(value, WithLocale(locale))
			return s
		},
		"format_float": func(locale string, value any) string {
			s, _ := f.FormatFloat(value, WithLocale(locale))
			return s
		},
		"format_number": func(locale string, value any) string {
			s, _ := f.FormatNumber(value, WithLocale(locale))
			return s
		},
		"format_percentage": func(locale string, value any) string {
			s, _ := f.FormatPercentage(value, WithLocale(locale))
			return s
		},
		"format_date": func(locale string, value any, format string) string {
			s, _ := f.FormatDate(value, WithLocale(locale), WithFormat(format))
			return s
		},
		"format_currency": func(locale string, value any, code string) string {
			s, _ := f.FormatCurrency(value, WithLocale(locale), WithCurrency(code))
			return s
		},
		"format_string": func(value string) string {
			s, _ := f.FormatString(value)
			return s
		},
		"format_phone": func(locale, raw string) string {
			s, _ := f.FormatPhone(raw, WithLocale(locale))
			return s
		},
		"capitalize":     Capitalize,
		"capitalize_all": CapitalizeAll,
	}
}
