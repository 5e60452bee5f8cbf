package formatter

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatPhone parses raw with libphonenumber metadata and renders it using
// the configured PhoneFormat. The region comes from WithRegion or is inferred
// from the locale ("es" -> ES).
func (f *Formatter) FormatPhone(raw string, opts ...FormatOption) (string, bool) {
	options := f.phoneOptions(opts)

	value := strings.TrimSpace(raw)
	if value == "" {
		return f.fallback("format_phone", options, fmt.Errorf("empty phone number"))
	}

	region := options.Region
	if region == "" {
		region = regionFromLocale(options.Locale)
	}

	num, err := phonenumbers.Parse(value, region)
	if err != nil {
		return f.fallback("format_phone", options, err)
	}

	if !phonenumbers.IsPossibleNumber(num) && !phonenumbers.IsValidNumber(num) {
		return f.fallback("format_phone", options, fmt.Errorf("%q is not a possible number for %s", value, region))
	}

	formatted := phonenumbers.Format(num, options.PhoneFormat)
	if formatted == "" {
		return f.fallback("format_phone", options, fmt.Errorf("empty rendering for %q", value))
	}
	return formatted, true
}
