package formatter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// autoDetectLayouts are tried in order when no input pattern is given.
var autoDetectLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
	"20060102T150405",
	"20060102",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
}

// FormatDate parses value and renders it with the configured output format.
// Strings are parsed with WithPattern when given and auto detected otherwise;
// numbers are epoch milliseconds. Any parse failure yields the fallback.
func (f *Formatter) FormatDate(value any, opts ...FormatOption) (result string, ok bool) {
	options := f.dateOptions(opts)

	defer func() {
		if r := recover(); r != nil {
			result, ok = f.fallback("format_date", options, fmt.Errorf("%w: %v", ErrInvalidDate, r))
		}
	}()

	t, err := parseDate(value, options.Pattern, options.Location)
	if err != nil {
		return f.fallback("format_date", options, err)
	}

	data := f.locales.Get(options.Locale)
	layout := expandLongDateFormats(options.Format, data)
	return renderDate(t.In(options.Location), layout, data), true
}

// parseDate is the explicit parse step behind FormatDate.
func parseDate(value any, pattern string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	switch v := value.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("%w: missing value", ErrInvalidDate)
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return *v, nil
	case string:
		return parseDateString(strings.TrimSpace(v), pattern, loc)
	case []byte:
		return parseDateString(strings.TrimSpace(string(v)), pattern, loc)
	}

	ms, err := numericValue(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
	}
	if pattern != "" {
		return parseDateString(numericString(value, ms), pattern, loc)
	}
	return epochMillis(ms, loc)
}

func parseDateString(s, pattern string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	switch pattern {
	case "":
		for _, layout := range autoDetectLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q matches no known layout", ErrInvalidDate, s)
	case "x":
		ms, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not an epoch in milliseconds", ErrInvalidDate, s)
		}
		return epochMillis(ms, loc)
	case "X":
		secs, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not an epoch in seconds", ErrInvalidDate, s)
		}
		return epochMillis(secs*1000, loc)
	}

	t, err := time.ParseInLocation(goLayout(pattern), s, loc)
	if err == nil {
		return t, nil
	}
	// "14-05-2021" is accepted for DD/MM/YYYY
	if t, uerr := time.ParseInLocation(goLayout(unifySeparators(pattern, true)), unifySeparators(s, false), loc); uerr == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q does not match %q: %v", ErrInvalidDate, s, pattern, err)
}

func epochMillis(ms float64, loc *time.Location) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("%w: epoch %v out of range", ErrInvalidDate, ms)
	}
	return time.UnixMilli(int64(math.Trunc(ms))).In(loc), nil
}

// maxEpochMillis bounds epoch input to ±100,000,000 days.
const maxEpochMillis = 8.64e15

func numericString(value any, num float64) string {
	switch v := value.(type) {
	case json.Number:
		return v.String()
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		return v.String()
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}
