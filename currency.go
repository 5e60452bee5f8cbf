package formatter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// leadingFloat matches the longest float literal at the start of a string.
var leadingFloat = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

// FormatCurrency formats amount and attaches the symbol of the configured
// currency. USD places the symbol before the amount; every other currency
// places it after. Neither side gets a separator.
func (f *Formatter) FormatCurrency(amount any, opts ...FormatOption) (string, bool) {
	options := f.currencyOptions(opts)

	num, err := parseAmount(amount)
	if err != nil {
		return f.fallback("format_currency", options, err)
	}

	digits := intDigits
	if options.ForceFloat || hasFraction(num) {
		digits = floatDigits
	}
	formatted := renderNumber(options, num, digits)

	symbol := CurrencySymbol(options.Currency)
	if strings.EqualFold(options.Currency, "usd") {
		return symbol + formatted, true
	}
	return formatted + symbol, true
}

// CurrencySymbol returns the symbol for an ISO 4217 code, e.g. "eur" -> "€".
// Unknown codes resolve to an empty string.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return ""
	}

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return ""
	}

	// narrow symbols drop the region prefix: CAD -> "$", not "CA$"
	printer := message.NewPrinter(language.English)
	return strings.TrimSpace(printer.Sprintf("%v", currency.NarrowSymbol(unit)))
}

// parseAmount reads the longest leading float from strings, so "12.5 EUR"
// yields 12.5. Non-string values go through numericValue.
func parseAmount(amount any) (float64, error) {
	var raw string
	switch v := amount.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case fmt.Stringer:
		if num, err := numericValue(amount); err == nil {
			return num, nil
		}
		raw = v.String()
	default:
		return numericValue(amount)
	}

	match := leadingFloat.FindString(strings.TrimLeft(raw, " \t\n\r\f\v"))
	if match == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil && !isRangeError(err) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, raw)
	}
	return num, nil
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
