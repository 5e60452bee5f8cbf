package formatter

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	intDigits   = 0
	floatDigits = 2
)

// FormatInt renders value without fraction digits. With ShowUnit (the default)
// the value is first reduced to a K/M/G/T/P/E magnitude.
func (f *Formatter) FormatInt(value any, opts ...FormatOption) (string, bool) {
	options := f.numberOptions(opts)
	num, err := numericValue(value)
	if err != nil {
		return f.fallback("format_int", options, err)
	}
	return renderNumber(options, num, intDigits), true
}

// FormatFloat renders value with exactly two fraction digits.
func (f *Formatter) FormatFloat(value any, opts ...FormatOption) (string, bool) {
	options := f.numberOptions(opts)
	num, err := numericValue(value)
	if err != nil {
		return f.fallback("format_float", options, err)
	}
	return renderNumber(options, num, floatDigits), true
}

// FormatNumber dispatches to FormatFloat when value has a fractional part and
// to FormatInt otherwise.
func (f *Formatter) FormatNumber(value any, opts ...FormatOption) (string, bool) {
	num, err := numericValue(value)
	if err != nil {
		return f.fallback("format_number", f.numberOptions(opts), err)
	}
	if hasFraction(num) {
		return f.FormatFloat(num, opts...)
	}
	return f.FormatInt(num, opts...)
}

// FormatPercentage formats value without unit reduction and appends "%".
// Locale specific percent placement is not applied.
func (f *Formatter) FormatPercentage(value any, opts ...FormatOption) (string, bool) {
	forced := append(append([]FormatOption(nil), opts...), WithShowUnit(false))
	formatted, ok := f.FormatNumber(value, forced...)
	if !ok {
		return formatted, false
	}
	return formatted + "%", true
}

func renderNumber(options FormatOptions, num float64, digits int) string {
	if !options.ShowUnit {
		return localizedDecimal(options.Locale, num, digits)
	}
	base, unit := NumberAndUnit(num)
	return localizedDecimal(options.Locale, base, digits) + string(unit)
}

// localizedDecimal rounds half away from zero before printing; the x/text
// printer alone rounds half to even (2.5 -> "2").
func localizedDecimal(locale string, value float64, digits int) string {
	rounded := decimal.NewFromFloat(value).Round(int32(digits)).InexactFloat64()
	printer := message.NewPrinter(localeTag(locale))
	return printer.Sprintf("%v", number.Decimal(rounded,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}

func hasFraction(num float64) bool {
	return math.Mod(num, 1) != 0
}

// numericValue accepts Go numeric kinds, decimals and json.Number. Strings are
// not numbers here; see parseAmount for the lenient variant.
func numericValue(value any) (float64, error) {
	var num float64

	switch v := value.(type) {
	case float64:
		num = v
	case float32:
		num = float64(v)
	case int:
		num = float64(v)
	case int8:
		num = float64(v)
	case int16:
		num = float64(v)
	case int32:
		num = float64(v)
	case int64:
		num = float64(v)
	case uint:
		num = float64(v)
	case uint8:
		num = float64(v)
	case uint16:
		num = float64(v)
	case uint32:
		num = float64(v)
	case uint64:
		num = float64(v)
	case decimal.Decimal:
		num = v.InexactFloat64()
	case *decimal.Decimal:
		if v == nil {
			return 0, fmt.Errorf("%w: nil decimal", ErrInvalidNumber)
		}
		num = v.InexactFloat64()
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
		}
		num = parsed
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidNumber, value)
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidNumber, num)
	}
	return num, nil
}
