package formatter

import (
	"strconv"
	"strings"
	"time"
)

// Date layouts use moment style tokens (YYYY, MMMM, Do, LT ...). Text inside
// square brackets is copied literally.

var longDateTokens = []string{"LTS", "LT", "LLLL", "LLL", "LL", "L", "llll", "lll", "ll", "l"}

// renderTokens is ordered so that longer tokens win at a given position.
var renderTokens = []string{
	"YYYY", "DDDD", "MMMM", "dddd",
	"MMM", "DDD", "ddd", "SSS",
	"YY", "MM", "Mo", "DD", "Do", "dd", "HH", "hh", "kk", "mm", "ss", "SS", "ZZ",
	"Q", "M", "D", "d", "H", "h", "k", "m", "s", "S", "A", "a", "Z", "X", "x",
}

// parseLayouts maps input tokens to Go layout elements. Numeric day, month,
// hour, minute and second elements accept one or two digits.
var parseLayouts = map[string]string{
	"YYYY": "2006",
	"YY":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "1",
	"M":    "1",
	"DDDD": "002",
	"DD":   "2",
	"D":    "2",
	"dddd": "Monday",
	"ddd":  "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "3",
	"h":    "3",
	"mm":   "4",
	"m":    "4",
	"ss":   "5",
	"s":    "5",
	"SSS":  "000",
	"SS":   "00",
	"S":    "0",
	"A":    "PM",
	"a":    "pm",
	"ZZ":   "-0700",
	"Z":    "-07:00",
}

// maxLongDateExpansions bounds nested long date formats (LLL may contain LT).
const maxLongDateExpansions = 5

// expandLongDateFormats replaces LT, LTS, L ... llll with the locale layouts.
func expandLongDateFormats(format string, data *LocaleData) string {
	if data == nil || len(data.LongDateFormats) == 0 {
		return format
	}

	for i := 0; i < maxLongDateExpansions; i++ {
		expanded := expandLongDateOnce(format, data.LongDateFormats)
		if expanded == format {
			break
		}
		format = expanded
	}
	return format
}

func expandLongDateOnce(format string, formats map[string]string) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		if _, n := bracketLiteral(format[i:]); n > 0 {
			b.WriteString(format[i : i+n])
			i += n
			continue
		}

		matched := false
		for _, token := range longDateTokens {
			if !strings.HasPrefix(format[i:], token) {
				continue
			}
			if layout, ok := formats[token]; ok {
				b.WriteString(layout)
			} else {
				b.WriteString(token)
			}
			i += len(token)
			matched = true
			break
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// bracketLiteral returns the text inside a leading [..] and the number of
// bytes consumed, or n == 0 when s does not start with a closed bracket.
func bracketLiteral(s string) (string, int) {
	if !strings.HasPrefix(s, "[") {
		return "", 0
	}
	end := strings.IndexByte(s[1:], ']')
	if end < 0 {
		return "", 0
	}
	return s[1 : end+1], end + 2
}

func matchToken(s string, tokens []string) string {
	for _, token := range tokens {
		if strings.HasPrefix(s, token) {
			return token
		}
	}
	return ""
}

// renderDate formats t with a layout whose long date tokens were already expanded.
func renderDate(t time.Time, layout string, data *LocaleData) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		if literal, n := bracketLiteral(layout[i:]); n > 0 {
			b.WriteString(literal)
			i += n
			continue
		}

		token := matchToken(layout[i:], renderTokens)
		if token == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, token, data))
		i += len(token)
	}
	return b.String()
}

func renderToken(t time.Time, token string, data *LocaleData) string {
	switch token {
	case "YYYY":
		year := t.Year()
		if year >= 0 && year <= 9999 {
			return zeroPad(year, 4)
		}
		if year > 9999 {
			return "+" + strconv.Itoa(year)
		}
		return strconv.Itoa(year)
	case "YY":
		return zeroPad(absInt(t.Year())%100, 2)
	case "Q":
		return strconv.Itoa((int(t.Month())-1)/3 + 1)
	case "MMMM":
		return pick(data.Months, int(t.Month())-1)
	case "MMM":
		return pick(data.MonthsShort, int(t.Month())-1)
	case "MM":
		return zeroPad(int(t.Month()), 2)
	case "Mo":
		return ordinal(int(t.Month()), data.Ordinal)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DDDD":
		return zeroPad(t.YearDay(), 3)
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "DD":
		return zeroPad(t.Day(), 2)
	case "Do":
		return ordinal(t.Day(), data.Ordinal)
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return pick(data.Weekdays, int(t.Weekday()))
	case "ddd":
		return pick(data.WeekdaysShort, int(t.Weekday()))
	case "dd":
		return pick(data.WeekdaysMin, int(t.Weekday()))
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return zeroPad(t.Hour(), 2)
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return zeroPad(hour12(t.Hour()), 2)
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "kk":
		return zeroPad(hour24(t.Hour()), 2)
	case "k":
		return strconv.Itoa(hour24(t.Hour()))
	case "mm":
		return zeroPad(t.Minute(), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return zeroPad(t.Second(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "SSS":
		return zeroPad(t.Nanosecond()/int(time.Millisecond), 3)
	case "SS":
		return zeroPad(t.Nanosecond()/(10*int(time.Millisecond)), 2)
	case "S":
		return strconv.Itoa(t.Nanosecond() / (100 * int(time.Millisecond)))
	case "A":
		if t.Hour() < 12 {
			return data.Meridiem.UpperAM
		}
		return data.Meridiem.UpperPM
	case "a":
		if t.Hour() < 12 {
			return data.Meridiem.AM
		}
		return data.Meridiem.PM
	case "ZZ":
		return t.Format("-0700")
	case "Z":
		return t.Format("-07:00")
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return token
}

// goLayout translates a moment style input pattern into a time.Parse layout.
func goLayout(pattern string) string {
	tokens := make([]string, 0, len(parseLayouts))
	for _, token := range renderTokens {
		if _, ok := parseLayouts[token]; ok {
			tokens = append(tokens, token)
		}
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		if literal, n := bracketLiteral(pattern[i:]); n > 0 {
			b.WriteString(literal)
			i += n
			continue
		}

		token := matchToken(pattern[i:], tokens)
		if token == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(parseLayouts[token])
		i += len(token)
	}
	return b.String()
}

// unifySeparators rewrites "-" and "." to "/" so that inputs using other
// separators than the pattern still parse. Bracketed text is kept when
// literals is true.
func unifySeparators(s string, literals bool) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if literals {
			if _, n := bracketLiteral(s[i:]); n > 0 {
				b.WriteString(s[i : i+n])
				i += n
				continue
			}
		}
		switch s[i] {
		case '-', '.':
			b.WriteByte('/')
		default:
			b.WriteByte(s[i])
		}
		i++
	}
	return b.String()
}

func ordinal(n int, rules OrdinalRules) string {
	value := strconv.Itoa(n)
	switch rules.System {
	case "english":
		return value + englishOrdinalSuffix(n)
	default:
		if n == 1 && rules.FirstSuffix != "" {
			return value + rules.FirstSuffix
		}
		return value + rules.Suffix
	}
}

func englishOrdinalSuffix(value int) string {
	abs := absInt(value)
	mod100 := abs % 100
	if mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func pick(list []string, idx int) string {
	if idx < 0 || idx >= len(list) {
		return ""
	}
	return list[idx]
}

func zeroPad(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func hour24(hour int) int {
	if hour == 0 {
		return 24
	}
	return hour
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
