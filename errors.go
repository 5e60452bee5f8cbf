package formatter

import "errors"

// ErrInvalidNumber indicates that a value could not be coerced into a finite number.
var ErrInvalidNumber = errors.New("formatter: invalid number")

// ErrInvalidDate indicates that a value could not be parsed as a date.
var ErrInvalidDate = errors.New("formatter: invalid date")

// ErrInvalidPattern marks pattern rules whose regular expression does not compile.
var ErrInvalidPattern = errors.New("formatter: invalid pattern")

// ErrUnsupportedDataFormat is returned when a locale data file has an unknown extension.
var ErrUnsupportedDataFormat = errors.New("formatter: unsupported locale data format")

// ErrUnknownLocale is returned by LocaleDataProvider.Lookup when no data exists for a locale or its parents.
var ErrUnknownLocale = errors.New("formatter: unknown locale")

// ErrInvalidConfig marks constructor options that cannot be applied.
var ErrInvalidConfig = errors.New("formatter: invalid config")
