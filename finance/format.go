package finance

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale groups digits the Indian way (12,34,567.00).
var DefaultLocale = language.MustParse("en-IN")

// ParseLocale returns the tag for a BCP 47 string, falling back to DefaultLocale.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLocale
	}
	return tag
}

// FormatAmount renders v with two decimals and the digit grouping of locale.
func FormatAmount(locale language.Tag, v float64) string {
	return message.NewPrinter(locale).Sprintf("%.2f", v)
}
