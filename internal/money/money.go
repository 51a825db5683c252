// Package money formats currency amounts for game log lines and error messages.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders whole-dollar amounts with locale-aware digit grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale, falling back to American English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders amount as "$1,234".
func (f *Formatter) Format(amount int) string {
	if amount < 0 {
		return f.printer.Sprintf("-$%d", -amount)
	}
	return f.printer.Sprintf("$%d", amount)
}
