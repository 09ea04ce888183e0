package currency

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts for display. It never feeds back into stored amounts.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

func New(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders a whole-unit amount with the currency symbol and the locale's digit grouping.
func (f Formatter) Format(amount int64) string {
	if f.printer == nil {
		return fmt.Sprintf("%d", amount)
	}

	return f.printer.Sprint(currency.Symbol(f.unit)) + " " + f.printer.Sprint(number.Decimal(amount))
}

func (f Formatter) Code() string {
	return f.unit.String()
}
