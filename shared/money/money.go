package money

import (
	"indivoyage/config"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultLocale = "en-IN"
	defaultSymbol = "₹"
)

// Formatter renders whole currency amounts with locale-aware digit grouping.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func New(locale, symbol string) *Formatter {
	if locale == "" {
		locale = defaultLocale
	}

	if symbol == "" {
		symbol = defaultSymbol
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(defaultLocale)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

func NewFromConfig(cfg *config.Config) *Formatter {
	return New(cfg.App.Currency.Locale, cfg.App.Currency.Symbol)
}

// Format renders amount as symbol plus grouped digits, e.g. ₹12,600.
func (f *Formatter) Format(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + f.symbol + f.Number(amount)
}

// Number renders amount with grouping only.
func (f *Formatter) Number(amount int) string {
	return f.printer.Sprintf("%d", amount)
}

func (f *Formatter) Symbol() string {
	return f.symbol
}
