package assistant

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"TWD": "NT$",
	"AUD": "A$",
	"CAD": "CA$",
	"NZD": "NZ$",
	"HKD": "HK$",
	"SGD": "S$",
	"CHF": "CHF ",
	"THB": "฿",
	"MXN": "MX$",
	"BRL": "R$",
}

// CurrencyFormatter renders amounts with grouping and the currency's standard
// number of decimals.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
	scale   int
}

func NewCurrencyFormatter(code string) (*CurrencyFormatter, error) {
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown currency %q", code)
	}
	scale, _ := currency.Standard.Rounding(unit)
	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(language.English),
		symbol:  symbol,
		scale:   scale,
	}, nil
}

func mustCurrencyFormatter(code string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(code)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *CurrencyFormatter) Format(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// daysPhrase is "today", "tomorrow" or "in N days".
func daysPhrase(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	return fmt.Sprintf("in %d days", days)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
