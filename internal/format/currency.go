// Package format holds the pure display-formatting helpers.
package format

import "fmt"

// Formatter renders monetary values for the card views.
type Formatter struct {
	symbol string
}

func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = "$"
	}
	return &Formatter{symbol: symbol}
}

// Currency renders a fixed two-decimal amount with the symbol prefix,
// e.g. 23.5 -> "$23.50". Total for any numeric input; passing NaN or an
// infinity is a caller bug, not a handled case.
func (f *Formatter) Currency(amount float64) string {
	return fmt.Sprintf("%s%.2f", f.symbol, amount)
}
