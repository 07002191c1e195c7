package messaging

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCoins renders an amount with thousands separators, e.g. "1,250 coins"
func FormatCoins(amount int64) string {
	if amount == 1 || amount == -1 {
		return printer.Sprintf("%d coin", amount)
	}
	return printer.Sprintf("%d coins", amount)
}

// FormatNumber renders an integer with thousands separators
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}
