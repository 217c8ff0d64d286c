// Package format renders amounts the way the app displays them: Indonesian
// rupiah with id-ID digit grouping and no fraction digits.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats an amount as e.g. "Rp 5.000".
func Rupiah(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}
