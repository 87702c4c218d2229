package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats counts with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// PartyCount returns a human count such as "1 party" or "1,024 parties".
func PartyCount(n int) string {
	if n == 1 {
		return printer.Sprintf("%d party", n)
	}
	return printer.Sprintf("%d parties", n)
}
