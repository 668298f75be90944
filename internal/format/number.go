package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoPopulation is shown when no country is selected or the selection does not
// resolve to a record.
const NoPopulation = "Population: -"

// English locale keeps thousands separators stable regardless of host settings.
var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators, e.g. 18248 -> "18,248".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Population renders the population line for a country.
func Population(n int64) string {
	return "Population: " + Number(n)
}
