// Package normalize brings user supplied player names to the one
// canonical form used for storage and lookups.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name collapses inner whitespace and title-cases every word:
// "вася  ПУПКИН" becomes "Вася Пупкин". A cases.Caser is stateful, so
// a fresh one is built per call.
func Name(s string) string {
	return cases.Title(language.Russian).String(strings.Join(strings.Fields(s), " "))
}
