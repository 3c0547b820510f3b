package parser

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MonthKeyLen is the number of leading runes of a month word used for lookup.
const MonthKeyLen = 3

// DefaultMonths maps the first three letters of a Russian month name
// (any grammatical case) to its month.
var DefaultMonths = map[string]time.Month{
	"янв": time.January,
	"фев": time.February,
	"мар": time.March,
	"апр": time.April,
	"май": time.May,
	"мая": time.May,
	"июн": time.June,
	"июл": time.July,
	"авг": time.August,
	"сен": time.September,
	"окт": time.October,
	"ноя": time.November,
	"дек": time.December,
}

// DefaultParity maps the week-parity word closing the header line to the
// even-week flag of the sheet.
var DefaultParity = map[string]bool{
	"нечетная": true,
	"нечётная": true,
	"четная":   false,
	"чётная":   false,
}

// Fold normalizes a token for table lookup. A new Caser is built per call
// since cases.Caser must not be shared between goroutines.
func Fold(s string) string {
	return cases.Lower(language.Russian).String(norm.NFC.String(strings.TrimSpace(s)))
}

// MonthKey returns the lookup key of a month word.
func MonthKey(word string) string {
	runes := []rune(Fold(word))
	if len(runes) > MonthKeyLen {
		runes = runes[:MonthKeyLen]
	}
	return string(runes)
}
