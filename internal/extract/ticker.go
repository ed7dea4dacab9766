// Package extract pulls ticker symbols, dates, and date ranges out of free text.
package extract

import (
	"strings"
	"unicode"
)

// Ticker extracts a stock symbol from free text. It returns "" when nothing
// matches; callers must treat the empty result as a normal outcome.
//
// Matching order, first hit wins:
//  1. a standalone 2-5 letter token that is itself a known symbol
//  2. the longest known company name appearing as a substring of the text
//  3. a lossy fuzzy pass matching long tokens against partial company names
func Ticker(text string) string {
	upper := strings.ToUpper(text)
	words := tokenize(upper)

	for _, w := range words {
		if len(w) >= 2 && len(w) <= 5 && isAlpha(w) && knownSymbols[w] {
			return w
		}
	}

	// Longest name first so "TESLA MOTORS" beats "TESLA". Equal-length ties
	// go to the alphabetically first name.
	best := ""
	for _, name := range symbolNames {
		if strings.Contains(upper, name) && len(name) > len(best) {
			best = name
		}
	}
	if best != "" {
		return symbolTable[best]
	}

	// Fuzzy fallback. Known to mis-fire on ordinary words; kept for partial
	// company names the literal passes miss. The sorted name order makes the
	// winner stable when several names match the same token.
	for _, w := range words {
		if len(w) < 4 {
			continue
		}
		for _, name := range symbolNames {
			if float64(len(w)) >= float64(len(name))*0.4 &&
				(strings.Contains(name, w) || strings.HasPrefix(name, w)) {
				return symbolTable[name]
			}
		}
	}

	return ""
}

func tokenize(upper string) []string {
	fields := strings.Fields(upper)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.Trim(f, ".,!?()[]{}"))
	}
	return out
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
