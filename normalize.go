package marketcap

import (
	"regexp"
	"strconv"
	"strings"
)

// \s is ASCII-only; \p{Z} adds the U+00A0, U+202F and U+2009 separators
// used by French-locale pages.
var (
	marketCapRe = regexp.MustCompile(`€[\s\p{Z}]*([0-9]+(?:[.,][0-9]+)?)[\s\p{Z}]*(Md|Bn)`)
	tickerRe    = regexp.MustCompile(`[\s\p{Z}]+[A-Z0-9.\-]+$`)
	flagRe      = regexp.MustCompile(`^[\x{1F1E6}-\x{1F1FF}]{2}[\s\p{Z}]*`)
)

// billionUnits lists the unit tokens the site uses for billions.
// "Md" (milliards) and "Bn" are synonyms; no scaling is applied.
var billionUnits = map[string]bool{
	"Md": true,
	"Bn": true,
}

// ParseMarketCap parses a cell such as "€12,50 Md" into billions of euros.
// The boolean result is false when the text is not parseable; a parsed zero
// is reported as (0, true).
func ParseMarketCap(text string) (float64, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))

	m := marketCapRe.FindStringSubmatch(normalized)
	if m == nil {
		return 0, false
	}

	if !billionUnits[m[2]] {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// CleanName removes a trailing ticker-shaped token, e.g. "Orange ORA.PA"
// becomes "Orange". All-caps name suffixes such as "AG" are removed too.
func CleanName(name string) string {
	return strings.TrimSpace(tickerRe.ReplaceAllString(name, ""))
}

// CleanCountry removes a leading flag emoji and the whitespace after it.
func CleanCountry(country string) string {
	return flagRe.ReplaceAllString(country, "")
}
