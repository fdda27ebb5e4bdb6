// Package analysis implements the pure classification and scoring layer:
// stage resolution, feasibility rules, benchmark normalization, numeric
// extraction and language detection. Everything here is total and
// side-effect free.
package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first number-looking token: digits with
// optional comma thousand separators and an optional decimal part.
var numberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ExtractNumber parses a number out of free text, best-effort. Grammar:
// the first token matching numberPattern, commas dropped, with an
// immediately following k/K (x1000) or m/M (x1000000) suffix applied when
// the suffix is not itself the start of a word ("18m" scales, "18 months"
// does not, "3 months" does not). Ranges like "20-50k" resolve to the
// first number. Returns ok=false when no usable number is found.
func ExtractNumber(text string) (float64, bool) {
	loc := numberPattern.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	token := strings.ReplaceAll(text[loc[0]:loc[1]], ",", "")
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v * suffixMultiplier(text, loc[1]), true
}

func suffixMultiplier(text string, pos int) float64 {
	if pos >= len(text) {
		return 1
	}
	suffix := text[pos]
	// The character after the suffix must not continue a word.
	if pos+1 < len(text) && isLetter(text[pos+1]) {
		return 1
	}
	switch suffix {
	case 'k', 'K':
		return 1e3
	case 'm', 'M':
		return 1e6
	}
	return 1
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// containsAny reports whether the lower-cased text contains any of the
// given lower-case keywords. Shared by the keyword classifiers below.
func containsAny(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
