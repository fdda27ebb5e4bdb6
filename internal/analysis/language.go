package analysis

import (
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// Stopword tables for the two supported interview languages. Matched as
// whole words against lower-cased user utterances.
var (
	germanStopwords = []string{
		"der", "die", "das", "und", "ist", "wir", "nicht", "mit",
		"für", "haben", "sind", "ein", "eine", "unser", "kunden",
	}
	englishStopwords = []string{
		"the", "and", "is", "we", "not", "with", "for", "have",
		"are", "a", "an", "our", "customers",
	}
)

// DetectLanguage classifies the interview language by majority stopword
// vote over the user side of the transcript. Pure and total: ties and
// empty transcripts resolve to "en".
func DetectLanguage(transcript []domain.TranscriptEntry) string {
	var de, en int
	for _, e := range transcript {
		if e.Role != domain.RoleUser {
			continue
		}
		for _, w := range strings.Fields(strings.ToLower(e.Content)) {
			w = strings.Trim(w, ".,!?;:()\"'")
			if wordIn(w, germanStopwords) {
				de++
			}
			if wordIn(w, englishStopwords) {
				en++
			}
		}
	}
	if de > en {
		return "de"
	}
	return "en"
}

func wordIn(w string, words []string) bool {
	for _, x := range words {
		if w == x {
			return true
		}
	}
	return false
}
