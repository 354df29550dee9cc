// Package lang provides best-effort language detection for short chat
// messages. It only needs to be good enough to steer the model towards
// replying in the user's language; anything it cannot resolve is English.
package lang

import (
	"strings"
	"unicode"
)

// Default is the system default language code (ISO 639-1).
const Default = "en"

// stopwords are high-frequency function words that rarely collide across
// the supported languages. Words shared with English are left out on
// purpose so English input never scores for another language.
// codes fixes the scan order so equal-score ties always resolve the
// same way.
var codes = []string{"es", "fr", "de", "pt", "it"}

var stopwords = map[string][]string{
	"es": {"el", "la", "los", "las", "es", "una", "uno", "que", "como", "donde", "cuanto", "cuesta", "hola", "gracias", "por", "para", "usted", "quiero"},
	"fr": {"le", "la", "les", "est", "une", "vous", "je", "nous", "bonjour", "merci", "combien", "pourquoi", "avec", "votre", "suis"},
	"de": {"der", "die", "das", "ist", "ich", "und", "nicht", "eine", "danke", "hallo", "wie", "viel", "kostet", "sie", "mit"},
	"pt": {"o", "a", "os", "as", "um", "uma", "que", "como", "onde", "quanto", "custa", "ola", "obrigado", "voce", "para", "nao"},
	"it": {"il", "lo", "la", "gli", "una", "che", "come", "dove", "quanto", "costa", "ciao", "grazie", "sono", "con", "per"},
}

// Detect returns the ISO 639-1 code of the message's language. Unresolvable
// input falls back to the default; this function never fails.
func Detect(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Default
	}

	// Script check first: Devanagari means Hindi for our audience.
	for _, r := range trimmed {
		if unicode.Is(unicode.Devanagari, r) {
			return "hi"
		}
	}

	words := tokenize(trimmed)
	if len(words) == 0 {
		return Default
	}

	best := Default
	bestHits := 0
	for _, code := range codes {
		hits := 0
		for _, w := range stopwords[code] {
			if words[w] {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = code
		}
	}

	// One stray hit is noise ("la" in an English song title); require two.
	if bestHits < 2 {
		return Default
	}
	return best
}

func tokenize(text string) map[string]bool {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
