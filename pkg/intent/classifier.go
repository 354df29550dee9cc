// Package intent classifies user messages into coarse support intents
// using an ordered keyword rule table. No learned signal is involved;
// confidence derives from the matched rule's priority rank.
package intent

import (
	"regexp"
	"strings"
)

// wordMatchers holds a compiled whole-word pattern per single-word keyword,
// built once at init since the rule table is static.
var wordMatchers = map[string]*regexp.Regexp{}

func init() {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(kw, " ") {
				continue
			}
			if _, ok := wordMatchers[kw]; !ok {
				wordMatchers[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
}

// Classify returns the best-matching intent label and a confidence in [0,1].
// Multi-word phrases match by substring on the lowercased text; single
// words require whole-word boundaries so "rate" never matches "integrate".
// The first rule in priority order wins. No match returns ("", 0).
func Classify(message string) (string, float64) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return "", 0
	}

	for _, rule := range rules {
		if matchesAny(lower, rule.Keywords) {
			// Higher priority intents get higher confidence
			confidence := 1.0 - float64(rule.Priority-1)*0.02
			if confidence < 0.5 {
				confidence = 0.5
			}
			return rule.Label, confidence
		}
	}

	return "", 0
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(text, kw) {
				return true
			}
		} else if wordMatchers[kw].MatchString(text) {
			return true
		}
	}
	return false
}
