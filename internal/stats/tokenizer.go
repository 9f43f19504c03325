package stats

import (
	"strings"
	"unicode/utf8"
)

// specialChars are replaced with spaces before tokens are counted. Dots stay
// so that domains and trailing sentence periods can be handled separately.
const specialChars = ",!?(){}[]<>;:'\"/\\|&^*%$#@~_+=-"

// Tokenize extracts normalized word tokens from post text. URLs, mentions
// and handles on the feed's default domain are noise and are dropped before
// any punctuation splitting so they disappear whole; the surviving words are
// lowercased, stripped of one trailing dot, and filtered against the
// stop-word set, a minimum length of 2 runes, and purely numeric content.
func Tokenize(text string, stopWords map[string]struct{}, noiseDomain string) []string {
	var tokens []string

	for _, raw := range strings.Fields(text) {
		if isNoise(raw, noiseDomain) {
			continue
		}

		cleaned := strings.Map(func(r rune) rune {
			if strings.ContainsRune(specialChars, r) {
				return ' '
			}
			return r
		}, raw)

		for _, token := range strings.Fields(cleaned) {
			token = strings.TrimSuffix(token, ".")
			token = strings.ToLower(strings.TrimSpace(token))

			if utf8.RuneCountInString(token) < 2 {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			if isNumeric(token) {
				continue
			}
			if strings.HasPrefix(token, "@") {
				continue
			}
			tokens = append(tokens, token)
		}
	}

	return tokens
}

func isNoise(token, noiseDomain string) bool {
	if strings.HasPrefix(token, "http") || strings.HasPrefix(token, "@") {
		return true
	}
	if strings.Contains(token, "/") {
		return true
	}
	return noiseDomain != "" && strings.Contains(token, noiseDomain)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
