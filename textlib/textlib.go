// Package textlib prepares raw comment text for word frequency analysis
package textlib

import (
	"regexp"
	"strings"

	"goWordFreq/stringlib"
)

var (
	// Studly words at the beginning of a sentence, or following " ' or >
	reTitleCase = regexp.MustCompile(`((^|['">])[A-Z]([a-z-]+| ))`)
	// n-grams of words in ALL CAPS, n >= 2
	reAllCaps = regexp.MustCompile(`[A-Z]+( [A-Z]+)+`)
	reURL     = regexp.MustCompile(`https?://\S+|\S+\.\S{2,3}`)

	entities = strings.NewReplacer("&gt", ">", "&nbsp", " ")
)

// Clean decodes the two HTML entities comment dumps carry and drops URLs
// and bare domains
func Clean(text string) string {
	text = entities.Replace(text)
	return reURL.ReplaceAllString(text, "")
}

// NormCapitalization uncaps the first word of a sentence when only its first
// letter is capitalized, and lowercases runs of two or more ALL CAPS words.
// The pronoun "I" and isolated acronyms are kept.
func NormCapitalization(sent string) string {
	sent = reTitleCase.ReplaceAllStringFunc(sent, func(word string) string {
		if stringlib.OnlyLetters(word) == "I" {
			return word
		}
		return strings.ToLower(word)
	})
	return reAllCaps.ReplaceAllStringFunc(sent, strings.ToLower)
}
