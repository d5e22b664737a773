package tokenizelib

import (
	"iter"
	"regexp"
	"strings"

	"goWordFreq/filterlib"
	"goWordFreq/stringlib"
	"goWordFreq/textlib"
	"goWordFreq/wordmaplib"
)

var reWord = regexp.MustCompile(`[a-zA-Z0-9'-]+`)

// Simple extracts runs of letters, digits, apostrophes and hyphens, drops
// bare numbers and maps every word.
type Simple struct {
	Mapper *wordmaplib.Mapper
	// Lowercase lists words lowercased when they open a sentence
	Lowercase filterlib.Set
	// NormCaps runs textlib.NormCapitalization on each sentence first
	NormCaps bool

	err error
}

func (s *Simple) Err() error { return s.err }

func (s *Simple) Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		s.err = nil
		sents, err := Sentences(text)
		if err != nil {
			s.err = err
			return
		}
		for _, sent := range sents {
			if s.NormCaps {
				sent = textlib.NormCapitalization(sent)
			}
			for wx, w := range reWord.FindAllString(sent, -1) {
				if stringlib.IsDigits(w) { // no numerals
					continue
				}
				if wx == 0 {
					if lw := strings.ToLower(w); s.Lowercase.Has(lw) {
						w = lw
					}
				}
				if !yield(mapWord(s.Mapper, w)) {
					return
				}
			}
		}
	}
}
