// Package lemmalib reduces inflected English words to their dictionary form,
// using the part of speech to pick between candidate lemmas.
package lemmalib

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// POS is the grammatical category a word is lemmatized as
type POS int

const (
	Noun POS = iota
	Verb
	Adjective
	Adverb
)

func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	}
	return fmt.Sprintf("POS(%d)", int(p))
}

type detachment struct {
	suffix, ending string
}

// Inflectional endings per category, tried in order.
var detachments = map[POS][]detachment{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// Lemmatizer wraps the golem English dictionary
type Lemmatizer struct {
	dict *golem.Lemmatizer
}

// New loads the English dictionary
func New() (*Lemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading lemma dictionary: %w", err)
	}
	return &Lemmatizer{dict: dict}, nil
}

// Lemma returns the base form of word as pos. Words the dictionary does not
// know, words carrying any capital letter, and adverbs are returned
// unchanged; callers fold case first when they want capitals lemmatized.
//
// Among the dictionary lemmas of word, the ones reachable by stripping an
// ending of pos are preferred, then word itself; otherwise the shortest lemma
// wins, ties broken alphabetically.
func (l *Lemmatizer) Lemma(word string, pos POS) string {
	if pos == Adverb || word == "" || word != strings.ToLower(word) || !l.dict.InDict(word) {
		return word
	}
	lemmas := l.dict.Lemmas(word)
	if len(lemmas) == 0 {
		return word
	}

	var cands []string
	for _, d := range detachments[pos] {
		if !strings.HasSuffix(word, d.suffix) {
			continue
		}
		c := strings.TrimSuffix(word, d.suffix) + d.ending
		if slices.Contains(lemmas, c) {
			cands = append(cands, c)
		}
	}
	if slices.Contains(lemmas, word) {
		cands = append(cands, word)
	}
	if len(cands) == 0 {
		cands = lemmas
	}
	return shortest(cands)
}

func shortest(words []string) string {
	best := words[0]
	for _, w := range words[1:] {
		if len(w) < len(best) || (len(w) == len(best) && w < best) {
			best = w
		}
	}
	return best
}
