package tokenizelib

import (
	"iter"
	"strings"

	"goWordFreq/lemmalib"
	"goWordFreq/stringlib"
	"goWordFreq/taggerlib"
	"goWordFreq/wordmaplib"
)

// punctuation stripped from both ends of each whitespace-separated token
const boundaryPunct = `,.'"?!`

type wordClass int

const (
	commonNoun wordClass = iota
	properNoun
	adjective
	adverb
	verb
)

var classByTag = map[string]wordClass{
	"NN": commonNoun, "NNS": commonNoun, "CD": commonNoun,
	"NNP": properNoun, "NNPS": properNoun, "FW": properNoun,
	"JJ": adjective, "JJR": adjective, "JJS": adjective,
	"RB": adverb, "RBR": adverb, "RBS": adverb,
	"VB": verb, "VBD": verb, "VBG": verb, "VBN": verb, "VBP": verb, "VBZ": verb,
}

func (c wordClass) pos() lemmalib.POS {
	switch c {
	case adjective:
		return lemmalib.Adjective
	case adverb:
		return lemmalib.Adverb
	case verb:
		return lemmalib.Verb
	}
	return lemmalib.Noun
}

// Tagged keeps nouns, proper nouns, adjectives, adverbs and verbs, in
// document order, each lemmatized as its class and then mapped.
type Tagged struct {
	Tagger     taggerlib.Tagger
	Lemmatizer *lemmalib.Lemmatizer
	Mapper     *wordmaplib.Mapper
	// FoldCase lowercases every class but proper nouns before lemmatizing
	FoldCase bool

	err error
}

func (t *Tagged) Err() error { return t.err }

func (t *Tagged) Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.err = nil
		sents, err := Sentences(text)
		if err != nil {
			t.err = err
			return
		}
		for _, sent := range sents {
			words := stringlib.TrimChars(strings.Fields(sent), boundaryPunct)
			tagged, err := t.Tagger.Tag(words)
			if err != nil {
				t.err = err
				return
			}
			for _, tok := range tagged {
				class, ok := classByTag[tok.Tag]
				if !ok {
					continue
				}
				w := tok.Text
				if t.FoldCase && class != properNoun {
					w = strings.ToLower(w)
				}
				if t.Lemmatizer != nil {
					w = t.Lemmatizer.Lemma(w, class.pos())
				}
				if !yield(mapWord(t.Mapper, w)) {
					return
				}
			}
		}
	}
}
