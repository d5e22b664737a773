// Package tokenizelib turns cleaned text into a lazy stream of canonical
// word forms.
//
// Two strategies share the Tokenizer interface: Simple extracts word-like
// runs and fixes sentence-initial capitals, Tagged runs a part-of-speech
// tagger and keeps lemmatized content words only. Streams are single pass:
// ranging over a Tokenize result twice re-tokenizes the text.
package tokenizelib

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jdkato/prose/v2"

	"goWordFreq/wordmaplib"
)

// Tokenizer produces the word stream of a text. Err reports the first error
// met by the last stream, once it is exhausted.
type Tokenizer interface {
	Tokenize(text string) iter.Seq[string]
	Err() error
}

// Mode selects a Tokenizer strategy
type Mode string

const (
	ModeSimple Mode = "simple"
	ModeTagged Mode = "tagged"
)

// ParseMode validates a configured mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeSimple, ModeTagged:
		return m, nil
	}
	return "", fmt.Errorf("unknown tokenizer mode %q (want %s or %s)", s, ModeSimple, ModeTagged)
}

// Sentences splits text into sentences with prose's punkt segmenter
func Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segmenting sentences: %w", err)
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func mapWord(m *wordmaplib.Mapper, w string) string {
	if m == nil {
		return w
	}
	return m.Map(w)
}
