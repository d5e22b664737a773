package taggerlib

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Tagger assigns part-of-speech tags to the words of one sentence
type Tagger interface {
	Tag(words []string) ([]TaggedToken, error)
}

// ProseTagger tags with the model bundled in prose, so it needs no corpus.
// prose re-tokenizes the sentence, so contractions may come back split.
type ProseTagger struct{}

func (ProseTagger) Tag(words []string) ([]TaggedToken, error) {
	if len(words) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(words, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	toks := doc.Tokens()
	out := make([]TaggedToken, len(toks))
	for i, tok := range toks {
		out[i] = TaggedToken{Text: tok.Text, Tag: tok.Tag}
	}
	return out, nil
}
