package tokenizelib

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"goWordFreq/filterlib"
	"goWordFreq/lemmalib"
	"goWordFreq/taggerlib"
	"goWordFreq/wordmaplib"
)

func TestSentences(t *testing.T) {
	got, err := Sentences("The cat sat. The cat ran.")
	if err != nil {
		t.Fatalf("Sentences: %v", err)
	}
	want := []string{"The cat sat.", "The cat ran."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %q, want %q", got, want)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("Tagged"); err != nil || m != ModeTagged {
		t.Errorf("ParseMode(Tagged) = %q, %v", m, err)
	}
	if _, err := ParseMode("fancy"); err == nil {
		t.Error("ParseMode(fancy) succeeded")
	}
}

func TestSimple(t *testing.T) {
	m, err := wordmaplib.New(wordmaplib.Source{Name: "equivs", R: strings.NewReader("be was is\n")})
	if err != nil {
		t.Fatal(err)
	}
	tok := &Simple{Mapper: m, Lowercase: filterlib.NewSet("the")}
	got := slices.Collect(tok.Tokenize("The dog's bone was 42 years old. Bob is 7-up fan."))
	want := []string{"the", "dog", "bone", "be", "years", "old", "Bob", "be", "7-up", "fan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
	if tok.Err() != nil {
		t.Errorf("Err = %v", tok.Err())
	}
}

func TestSimpleFirstTokenOnly(t *testing.T) {
	tok := &Simple{Lowercase: filterlib.NewSet("the")}
	got := slices.Collect(tok.Tokenize("12 The cats. Look at The Cats."))
	// the numeral holds index 0, so "The" stays capitalized
	want := []string{"The", "cats", "Look", "at", "The", "Cats"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestSimpleNormCaps(t *testing.T) {
	tok := &Simple{NormCaps: true}
	got := slices.Collect(tok.Tokenize("This is NOT FAIR. We love the USA."))
	want := []string{"this", "is", "not", "fair", "we", "love", "the", "USA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestSimpleStopsEarly(t *testing.T) {
	tok := &Simple{}
	var got []string
	for w := range tok.Tokenize("one two three four") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Errorf("got %q", got)
	}
}

// stubTagger tags from a fixed lexicon, "XX" for anything else
type stubTagger map[string]string

func (s stubTagger) Tag(words []string) ([]taggerlib.TaggedToken, error) {
	out := make([]taggerlib.TaggedToken, len(words))
	for i, w := range words {
		tag, ok := s[w]
		if !ok {
			tag = "XX"
		}
		out[i] = taggerlib.TaggedToken{Text: w, Tag: tag}
	}
	return out, nil
}

var lexicon = stubTagger{
	"The": "DT", "the": "DT", "Dogs": "NNS", "dogs": "NNS", "Paris": "NNP",
	"ran": "VBD", "quickly": "RB", "Big": "JJ", "in": "IN", "3": "CD",
}

func TestTagged(t *testing.T) {
	tok := &Tagged{Tagger: lexicon, FoldCase: true}
	got := slices.Collect(tok.Tokenize(`"Dogs ran quickly in Paris!" Big dogs, 3 of them.`))
	want := []string{"dogs", "ran", "quickly", "Paris", "big", "dogs", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}

	tok.FoldCase = false
	got = slices.Collect(tok.Tokenize("Dogs ran."))
	if want := []string{"Dogs", "ran"}; !reflect.DeepEqual(got, want) {
		t.Errorf("no case folding: %q, want %q", got, want)
	}
}

func TestTaggedLemmatized(t *testing.T) {
	lem, err := lemmalib.New()
	if err != nil {
		t.Fatalf("lemmalib.New: %v", err)
	}
	m, err := wordmaplib.New(wordmaplib.Source{Name: "equivs", R: strings.NewReader("hound dog\n")})
	if err != nil {
		t.Fatal(err)
	}
	tok := &Tagged{Tagger: lexicon, Lemmatizer: lem, Mapper: m, FoldCase: true}
	got := slices.Collect(tok.Tokenize("The dogs ran."))
	want := []string{"hound", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestTaggedLemmatizedKeepsCase(t *testing.T) {
	lem, err := lemmalib.New()
	if err != nil {
		t.Fatalf("lemmalib.New: %v", err)
	}
	tagger := stubTagger{"Americans": "NNPS", "love": "VBP", "Dogs": "NNS"}
	tok := &Tagged{Tagger: tagger, Lemmatizer: lem}
	got := slices.Collect(tok.Tokenize("Americans love Dogs."))
	if want := []string{"Americans", "love", "Dogs"}; !reflect.DeepEqual(got, want) {
		t.Errorf("no case folding: %q, want %q", got, want)
	}

	tok.FoldCase = true
	got = slices.Collect(tok.Tokenize("Americans love Dogs."))
	if want := []string{"Americans", "love", "dog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("case folding: %q, want %q", got, want)
	}
}

type failingTagger struct{}

func (failingTagger) Tag([]string) ([]taggerlib.TaggedToken, error) {
	return nil, errors.New("boom")
}

func TestTaggedError(t *testing.T) {
	tok := &Tagged{Tagger: failingTagger{}}
	if got := slices.Collect(tok.Tokenize("Some text.")); len(got) != 0 {
		t.Errorf("got %q", got)
	}
	if tok.Err() == nil {
		t.Error("Err = nil after tagger failure")
	}
}
