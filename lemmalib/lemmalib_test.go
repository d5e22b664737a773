package lemmalib

import (
	"sync"
	"testing"
)

var (
	shared     *Lemmatizer
	sharedErr  error
	sharedOnce sync.Once
)

func lemmatizer(t *testing.T) *Lemmatizer {
	t.Helper()
	sharedOnce.Do(func() {
		shared, sharedErr = New()
	})
	if sharedErr != nil {
		t.Fatalf("New: %v", sharedErr)
	}
	return shared
}

func TestLemma(t *testing.T) {
	l := lemmatizer(t)
	tests := []struct {
		word string
		pos  POS
		want string
	}{
		{"cats", Noun, "cat"},
		{"children", Noun, "child"},
		{"running", Verb, "run"},
		{"was", Verb, "be"},
		{"walked", Verb, "walk"},
		{"bigger", Adjective, "big"},
		{"quickly", Adverb, "quickly"},
		{"cats", Adverb, "cats"},
		{"Zorblaxes", Noun, "Zorblaxes"},
		{"Americans", Noun, "Americans"},
		{"Dogs", Noun, "Dogs"},
		{"Walked", Verb, "Walked"},
		{"", Noun, ""},
	}
	for _, tt := range tests {
		if got := l.Lemma(tt.word, tt.pos); got != tt.want {
			t.Errorf("Lemma(%q, %v) = %q, want %q", tt.word, tt.pos, got, tt.want)
		}
	}
}

func TestShortest(t *testing.T) {
	if got := shortest([]string{"leave", "leaf", "lead"}); got != "lead" {
		t.Errorf("shortest = %q, want lead", got)
	}
}

func TestPOSString(t *testing.T) {
	if Verb.String() != "verb" || POS(9).String() != "POS(9)" {
		t.Errorf("String() = %q, %q", Verb.String(), POS(9).String())
	}
}
