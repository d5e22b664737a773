// Package langlib keeps scraped texts written in one wanted language
package langlib

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// candidates are the languages a text is told apart from
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

// Filter decides whether texts are written in its language
type Filter struct {
	want     lingua.Language
	detector lingua.LanguageDetector
}

// New builds a filter keeping texts in the language with the given ISO 639-1
// code, which must be one of the candidate languages.
func New(code string) (*Filter, error) {
	want := lingua.GetLanguageFromIsoCode639_1(lingua.GetIsoCode639_1FromValue(strings.ToUpper(code)))
	found := false
	for _, l := range candidates {
		found = found || l == want
	}
	if !found {
		return nil, fmt.Errorf("unsupported language %q", code)
	}
	return &Filter{
		want:     want,
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(candidates...).Build(),
	}, nil
}

// Keep reports whether text should be kept. Texts whose language cannot be
// told reliably (too short, mixed) are kept.
func (f *Filter) Keep(text string) bool {
	lang, ok := f.detector.DetectLanguageOf(text)
	return !ok || lang == f.want
}
