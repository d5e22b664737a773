// Package filterlib holds the word sets used to drop uninteresting tokens
package filterlib

import (
	_ "embed"
	"strings"

	"goWordFreq/iolib"
)

//go:embed stopwords_en.txt
var stopwordsEn string

// Set is an immutable word set
type Set map[string]struct{}

// NewSet builds a Set from words
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set. A nil Set is empty.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Union returns a new Set holding the words of all sets
func Union(sets ...Set) Set {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	u := make(Set, n)
	for _, s := range sets {
		for w := range s {
			u[w] = struct{}{}
		}
	}
	return u
}

// EnglishStopwords is the standard English stop-word list
func EnglishStopwords() Set {
	return NewSet(strings.Fields(stopwordsEn)...)
}

// LoadSet reads a whitespace-separated word list file
func LoadSet(filename string) (Set, error) {
	words, err := iolib.File2words(filename)
	if err != nil {
		return nil, err
	}
	return NewSet(words...), nil
}

// LoadExclusions builds the blacklist ∪ stop-words exclusion set. An empty
// stopwords filename selects EnglishStopwords; an empty blacklist filename
// means no blacklist.
func LoadExclusions(blacklist, stopwords string) (Set, error) {
	black := Set{}
	if blacklist != "" {
		var err error
		if black, err = LoadSet(blacklist); err != nil {
			return nil, err
		}
	}
	stop := EnglishStopwords()
	if stopwords != "" {
		var err error
		if stop, err = LoadSet(stopwords); err != nil {
			return nil, err
		}
	}
	return Union(black, stop), nil
}
