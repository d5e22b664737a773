package freqlib

import (
	"iter"

	snowballeng "github.com/kljensen/snowball/english"
)

// Stem reduces every word of the stream to its Porter2 stem
func Stem(words iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range words {
			if !yield(snowballeng.Stem(w, false)) {
				return
			}
		}
	}
}
