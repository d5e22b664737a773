// Package freqlib counts word occurrences and ranks the most frequent ones
package freqlib

import (
	"iter"
	"sort"

	"goWordFreq/filterlib"
)

// Entry is a word and its count
type Entry struct {
	Word  string `yaml:"word"`
	Count int    `yaml:"count"`
}

// Table maps each word to its number of occurrences
type Table struct {
	counts map[string]int
	total  int
}

// NewTable returns an empty Table
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add counts one occurrence of word
func (t *Table) Add(word string) {
	t.counts[word]++
	t.total++
}

// Count is the number of occurrences of word
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Len is the number of distinct words
func (t *Table) Len() int {
	return len(t.counts)
}

// Total is the number of counted occurrences
func (t *Table) Total() int {
	return t.total
}

// Exclude drops the words of exclude from the stream
func Exclude(words iter.Seq[string], exclude filterlib.Set) iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range words {
			if exclude.Has(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Tally drains words into a new Table, skipping excluded ones
func Tally(words iter.Seq[string], exclude filterlib.Set) *Table {
	t := NewTable()
	for w := range words {
		if exclude.Has(w) {
			continue
		}
		t.Add(w)
	}
	return t
}

// Top returns the k most frequent words. Equal counts are ordered by word,
// ascending byte order, so the ranking only depends on the counts. k <= 0
// returns every word.
func (t *Table) Top(k int) []Entry {
	ss := make([]Entry, 0, len(t.counts))
	for w, c := range t.counts {
		ss = append(ss, Entry{w, c})
	}
	sortEntries(ss)
	if k > 0 && k < len(ss) {
		ss = ss[:k]
	}
	return ss
}

func sortEntries(ss []Entry) {
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count == ss[j].Count {
			return ss[i].Word < ss[j].Word
		}
		return ss[i].Count > ss[j].Count
	})
}
