package freqlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"goWordFreq/iolib"
)

// British National Corpus style frequency lists, e.g. all.num from
// http://www.kilgarriff.co.uk/BNClists/all.num.gz, one "total word pos docs"
// row per line. The "!!WHOLE_CORPUS" row carries the corpus size.
const wholeCorpus = "!!WHOLE_CORPUS"

// WordInfo is one row of a baseline list
type WordInfo struct {
	NumTotal   int // times the word appears on the whole corpus
	POStagging string
	NumDocs    int // number of documents the word was found on
}

// Baseline holds the word frequencies of a reference corpus
type Baseline struct {
	words map[string]WordInfo
	total int
}

// ReadBaseline parses a frequency list. Only the first row of a word is
// kept; lists are sorted by frequency so that is its most frequent tagging.
func ReadBaseline(r io.Reader) (*Baseline, error) {
	b := &Baseline{words: make(map[string]WordInfo)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	numLine := 0
	sum := 0
	for scanner.Scan() {
		numLine++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		var info WordInfo
		var word string
		if _, err := fmt.Sscanf(l, "%d %s %s %d", &info.NumTotal, &word, &info.POStagging, &info.NumDocs); err != nil {
			return nil, fmt.Errorf("baseline line %d: %w", numLine, err)
		}
		if word == wholeCorpus {
			b.total = info.NumTotal
			continue
		}
		if _, ok := b.words[word]; !ok {
			b.words[word] = info
		}
		sum += info.NumTotal
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if b.total == 0 {
		b.total = sum
	}
	return b, nil
}

// LoadBaseline reads frequency list files and merges them into the first
// one, scaling each by its ratio of "the" occurrences to the first list's
func LoadBaseline(filenames ...string) (*Baseline, error) {
	var merged *Baseline
	for _, fn := range filenames {
		f, err := iolib.Open(fn)
		if err != nil {
			return nil, err
		}
		b, err := ReadBaseline(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		if merged == nil {
			merged = b
			continue
		}
		merged.merge(b)
	}
	if merged == nil {
		return nil, fmt.Errorf("%w: no baseline files", iolib.ErrMissingResource)
	}
	return merged, nil
}

func (b *Baseline) merge(other *Baseline) {
	factor := 1.0
	if the := other.Freq("the"); the > 0 && b.Freq("the") > 0 {
		factor = float64(b.Freq("the")) / float64(the)
	}
	for word, info := range other.words {
		cur := b.words[word]
		cur.NumTotal += int(factor * float64(info.NumTotal))
		if cur.POStagging == "" {
			cur.POStagging = info.POStagging
		}
		b.words[word] = cur
	}
	b.total += int(factor * float64(other.total))
}

// Freq is the number of occurrences of token in the reference corpus
func (b *Baseline) Freq(token string) int {
	return b.words[token].NumTotal
}

// Total is the size of the reference corpus
func (b *Baseline) Total() int {
	return b.total
}

// Contrast ranks words by how far their count exceeds what the baseline
// predicts for a text of the table's size, weighted by contrast. Ordering
// follows Top.
func Contrast(t *Table, b *Baseline, contrast float64) []Entry {
	ss := make([]Entry, 0, t.Len())
	if b.Total() == 0 || t.Total() == 0 {
		return t.Top(0)
	}
	scale := float64(t.Total()) / float64(b.Total())
	for w, c := range t.counts {
		expected := contrast * float64(1+b.Freq(w)) * scale
		ss = append(ss, Entry{w, c - int(expected)})
	}
	sortEntries(ss)
	return ss
}
