// Package wordmaplib collapses equivalent word forms into one canonical form.
//
// Each line of a source is an equivalence class, for example
//
//	be was is were are
//
// maps "was", "is", "were" and "are" (and "be" itself) to "be".
package wordmaplib

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"goWordFreq/iolib"
)

// DuplicateMappingError reports a word listed in more than one class
type DuplicateMappingError struct {
	Word   string
	Source string
	Line   int
}

func (e *DuplicateMappingError) Error() string {
	return fmt.Sprintf("duplicate word %q in %s:%d", e.Word, e.Source, e.Line)
}

// Source is a named equivalence-class record stream
type Source struct {
	Name string
	R    io.Reader
}

// Mapper is an immutable form -> canonical form table
type Mapper struct {
	mapping map[string]string
}

// New builds a Mapper from the sources, in order
func New(sources ...Source) (*Mapper, error) {
	m := &Mapper{mapping: make(map[string]string)}
	for _, src := range sources {
		if err := m.load(src); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewFromFiles builds a Mapper from equivalence-class files
func NewFromFiles(filenames ...string) (*Mapper, error) {
	sources := make([]Source, 0, len(filenames))
	for _, fn := range filenames {
		f, err := iolib.Open(fn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sources = append(sources, Source{Name: fn, R: f})
	}
	return New(sources...)
}

func (m *Mapper) load(src Source) error {
	scanner := bufio.NewScanner(src.R)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	numLine := 0
	for scanner.Scan() {
		numLine++
		forms := strings.Fields(scanner.Text())
		if len(forms) < 2 { // no singletons or empty lines
			continue
		}
		for _, word := range forms {
			if _, ok := m.mapping[word]; ok {
				return &DuplicateMappingError{Word: word, Source: src.Name, Line: numLine}
			}
			m.mapping[word] = forms[0]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", src.Name, err)
	}
	return nil
}

// Map returns the canonical form of word, after dropping a trailing
// possessive. Unknown words come back cleaned but otherwise unchanged.
func (m *Mapper) Map(word string) string {
	word = strings.TrimSuffix(word, "'s")
	word = strings.TrimSuffix(word, "'")
	if canon, ok := m.mapping[word]; ok {
		return canon
	}
	return word
}

// Len is the number of mapped forms
func (m *Mapper) Len() int {
	return len(m.mapping)
}
