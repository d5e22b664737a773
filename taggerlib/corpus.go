// Package taggerlib tags words with their part of speech. Taggers are trained
// on a reference corpus and the trained model is cached in a Store, keyed by
// the corpus fingerprint.
package taggerlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TaggedToken is a word paired with its Penn Treebank tag
type TaggedToken struct {
	Text string
	Tag  string
}

// ReadCorpus parses a reference tagged corpus: one sentence per line made of
// whitespace-separated word/TAG pairs. Blank lines and lines starting with #
// are skipped. The tag is whatever follows the last slash, so words such as
// 1/2/CD keep their inner slashes.
func ReadCorpus(r io.Reader) ([][]TaggedToken, error) {
	var sents [][]TaggedToken
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	numLine := 0
	for scanner.Scan() {
		numLine++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		sent := make([]TaggedToken, 0, len(fields))
		for _, f := range fields {
			i := strings.LastIndexByte(f, '/')
			if i <= 0 || i == len(f)-1 {
				return nil, fmt.Errorf("corpus line %d: malformed token %q", numLine, f)
			}
			sent = append(sent, TaggedToken{Text: f[:i], Tag: f[i+1:]})
		}
		sents = append(sents, sent)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sents, nil
}
