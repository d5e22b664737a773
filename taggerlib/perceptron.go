package taggerlib

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"unicode"
)

const (
	start1 = "-START-"
	start2 = "-START2-"
	end1   = "-END-"
	end2   = "-END2-"

	// words seen at least this often with one dominant tag skip prediction
	tagDictMinFreq   = 20
	tagDictAmbiguity = 0.97
)

// Model is the trained, serializable state of a PerceptronTagger
type Model struct {
	Weights map[string]map[string]float64
	Classes []string
	TagDict map[string]string
}

// TrainOptions tune perceptron training
type TrainOptions struct {
	Iterations int
	Seed       int64
}

// DefaultTrainOptions are used when LoadOrTrain gets a zero TrainOptions
var DefaultTrainOptions = TrainOptions{Iterations: 5, Seed: 1}

// PerceptronTagger is a greedy averaged perceptron part-of-speech tagger
type PerceptronTagger struct {
	model Model
}

// NewPerceptronTagger wraps a trained model
func NewPerceptronTagger(m Model) *PerceptronTagger {
	return &PerceptronTagger{model: m}
}

// Model exposes the trained state, for caching
func (t *PerceptronTagger) Model() Model {
	return t.model
}

// Tag assigns a tag to every word, in order
func (t *PerceptronTagger) Tag(words []string) ([]TaggedToken, error) {
	out := make([]TaggedToken, len(words))
	ctx := contextOf(words)
	prev, prev2 := start1, start2
	for i, w := range words {
		tag, ok := t.model.TagDict[w]
		if !ok {
			tag = t.predict(features(i, w, ctx, prev, prev2))
		}
		out[i] = TaggedToken{Text: w, Tag: tag}
		prev2, prev = prev, tag
	}
	return out, nil
}

func (t *PerceptronTagger) predict(feats []string) string {
	scores := make(map[string]float64, len(t.model.Classes))
	for _, f := range feats {
		for class, w := range t.model.Weights[f] {
			scores[class] += w
		}
	}
	best, bestScore := "", math.Inf(-1)
	for _, class := range t.model.Classes {
		if s := scores[class]; s > bestScore {
			best, bestScore = class, s
		}
	}
	return best
}

type param struct {
	feat, class string
}

type trainer struct {
	*PerceptronTagger
	totals  map[param]float64
	tstamps map[param]int
	i       int
}

// Train fits a tagger on tagged sentences. Training is deterministic for a
// fixed corpus and options.
func Train(sents [][]TaggedToken, opts TrainOptions) *PerceptronTagger {
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultTrainOptions.Iterations
	}
	tr := &trainer{
		PerceptronTagger: &PerceptronTagger{model: Model{
			Weights: make(map[string]map[string]float64),
		}},
		totals:  make(map[param]float64),
		tstamps: make(map[param]int),
	}
	tr.makeTagDict(sents)

	order := make([]int, len(sents))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	for iter := 0; iter < opts.Iterations; iter++ {
		for _, si := range order {
			sent := sents[si]
			words := make([]string, len(sent))
			for i, tok := range sent {
				words[i] = tok.Text
			}
			ctx := contextOf(words)
			prev, prev2 := start1, start2
			for i, tok := range sent {
				guess, ok := tr.model.TagDict[tok.Text]
				if !ok {
					feats := features(i, tok.Text, ctx, prev, prev2)
					guess = tr.predict(feats)
					tr.update(tok.Tag, guess, feats)
				}
				prev2, prev = prev, guess
			}
		}
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	tr.average()
	return tr.PerceptronTagger
}

func (tr *trainer) makeTagDict(sents [][]TaggedToken) {
	counts := make(map[string]map[string]int)
	classes := make(map[string]struct{})
	for _, sent := range sents {
		for _, tok := range sent {
			if counts[tok.Text] == nil {
				counts[tok.Text] = make(map[string]int)
			}
			counts[tok.Text][tok.Tag]++
			classes[tok.Tag] = struct{}{}
		}
	}
	tr.model.TagDict = make(map[string]string)
	for word, tags := range counts {
		n, mode, modeN := 0, "", 0
		for tag, c := range tags {
			n += c
			if c > modeN || (c == modeN && tag < mode) {
				mode, modeN = tag, c
			}
		}
		if n >= tagDictMinFreq && float64(modeN)/float64(n) >= tagDictAmbiguity {
			tr.model.TagDict[word] = mode
		}
	}
	for c := range classes {
		tr.model.Classes = append(tr.model.Classes, c)
	}
	sort.Strings(tr.model.Classes)
}

func (tr *trainer) update(truth, guess string, feats []string) {
	tr.i++
	if truth == guess {
		return
	}
	for _, f := range feats {
		tr.upd(f, truth, 1)
		tr.upd(f, guess, -1)
	}
}

func (tr *trainer) upd(feat, class string, v float64) {
	ws := tr.model.Weights[feat]
	if ws == nil {
		ws = make(map[string]float64)
		tr.model.Weights[feat] = ws
	}
	p := param{feat, class}
	w := ws[class]
	tr.totals[p] += float64(tr.i-tr.tstamps[p]) * w
	tr.tstamps[p] = tr.i
	ws[class] = w + v
}

func (tr *trainer) average() {
	if tr.i == 0 {
		return
	}
	for feat, ws := range tr.model.Weights {
		avg := make(map[string]float64, len(ws))
		for class, w := range ws {
			p := param{feat, class}
			total := tr.totals[p] + float64(tr.i-tr.tstamps[p])*w
			if a := math.Round(total/float64(tr.i)*1000) / 1000; a != 0 {
				avg[class] = a
			}
		}
		if len(avg) == 0 {
			delete(tr.model.Weights, feat)
			continue
		}
		tr.model.Weights[feat] = avg
	}
}

func contextOf(words []string) []string {
	ctx := make([]string, 0, len(words)+4)
	ctx = append(ctx, start1, start2)
	for _, w := range words {
		ctx = append(ctx, normalize(w))
	}
	return append(ctx, end1, end2)
}

func normalize(word string) string {
	switch {
	case strings.Contains(word, "-") && !strings.HasPrefix(word, "-"):
		return "!HYPHEN"
	case len(word) == 4 && isDigits(word):
		return "!YEAR"
	case word != "" && unicode.IsDigit(rune(word[0])):
		return "!DIGITS"
	}
	return strings.ToLower(word)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func suffix(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[len(r)-3:]
	}
	return string(r)
}

func prefix(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func features(i int, word string, ctx []string, prev, prev2 string) []string {
	i += 2
	return []string{
		"bias",
		"i suffix " + suffix(word),
		"i pref1 " + prefix(word),
		"i-1 tag " + prev,
		"i-2 tag " + prev2,
		"i tag+i-2 tag " + prev + " " + prev2,
		"i word " + ctx[i],
		"i-1 tag+i word " + prev + " " + ctx[i],
		"i-1 word " + ctx[i-1],
		"i-1 suffix " + suffix(ctx[i-1]),
		"i-2 word " + ctx[i-2],
		"i+1 word " + ctx[i+1],
		"i+1 suffix " + suffix(ctx[i+1]),
		"i+2 word " + ctx[i+2],
	}
}
