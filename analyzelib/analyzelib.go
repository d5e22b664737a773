// Package analyzelib wires the word frequency pipeline together: clean,
// tokenize, optionally stem, filter and count.
package analyzelib

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"goWordFreq/configlib"
	"goWordFreq/filterlib"
	"goWordFreq/freqlib"
	"goWordFreq/lemmalib"
	"goWordFreq/logx"
	"goWordFreq/redislib"
	"goWordFreq/taggerlib"
	"goWordFreq/textlib"
	"goWordFreq/tokenizelib"
	"goWordFreq/wordmaplib"
)

// Analyzer counts the words of texts with a fixed tokenizer and exclusion set
type Analyzer struct {
	Tokenizer tokenizelib.Tokenizer
	Exclude   filterlib.Set
	Stem      bool

	closers []io.Closer
}

// Analyze counts the words of one raw text. Excluded words are dropped
// before stemming and again after it.
func (a *Analyzer) Analyze(text string) (*freqlib.Table, error) {
	words := freqlib.Exclude(a.Tokenizer.Tokenize(textlib.Clean(text)), a.Exclude)
	if a.Stem {
		words = freqlib.Stem(words)
	}
	table := freqlib.Tally(words, a.Exclude)
	if err := a.Tokenizer.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// Close releases the tagger model store, if any
func (a *Analyzer) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// New loads every word list and model the configuration names. Any missing
// or inconsistent resource is an error.
func New(cfg configlib.Config, logger *zap.Logger) (*Analyzer, error) {
	logger = logx.OrNop(logger)
	mode, err := tokenizelib.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	mapper, err := wordmaplib.NewFromFiles(cfg.EquivFiles...)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded word map", zap.Int("forms", mapper.Len()), zap.Strings("files", cfg.EquivFiles))

	exclude, err := filterlib.LoadExclusions(cfg.BlacklistFile, cfg.StopwordsFile)
	if err != nil {
		return nil, err
	}
	a := &Analyzer{Exclude: exclude, Stem: cfg.Stem}

	switch mode {
	case tokenizelib.ModeSimple:
		var lowercase filterlib.Set
		if cfg.LowercaseFile != "" {
			if lowercase, err = filterlib.LoadSet(cfg.LowercaseFile); err != nil {
				return nil, err
			}
		}
		a.Tokenizer = &tokenizelib.Simple{Mapper: mapper, Lowercase: lowercase, NormCaps: cfg.NormCaps}
	case tokenizelib.ModeTagged:
		tagger, closer, err := NewTagger(cfg.Tagger, logger)
		if err != nil {
			return nil, err
		}
		if closer != nil {
			a.closers = append(a.closers, closer)
		}
		lem, err := lemmalib.New()
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Tokenizer = &tokenizelib.Tagged{Tagger: tagger, Lemmatizer: lem, Mapper: mapper, FoldCase: cfg.FoldCase}
	}
	return a, nil
}

// NewTagger builds the configured tagger. The returned closer, when not
// nil, releases the model store.
func NewTagger(cfg configlib.TaggerConfig, logger *zap.Logger) (taggerlib.Tagger, io.Closer, error) {
	switch cfg.Kind {
	case "prose":
		return taggerlib.ProseTagger{}, nil, nil
	case "perceptron", "":
	default:
		return nil, nil, fmt.Errorf("unknown tagger kind %q", cfg.Kind)
	}

	var store taggerlib.Store
	var closer io.Closer
	switch cfg.Store {
	case "file", "":
		store = taggerlib.FileStore{Path: cfg.CachePath}
	case "sqlite":
		s, err := taggerlib.OpenSQLiteStore(cfg.CachePath, "perceptron")
		if err != nil {
			return nil, nil, err
		}
		store, closer = s, s
	case "redis":
		c := redislib.New(cfg.RedisAddr)
		store, closer = taggerlib.RedisStore{Client: c, Key: cfg.RedisKey}, c
	default:
		return nil, nil, fmt.Errorf("unknown tagger store %q", cfg.Store)
	}

	opts := taggerlib.TrainOptions{Iterations: cfg.Iterations, Seed: taggerlib.DefaultTrainOptions.Seed}
	tagger, err := taggerlib.LoadOrTrain(store, cfg.Corpus, opts, logger)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, err
	}
	return tagger, closer, nil
}
