package taggerlib

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goWordFreq/iolib"
	"goWordFreq/logx"
)

// ErrTaggerUnavailable means there is neither a cached model nor a corpus to
// train one from
var ErrTaggerUnavailable = errors.New("tagger unavailable: no cached model and no training corpus")

// ErrCacheMiss is returned by a Store holding no model
var ErrCacheMiss = errors.New("no cached model")

// cacheFormat is bumped whenever Model or the feature set changes shape
const cacheFormat = "perceptron/1"

// Store persists one serialized model
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type cacheEntry struct {
	Format      string
	Fingerprint string
	Model       Model
}

// Fingerprint identifies a corpus together with the options it is trained
// with; a cached model is only reused for the same fingerprint.
func Fingerprint(corpus []byte, opts TrainOptions) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s iterations=%d seed=%d\n", cacheFormat, opts.Iterations, opts.Seed)
	h.Write(corpus)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// LoadOrTrain returns the cached tagger when it was trained on the corpus at
// corpusPath, and otherwise trains a new one and saves it to store. When the
// corpus is absent any decodable cached model is used.
func LoadOrTrain(store Store, corpusPath string, opts TrainOptions, logger *zap.Logger) (*PerceptronTagger, error) {
	logger = logx.OrNop(logger)
	if opts.Iterations <= 0 {
		opts = DefaultTrainOptions
	}

	corpus, err := iolib.File2bytes(corpusPath)
	haveCorpus := err == nil
	if err != nil && !errors.Is(err, iolib.ErrMissingResource) {
		return nil, fmt.Errorf("reading tagged corpus: %w", err)
	}
	var fp string
	if haveCorpus {
		fp = Fingerprint(corpus, opts)
	}

	if entry, ok := loadEntry(store, logger); ok {
		if !haveCorpus || entry.Fingerprint == fp {
			logger.Debug("using cached tagger model", zap.Int("features", len(entry.Model.Weights)))
			return NewPerceptronTagger(entry.Model), nil
		}
		logger.Info("cached tagger model is stale, retraining")
	}
	if !haveCorpus {
		return nil, fmt.Errorf("%w (corpus %s)", ErrTaggerUnavailable, corpusPath)
	}

	sents, err := ReadCorpus(bytes.NewReader(corpus))
	if err != nil {
		return nil, fmt.Errorf("parsing tagged corpus %s: %w", corpusPath, err)
	}
	if len(sents) == 0 {
		return nil, fmt.Errorf("%w (corpus %s is empty)", ErrTaggerUnavailable, corpusPath)
	}
	logger.Info("training tagger", zap.Int("sentences", len(sents)), zap.Int("iterations", opts.Iterations))
	tagger := Train(sents, opts)

	var buf bytes.Buffer
	entry := cacheEntry{Format: cacheFormat, Fingerprint: fp, Model: tagger.Model()}
	if err := gob.NewEncoder(&buf).Encode(&entry); err != nil {
		return nil, fmt.Errorf("encoding tagger model: %w", err)
	}
	if err := store.Save(buf.Bytes()); err != nil {
		logger.Warn("could not cache tagger model", zap.Error(err))
	}
	return tagger, nil
}

func loadEntry(store Store, logger *zap.Logger) (cacheEntry, bool) {
	var entry cacheEntry
	data, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn("could not read cached tagger model", zap.Error(err))
		}
		return entry, false
	}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
		logger.Warn("ignoring undecodable tagger cache", zap.Error(err))
		return entry, false
	}
	if entry.Format != cacheFormat {
		logger.Info("ignoring tagger cache of another format", zap.String("format", entry.Format))
		return entry, false
	}
	return entry, true
}
