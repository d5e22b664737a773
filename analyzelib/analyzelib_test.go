package analyzelib

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"goWordFreq/configlib"
	"goWordFreq/filterlib"
	"goWordFreq/freqlib"
	"goWordFreq/iolib"
	"goWordFreq/tokenizelib"
	"goWordFreq/wordmaplib"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	a := &Analyzer{
		Tokenizer: &tokenizelib.Simple{Lowercase: filterlib.NewSet("the")},
	}
	table, err := a.Analyze("The cat sat. The cat ran.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := table.Top(1); !reflect.DeepEqual(got, []freqlib.Entry{{Word: "cat", Count: 2}}) {
		t.Errorf("Top(1) = %v, want [cat 2]", got)
	}
	if table.Count("the") != 2 || table.Count("The") != 0 {
		t.Errorf("the = %d, The = %d", table.Count("the"), table.Count("The"))
	}
}

func TestAnalyzeCleansAndStems(t *testing.T) {
	a := &Analyzer{
		Tokenizer: &tokenizelib.Simple{NormCaps: true},
		Exclude:   filterlib.EnglishStopwords(),
		Stem:      true,
	}
	table, err := a.Analyze("Cats run. See https://example.com/cats for running cats&nbspand dogs.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []freqlib.Entry{{Word: "cat", Count: 2}, {Word: "run", Count: 2}, {Word: "dog", Count: 1}, {Word: "see", Count: 1}}
	if got := table.Top(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}
}

func TestAnalyzeExcludesBeforeStemming(t *testing.T) {
	a := &Analyzer{
		Tokenizer: &tokenizelib.Simple{},
		Exclude:   filterlib.NewSet("running", "cats", "dog"),
		Stem:      true,
	}
	table, err := a.Analyze("running cats sleep. dogs sleep.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []freqlib.Entry{{Word: "sleep", Count: 2}}
	if got := table.Top(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func testConfig(t *testing.T) configlib.Config {
	t.Helper()
	dir := t.TempDir()
	return configlib.Config{
		Mode:          "simple",
		EquivFiles:    []string{writeFile(t, dir, "equivs.txt", "cat cats kitty\n")},
		LowercaseFile: writeFile(t, dir, "lowercase.txt", "the a\n"),
		BlacklistFile: writeFile(t, dir, "blacklist.txt", "sat\n"),
		FoldCase:      true,
		Tagger: configlib.TaggerConfig{
			Kind:      "perceptron",
			Corpus:    filepath.Join(dir, "treebank.txt"),
			Store:     "file",
			CachePath: filepath.Join(dir, "tagger.gob"),
		},
	}
}

func TestNewSimple(t *testing.T) {
	a, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	table, err := a.Analyze("The cats sat with a kitty. The cat purred.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []freqlib.Entry{{Word: "cat", Count: 3}, {Word: "purred", Count: 1}}
	if got := table.Top(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}
}

func TestNewErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.EquivFiles = append(cfg.EquivFiles, writeFile(t, t.TempDir(), "dup.txt", "kitty kitten\n"))
	var dup *wordmaplib.DuplicateMappingError
	if _, err := New(cfg, nil); !errors.As(err, &dup) || dup.Word != "kitty" {
		t.Errorf("duplicate word: err = %v", err)
	}

	cfg = testConfig(t)
	cfg.BlacklistFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := New(cfg, nil); !errors.Is(err, iolib.ErrMissingResource) {
		t.Errorf("missing blacklist: err = %v", err)
	}

	cfg = testConfig(t)
	cfg.Mode = "tagged"
	if _, err := New(cfg, nil); err == nil {
		t.Error("tagged mode without corpus or cache succeeded")
	}

	cfg = testConfig(t)
	cfg.Mode = "bogus"
	if _, err := New(cfg, nil); err == nil {
		t.Error("bogus mode accepted")
	}
}

func TestNewTaggedProse(t *testing.T) {
	cfg := testConfig(t)
	cfg.Mode = "tagged"
	cfg.Tagger.Kind = "prose"
	a, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	table, err := a.Analyze("The cats are sleeping. The kitty sleeps.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if table.Count("cat") != 2 {
		t.Errorf("cat = %d, top = %v", table.Count("cat"), table.Top(0))
	}
	if table.Count("the") != 0 {
		t.Error("determiners should be dropped in tagged mode")
	}
}

func TestNewTaggerUnknown(t *testing.T) {
	if _, _, err := NewTagger(configlib.TaggerConfig{Kind: "hmm"}, nil); err == nil {
		t.Error("unknown tagger kind accepted")
	}
	if _, _, err := NewTagger(configlib.TaggerConfig{Kind: "perceptron", Store: "tape"}, nil); err == nil {
		t.Error("unknown store accepted")
	}
}
