// Package configlib loads the wordfreq YAML configuration with viper
package configlib

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the run configuration. Every key can also come from a
// WORDFREQ_* environment variable, e.g. WORDFREQ_TAGGER_CORPUS.
type Config struct {
	Mode     string `mapstructure:"mode"`
	NumWords int    `mapstructure:"num_words"`
	Format   string `mapstructure:"format"`
	FoldCase bool   `mapstructure:"fold_case"`
	NormCaps bool   `mapstructure:"norm_caps"`
	Stem     bool   `mapstructure:"stem"`

	EquivFiles    []string `mapstructure:"equiv_files"`
	LowercaseFile string   `mapstructure:"lowercase_file"`
	BlacklistFile string   `mapstructure:"blacklist_file"`
	StopwordsFile string   `mapstructure:"stopwords_file"`

	BaselineFiles []string `mapstructure:"baseline_files"`
	Contrast      float64  `mapstructure:"contrast"`

	Tagger TaggerConfig `mapstructure:"tagger"`
	Reddit RedditConfig `mapstructure:"reddit"`
}

// TaggerConfig selects and caches the part-of-speech tagger
type TaggerConfig struct {
	Kind       string `mapstructure:"kind"` // perceptron or prose
	Corpus     string `mapstructure:"corpus"`
	Iterations int    `mapstructure:"iterations"`
	Store      string `mapstructure:"store"` // file, sqlite or redis
	CachePath  string `mapstructure:"cache_path"`
	RedisAddr  string `mapstructure:"redis_addr"`
	RedisKey   string `mapstructure:"redis_key"`
}

// RedditConfig tunes the comment scraper
type RedditConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheFile string        `mapstructure:"cache_file"`
	ProxyHost string        `mapstructure:"proxy_host"`
	ProxyUser string        `mapstructure:"proxy_user"`
	ProxyPass string        `mapstructure:"proxy_pass"`
	// Language is an ISO 639-1 code; comments detected as another language
	// are dropped. Empty keeps everything.
	Language  string        `mapstructure:"language"`
	PlainText bool          `mapstructure:"plain_text"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "simple")
	v.SetDefault("num_words", 25)
	v.SetDefault("format", "text")
	v.SetDefault("fold_case", true)
	v.SetDefault("norm_caps", true)
	v.SetDefault("stem", false)
	v.SetDefault("equiv_files", []string{"equivs.txt", "hard_lowercase.txt"})
	v.SetDefault("lowercase_file", "lowercase.txt")
	v.SetDefault("blacklist_file", "blacklist.txt")
	v.SetDefault("stopwords_file", "")
	v.SetDefault("baseline_files", []string{})
	v.SetDefault("contrast", 20.0)

	v.SetDefault("tagger.kind", "perceptron")
	v.SetDefault("tagger.corpus", "treebank.txt")
	v.SetDefault("tagger.iterations", 5)
	v.SetDefault("tagger.store", "file")
	v.SetDefault("tagger.cache_path", "./cache/tagger.gob")
	v.SetDefault("tagger.redis_addr", "localhost:6379")
	v.SetDefault("tagger.redis_key", "wordfreq:tagger")

	v.SetDefault("reddit.base_url", "https://www.reddit.com")
	v.SetDefault("reddit.user_agent", "I thought what I'd do was I'd scrape some Reddit comments.")
	v.SetDefault("reddit.timeout", 30*time.Second)
	v.SetDefault("reddit.cache_file", "./cache/reddit.dat")
	v.SetDefault("reddit.language", "")
	v.SetDefault("reddit.plain_text", false)
}

// Load reads the configuration. With an empty path, "wordfreq.yaml" is
// looked up in the working directory and may be absent; an explicit path
// must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("WORDFREQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wordfreq") // name of config file (without extension)
		v.AddConfigPath(".")        // look for config in the working directory
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
