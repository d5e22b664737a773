// getcomments scrapes comment text from a Reddit user or subreddit and
// prints it, one comment per paragraph.
package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"goWordFreq/configlib"
	"goWordFreq/langlib"
	"goWordFreq/logx"
	"goWordFreq/redditlib"
)

const version = "getcomments v0.3"

func main() {
	app := &cli.App{
		Name:    "getcomments",
		Usage:   "scrape comment text from reddit",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration file (default ./wordfreq.yaml)"},
			&cli.StringFlag{Name: "lang", Usage: "keep only comments in this ISO 639-1 language"},
			&cli.BoolFlag{Name: "plain", Usage: "render comment html as plain text instead of printing markdown"},
			&cli.BoolFlag{Name: "verbose", Usage: "debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "user",
				Usage:     "newest comments of a user",
				ArgsUsage: "<username>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "num", Aliases: []string{"n"}, Required: true, Usage: "number of comments"},
				},
				Action: userAction,
			},
			{
				Name:      "subreddit",
				Usage:     "every comment of the first submissions of a subreddit",
				ArgsUsage: "<subreddit_name>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "num", Aliases: []string{"n"}, Required: true, Usage: "number of submissions"},
					&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Value: "hot", Usage: "hot, top_all, top_year, top_month, top_week, top_day or top_hour"},
				},
				Action: subredditAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// scraper holds what both commands share
type scraper struct {
	client *redditlib.Client
	filter *langlib.Filter
	plain  bool
	log    *zap.Logger
}

func newScraper(c *cli.Context) (*scraper, error) {
	if c.NArg() != 1 {
		return nil, cli.Exit(fmt.Sprintf("usage: getcomments %s %s", c.Command.Name, c.Command.ArgsUsage), 2)
	}
	logger, err := logx.New(c.Bool("verbose"))
	if err != nil {
		return nil, err
	}
	cfg, err := configlib.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("lang") {
		cfg.Reddit.Language = c.String("lang")
	}
	if c.IsSet("plain") {
		cfg.Reddit.PlainText = c.Bool("plain")
	}

	s := &scraper{plain: cfg.Reddit.PlainText, log: logger}
	if cfg.Reddit.Language != "" {
		if s.filter, err = langlib.New(cfg.Reddit.Language); err != nil {
			return nil, err
		}
	}
	s.client, err = redditlib.New(redditlib.Options{
		BaseURL:   cfg.Reddit.BaseURL,
		UserAgent: cfg.Reddit.UserAgent,
		Timeout:   cfg.Reddit.Timeout,
		CacheFile: cfg.Reddit.CacheFile,
		ProxyHost: cfg.Reddit.ProxyHost,
		ProxyUser: cfg.Reddit.ProxyUser,
		ProxyPass: cfg.Reddit.ProxyPass,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// finish persists the response cache; a failure there only loses the cache
func (s *scraper) finish() {
	if err := s.client.SaveCache(); err != nil {
		s.log.Warn("could not save response cache", zap.Error(err))
	}
	_ = s.log.Sync()
}

func userAction(c *cli.Context) error {
	s, err := newScraper(c)
	if err != nil {
		return err
	}
	defer s.finish()
	comments := s.client.UserComments(contextOf(c), c.Args().First(), c.Int("num"))
	_, err = s.emit(os.Stdout, comments)
	return err
}

func subredditAction(c *cli.Context) error {
	sort, err := redditlib.ParseSort(c.String("sort"))
	if err != nil {
		return err
	}
	s, err := newScraper(c)
	if err != nil {
		return err
	}
	defer s.finish()
	comments := s.client.SubredditComments(contextOf(c), c.Args().First(), sort, c.Int("num"), progress(os.Stderr))
	_, err = s.emit(os.Stdout, comments)
	return err
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

// progress returns a callback drawing the completed percentage on w
func progress(w io.Writer) func(float64) {
	return func(level float64) {
		fmt.Fprintf(w, "\r%.2f%%", 100*level)
		if level >= 1 {
			fmt.Fprintln(w)
		}
	}
}

// emit prints every kept comment followed by a blank line and returns how
// many were printed
func (s *scraper) emit(w io.Writer, comments iter.Seq2[redditlib.Comment, error]) (int, error) {
	n := 0
	for cm, err := range comments {
		if err != nil {
			return n, err
		}
		text := cm.Body
		if s.plain {
			if text, err = cm.PlainText(); err != nil {
				s.log.Warn("could not render comment html", zap.String("id", cm.ID), zap.Error(err))
				text = cm.Body
			}
		}
		if s.filter != nil && !s.filter.Keep(text) {
			s.log.Debug("dropped comment in another language", zap.String("id", cm.ID))
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", text); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
