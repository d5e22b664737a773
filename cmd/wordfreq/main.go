// wordfreq prints the most frequent words of a text
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"goWordFreq/analyzelib"
	"goWordFreq/configlib"
	"goWordFreq/freqlib"
	"goWordFreq/iolib"
	"goWordFreq/logx"
)

func main() {
	app := &cli.App{
		Name:      "wordfreq",
		Usage:     "count the words of a text, most frequent first",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration file (default ./wordfreq.yaml)"},
			&cli.IntFlag{Name: "num", Aliases: []string{"n"}, Usage: "number of words to print, 0 for all"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "tokenizer: simple or tagged"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: text, csv or yaml"},
			&cli.BoolFlag{Name: "stem", Usage: "reduce words to their snowball stems"},
			&cli.StringSliceFlag{Name: "baseline", Usage: "rank against a reference corpus frequency list"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Action: wordfreqAction,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func wordfreqAction(c *cli.Context) error {
	logger, err := logx.New(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := configlib.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("num") {
		cfg.NumWords = c.Int("num")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("stem") {
		cfg.Stem = c.Bool("stem")
	}
	if c.IsSet("baseline") {
		cfg.BaselineFiles = c.StringSlice("baseline")
	}

	var text string
	if fn := c.Args().First(); fn != "" && fn != "-" {
		text, err = iolib.File2string(fn)
	} else {
		text, err = iolib.Reader2string(os.Stdin, "stdin")
	}
	if err != nil {
		return err
	}
	return report(cfg, text, os.Stdout, logger)
}

// report analyzes text and writes the ranked words to w
func report(cfg configlib.Config, text string, w io.Writer, logger *zap.Logger) error {
	logger = logx.OrNop(logger)
	a, err := analyzelib.New(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	table, err := a.Analyze(text)
	if err != nil {
		return err
	}
	logger.Debug("counted words", zap.Int("distinct", table.Len()), zap.Int("total", table.Total()))

	entries := table.Top(cfg.NumWords)
	if len(cfg.BaselineFiles) > 0 {
		baseline, err := freqlib.LoadBaseline(cfg.BaselineFiles...)
		if err != nil {
			return err
		}
		entries = freqlib.Contrast(table, baseline, cfg.Contrast)
		if cfg.NumWords > 0 && cfg.NumWords < len(entries) {
			entries = entries[:cfg.NumWords]
		}
	}
	return freqlib.Write(w, entries, cfg.Format)
}
