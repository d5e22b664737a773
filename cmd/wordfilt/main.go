// wordfilt prepares a text for word frequency analysis: it drops URLs and
// stray entities, then prints one case-normalized sentence per line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"goWordFreq/iolib"
	"goWordFreq/textlib"
	"goWordFreq/tokenizelib"
)

func main() {
	app := &cli.App{
		Name:      "wordfilt",
		Usage:     "clean a text and normalize its capitalization",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: wordfilt <file>", 2)
			}
			text, err := iolib.File2string(c.Args().First())
			if err != nil {
				return err
			}
			out, err := filter(text)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func filter(text string) (string, error) {
	sents, err := tokenizelib.Sentences(textlib.Clean(text))
	if err != nil {
		return "", err
	}
	for i, s := range sents {
		sents[i] = textlib.NormCapitalization(s)
	}
	return strings.Join(sents, "\n"), nil
}
