package freqlib

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats understood by Write
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Write renders entries to w. The text format prints "word :: count" lines.
func Write(w io.Writer, entries []Entry, format string) error {
	switch format {
	case FormatText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s :: %d\n", e.Word, e.Count); err != nil {
				return err
			}
		}
		return nil
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"word", "count"}); err != nil {
			return err
		}
		for _, e := range entries {
			if err := cw.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatYAML:
		out, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
