package main

import (
	"bytes"
	"testing"

	"goWordFreq/configlib"
)

func TestReport(t *testing.T) {
	cfg := configlib.Config{Mode: "simple", Format: "text", NumWords: 2, NormCaps: true}
	var buf bytes.Buffer
	if err := report(cfg, "The cat sat. The cat ran. A dog ran.", &buf, nil); err != nil {
		t.Fatalf("report: %v", err)
	}
	if want := "cat :: 2\nran :: 2\n"; buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}

func TestReportBadFormat(t *testing.T) {
	cfg := configlib.Config{Mode: "simple", Format: "xml"}
	if err := report(cfg, "cat", &bytes.Buffer{}, nil); err == nil {
		t.Error("unknown format accepted")
	}
}
