package stringlib

import (
	"reflect"
	"testing"
)

func TestIsDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"33", true},
		{"0", true},
		{"", false},
		{"P99", false},
		{"3.5", false},
		{"-1", false},
	}
	for _, tt := range tests {
		if got := IsDigits(tt.in); got != tt.want {
			t.Errorf("IsDigits(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOnlyLetters(t *testing.T) {
	if got := OnlyLetters(`"I,`); got != "I" {
		t.Errorf("OnlyLetters = %q, want %q", got, "I")
	}
}

func TestTrimChars(t *testing.T) {
	got := TrimChars([]string{`"Hello,`, "world!", `'`, "it's"}, `,.'"?!`)
	want := []string{"Hello", "world", "it's"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimChars = %v, want %v", got, want)
	}
}
