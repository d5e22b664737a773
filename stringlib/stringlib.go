// Package stringlib provides string functions beyond goLang primitives
package stringlib

import "strings"

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// IsDigits tells whether input is made of ASCII digits only
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// OnlyLetters keeps the ASCII letters of s
func OnlyLetters(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// TrimChars strips any of cutset from both ends of every word and drops the
// words left empty
func TrimChars(words []string, cutset string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, cutset)
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
