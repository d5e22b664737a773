package langlib

import "testing"

func TestFilter(t *testing.T) {
	f, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		text string
		keep bool
	}{
		{"I went to the store yesterday and bought some bread and milk for the week.", true},
		{"Ich bin gestern in den Laden gegangen und habe Brot und Milch gekauft.", false},
		{"Je suis allé au magasin hier et j'ai acheté du pain et du lait.", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := f.Keep(tt.text); got != tt.keep {
			t.Errorf("Keep(%q) = %v, want %v", tt.text, got, tt.keep)
		}
	}
}

func TestNewUnsupported(t *testing.T) {
	for _, code := range []string{"xx", "ja"} {
		if _, err := New(code); err == nil {
			t.Errorf("New(%q) succeeded", code)
		}
	}
}
