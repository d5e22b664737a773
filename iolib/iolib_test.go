package iolib

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFile2wordsMissing(t *testing.T) {
	_, err := File2words(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("File2words error = %v, want ErrMissingResource", err)
	}
}

func TestFile2words(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(fn, []byte("the  a\nof\tand\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := File2words(fn)
	if err != nil {
		t.Fatalf("File2words: %v", err)
	}
	want := []string{"the", "a", "of", "and"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("File2words = %v, want %v", got, want)
	}
}

func TestFile2stringInvalidUTF8(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(fn, []byte{'o', 'k', 0xff, 0xfe}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := File2string(fn); !errors.Is(err, ErrDecoding) {
		t.Fatalf("File2string error = %v, want ErrDecoding", err)
	}
}

func TestBytes2fileAndCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sub", "a.dat")
	if err := Bytes2file([]byte("payload"), src); err != nil {
		t.Fatalf("Bytes2file: %v", err)
	}
	if !FileExists(src) {
		t.Fatal("FileExists = false after Bytes2file")
	}
	if FileExists(filepath.Join(dir, "sub")) {
		t.Error("FileExists reports a directory as a file")
	}
	dst := filepath.Join(dir, "a.backup")
	if err := CopyFileContents(src, dst); err != nil {
		t.Fatalf("CopyFileContents: %v", err)
	}
	b, err := File2bytes(dst)
	if err != nil || string(b) != "payload" {
		t.Errorf("copy = %q, %v", b, err)
	}
}
