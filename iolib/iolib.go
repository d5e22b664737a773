// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrMissingResource is returned when a required source file is absent
var ErrMissingResource = errors.New("missing resource")

// ErrDecoding is returned when input text is not valid UTF-8
var ErrDecoding = errors.New("input is not valid UTF-8")

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CopyFileContents copies the contents of the file named src to the file named
// by dst. The file will be created if it does not already exist. If the
// destination file exists, all it's contents will be replaced by the contents
// of the source file.
func CopyFileContents(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return
	}
	err = out.Sync()
	return
}

// Bytes2file saves data into a file, creating its directory when needed
func Bytes2file(data []byte, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, data, 0644)
}

// Open opens a required source, reporting ErrMissingResource when absent
func Open(filename string) (*os.File, error) {
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMissingResource, filename)
	}
	return f, err
}

// File2bytes reads a required source file
func File2bytes(filename string) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMissingResource, filename)
	}
	return b, err
}

// File2string reads a required UTF-8 text file into a string
func File2string(filename string) (string, error) {
	b, err := File2bytes(filename)
	if err != nil {
		return "", err
	}
	return Decode(b, filename)
}

// Decode checks b is valid UTF-8 and returns it as a string
func Decode(b []byte, name string) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", name, ErrDecoding)
	}
	return string(b), nil
}

// Reader2string reads r fully as UTF-8 text
func Reader2string(r io.Reader, name string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Decode(b, name)
}

// File2words reads a whitespace-separated word list
func File2words(filename string) ([]string, error) {
	text, err := File2string(filename)
	if err != nil {
		return nil, err
	}
	return strings.Fields(text), nil
}
