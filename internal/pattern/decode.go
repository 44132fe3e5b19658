package pattern

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lifegrid/internal/metrics"
)

// ErrUnknownFormat is returned when a file name has no known pattern extension.
var ErrUnknownFormat = errors.New("unknown pattern format")

// Format identifies a pattern encoding.
type Format string

const (
	// FormatCells is the plaintext encoding.
	FormatCells Format = "cells"
	// FormatRLE is the run length encoding.
	FormatRLE Format = "rle"
)

// FormatOf returns the format implied by the extension of name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cells":
		return FormatCells, nil
	case ".rle":
		return FormatRLE, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Decode picks the decoder from the extension of name and decodes data.
func Decode(name, data string) (Pattern, Diagnostics, error) {
	format, err := FormatOf(name)
	if err != nil {
		return Pattern{}, Diagnostics{}, err
	}
	var (
		p    Pattern
		diag Diagnostics
	)
	if format == FormatRLE {
		p, diag = ParseRLEWithDiagnostics(data)
	} else {
		p = ParseCells(data)
	}
	metrics.ObservePattern(string(format), len(diag.Ignored))
	return p, diag, nil
}

// Load reads and decodes the pattern file at path.
func Load(path string) (Pattern, Diagnostics, error) {
	if _, err := FormatOf(path); err != nil {
		return Pattern{}, Diagnostics{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, Diagnostics{}, fmt.Errorf("read pattern: %w", err)
	}
	return Decode(path, string(raw))
}

// lines splits data on '\n', dropping a trailing "\r" from each line and the
// empty element after a final newline.
func lines(data string) []string {
	if data == "" {
		return nil
	}
	out := strings.Split(strings.TrimSuffix(data, "\n"), "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
