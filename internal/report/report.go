// Package report renders group summaries to the output stream.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eugenenazirov/groupsum/internal/summer"
)

// Format selects how a summary is printed.
type Format string

const (
	// FormatMax prints only the maximum group total as a bare number.
	FormatMax Format = "max"
	// FormatLabeled prints "Max: <n>" followed by "Top <N>: <n>".
	FormatLabeled Format = "labeled"
)

// ErrUnknownFormat is returned for format names other than max and labeled.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat resolves a format name, ignoring case and surrounding whitespace.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatMax, FormatLabeled:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (want %q or %q)", ErrUnknownFormat, raw, FormatMax, FormatLabeled)
	}
}

// Write prints s to w in the given format.
func Write(w io.Writer, format Format, s summer.Summary) error {
	var err error
	switch format {
	case FormatMax:
		_, err = fmt.Fprintf(w, "%d\n", s.Max)
	case FormatLabeled:
		_, err = fmt.Fprintf(w, "Max: %d\nTop %d: %d\n", s.Max, s.TopN, s.TopSum)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
