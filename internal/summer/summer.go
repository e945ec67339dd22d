package summer

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// accumulator folds input lines into group totals.
type accumulator struct {
	line    int
	current int64
	totals  []int64
}

func (a *accumulator) feed(raw string) error {
	a.line++
	text := strings.TrimSpace(raw)
	if text == "" {
		a.totals = append(a.totals, a.current)
		a.current = 0
		return nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return &ParseError{Line: a.line, Text: text, Err: err}
	}
	a.current += value
	return nil
}

// finish flushes the trailing group, even when it is empty.
func (a *accumulator) finish() []int64 {
	return append(a.totals, a.current)
}

// ComputeTotals sums each blank-line separated group of lines. The result always
// holds one more element than there are blank lines.
func ComputeTotals(lines []string) ([]int64, error) {
	var acc accumulator
	for _, line := range lines {
		if err := acc.feed(line); err != nil {
			return nil, err
		}
	}
	return acc.finish(), nil
}

// ReadTotals is ComputeTotals over the lines of r.
func ReadTotals(r io.Reader) ([]int64, error) {
	var acc accumulator
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := acc.feed(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return acc.finish(), nil
}

// MaxTotal returns the largest group total.
func MaxTotal(totals []int64) (int64, error) {
	if len(totals) == 0 {
		return 0, ErrNoTotals
	}
	return slices.Max(totals), nil
}

// TopNSum returns the sum of the n largest totals, or of all totals when there
// are fewer than n. Equal totals are counted separately.
func TopNSum(totals []int64, n int) int64 {
	if n <= 0 {
		return 0
	}
	sorted := slices.Clone(totals)
	slices.Sort(sorted)
	if n < len(sorted) {
		sorted = sorted[len(sorted)-n:]
	}

	var sum int64
	for _, total := range sorted {
		sum += total
	}
	return sum
}

// Summarize computes both reductions for totals.
func Summarize(totals []int64, n int) (Summary, error) {
	maxTotal, err := MaxTotal(totals)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Totals: totals,
		Max:    maxTotal,
		TopN:   n,
		TopSum: TopNSum(totals, n),
	}, nil
}
