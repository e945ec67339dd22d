package application

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eugenenazirov/groupsum/internal/config"
	"github.com/eugenenazirov/groupsum/internal/report"
	"github.com/eugenenazirov/groupsum/internal/summer"
)

func baseTestConfig(format report.Format) config.Config {
	return config.Config{
		TopN:     summer.DefaultTopN,
		Format:   string(format),
		LogLevel: "debug",
	}
}

func TestRunLabeled(t *testing.T) {
	app, err := New(baseTestConfig(report.FormatLabeled), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	if err := app.Run(strings.NewReader("3\n4\n\n5\n\n"), &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := "Max: 7\nTop 3: 12\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestRunMax(t *testing.T) {
	app, err := New(baseTestConfig(report.FormatMax), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	input := "1000\n2000\n3000\n\n4000\n\n5000\n6000\n"
	if err := app.Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := "11000\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestRunEmptyInput(t *testing.T) {
	app, err := New(baseTestConfig(report.FormatLabeled), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	if err := app.Run(strings.NewReader(""), &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := "Max: 0\nTop 3: 0\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestRunParseErrorWritesNothing(t *testing.T) {
	app, err := New(baseTestConfig(report.FormatLabeled), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	err = app.Run(strings.NewReader("3\nabc\n"), &out)

	var parseErr *summer.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *summer.ParseError, got %v", err)
	}
	if parseErr.Line != 2 {
		t.Fatalf("expected failure on line 2, got %d", parseErr.Line)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunLogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app, err := New(baseTestConfig(report.FormatMax), zap.New(core))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	if err := app.Run(strings.NewReader("1\n\n2\n\n3\n\n4"), &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	entries := logs.FilterMessage("groups summarized").All()
	if len(entries) != 1 {
		t.Fatalf("expected one summary log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["groups"] != int64(4) || fields["top_sum"] != int64(9) {
		t.Fatalf("unexpected log fields: %v", fields)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := baseTestConfig("csv")
	if _, err := New(cfg, zaptest.NewLogger(t)); !errors.Is(err, report.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}

	cfg = baseTestConfig(report.FormatMax)
	cfg.TopN = 0
	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for top N of zero")
	}
}
