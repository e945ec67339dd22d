package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/groupsum/internal/config"
	"github.com/eugenenazirov/groupsum/internal/report"
	"github.com/eugenenazirov/groupsum/internal/summer"
)

// App encapsulates the resolved settings and logger for one summarizing run.
type App struct {
	topN   int
	format report.Format
	logger *zap.Logger
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output format: %w", err)
	}
	if cfg.TopN < 1 {
		return nil, fmt.Errorf("top N must be >= 1, got %d", cfg.TopN)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		topN:   cfg.TopN,
		format: format,
		logger: logger,
	}, nil
}

// Run reads grouped integers from in and writes the summary to out. Nothing is
// written to out when the input cannot be parsed.
func (a *App) Run(in io.Reader, out io.Writer) error {
	totals, err := summer.ReadTotals(in)
	if err != nil {
		return fmt.Errorf("compute group totals: %w", err)
	}

	summary, err := summer.Summarize(totals, a.topN)
	if err != nil {
		return fmt.Errorf("summarize group totals: %w", err)
	}

	a.logger.Debug("groups summarized",
		zap.Int("groups", len(summary.Totals)),
		zap.Int64("max", summary.Max),
		zap.Int("top_n", summary.TopN),
		zap.Int64("top_sum", summary.TopSum),
	)

	return report.Write(out, a.format, summary)
}
