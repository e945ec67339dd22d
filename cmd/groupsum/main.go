package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/groupsum/internal/application"
	"github.com/eugenenazirov/groupsum/internal/config"
	"github.com/eugenenazirov/groupsum/internal/logging"
)

func main() {
	overrides, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "")

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("failed to summarize input", zap.Error(err))
	}
}

func parseFlags(args []string) (*config.CLIOverrides, error) {
	kingpinApp := kingpin.New("groupsum", "Group Summer - sums blank-line separated groups of integers read from stdin")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	topFlag := kingpinApp.Flag("top", "Number of largest group totals to add up (must be >= 1)").Default("-1").Int()
	formatFlag := kingpinApp.Flag("format", "Output format: labeled (Max and Top N) or max (bare maximum)").HintOptions("labeled", "max").String()
	logLevelFlag := kingpinApp.Flag("log-level", "Log level for diagnostics written to stderr").HintOptions("debug", "info", "warn", "error").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return nil, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *topFlag >= 0 {
		overrides.TopN = topFlag
	}

	if *formatFlag != "" {
		overrides.Format = formatFlag
	}

	if *logLevelFlag != "" {
		overrides.LogLevel = logLevelFlag
	}

	return overrides, nil
}

func run(cfg config.Config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	app, err := application.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(in, out)
}
