package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/groupsum/internal/report"
	"github.com/eugenenazirov/groupsum/internal/summer"
)

const (
	defaultFormat   = string(report.FormatLabeled)
	defaultLogLevel = "info"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	TopN     int    `yaml:"top_n"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	TopN     *int   `yaml:"top_n"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	TopN       *int
	Format     *string
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		TopN:     summer.DefaultTopN,
		Format:   defaultFormat,
		LogLevel: defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.TopN != nil {
		cfg.TopN = *yamlCfg.TopN
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
}

// applyEnvConfig applies environment variable configuration. Malformed values
// are ignored and the default kept.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv("GROUPSUM_TOP_N")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			cfg.TopN = value
		}
	}

	if format := strings.TrimSpace(os.Getenv("GROUPSUM_FORMAT")); format != "" {
		cfg.Format = format
	}

	if level := strings.TrimSpace(os.Getenv("GROUPSUM_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.TopN != nil {
		cfg.TopN = *overrides.TopN
	}
	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = *overrides.Format
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.TopN < 1 {
		return fmt.Errorf("top N must be >= 1, got %d", cfg.TopN)
	}
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
