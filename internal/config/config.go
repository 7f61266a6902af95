package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all toxotype configuration.
type Config struct {
	// RulePath is the toxinotype rule table (tab-delimited).
	RulePath string `yaml:"rules"`
	// Output selects the report destination: "stdout" or a file path.
	Output string `yaml:"output"`
	// Verbosity is "full" or "minimal".
	Verbosity string `yaml:"verbosity"`
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
	// Concurrency caps how many samples are typed at once. 0 means no cap.
	Concurrency int `yaml:"concurrency"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RulePath:  "toxinotypes.tsv",
		Output:    "stdout",
		Verbosity: "full",
		LogLevel:  "info",
	}
}

// Load reads configuration from environment variables over the defaults.
func Load() Config {
	return applyEnv(Default())
}

// LoadFile reads a YAML configuration file over the defaults, then applies
// environment variables on top — env always wins over file values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	cfg.RulePath = getenv("TOXOTYPE_RULES", cfg.RulePath)
	cfg.Output = getenv("TOXOTYPE_OUTPUT", cfg.Output)
	cfg.Verbosity = getenv("TOXOTYPE_VERBOSITY", cfg.Verbosity)
	cfg.LogLevel = getenv("TOXOTYPE_LOG_LEVEL", cfg.LogLevel)
	cfg.Concurrency = getenvInt("TOXOTYPE_CONCURRENCY", cfg.Concurrency)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
