package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "REVIEW_LABELER_CONFIG"
	inputPathEnv   = "REVIEW_INPUT_PATH"
	inputFormatEnv = "REVIEW_INPUT_FORMAT"
	genreEnv       = "REVIEW_GENRE"
	outputDirEnv   = "REVIEW_OUTPUT_DIR"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig describes where raw reviews come from.
type InputConfig struct {
	// Path to the raw review file, e.g.
	// datasets/raw/goodreads_reviews_mystery_thriller_crime.json.
	Path string `yaml:"path"`
	// Format selects a registered review source ("jsonl").
	Format string `yaml:"format"`
	// Genre overrides the genre tag derived from the input filename.
	Genre string `yaml:"genre"`
}

// OutputConfig describes where stage snapshots are written.
type OutputConfig struct {
	// Dir is the dataset root; stage subdirectories are created beneath it.
	Dir string `yaml:"dir"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(inputPathEnv); v != "" {
		c.Input.Path = v
	}

	if v := os.Getenv(inputFormatEnv); v != "" {
		c.Input.Format = v
	}

	if v := os.Getenv(genreEnv); v != "" {
		c.Input.Genre = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Input.Path != "" {
		base.Input.Path = override.Input.Path
	}
	if override.Input.Format != "" {
		base.Input.Format = override.Input.Format
	}
	if override.Input.Genre != "" {
		base.Input.Genre = override.Input.Genre
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Input: InputConfig{
			Path:   "datasets/raw/goodreads_reviews_mystery_thriller_crime.json",
			Format: "jsonl",
		},
		Output:  OutputConfig{Dir: "datasets"},
		Logging: LoggingConfig{Level: "info"},
	}
}
