package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/advent2018/internal/logger"
)

// Config holds the settings shared by every puzzle run.
type Config struct {
	// InputDir is the directory holding dayNN.txt puzzle inputs.
	InputDir string `yaml:"input_dir"`
	// AnswersFile is the path to the JSON file recording solved answers.
	AnswersFile string `yaml:"answers_file"`
	// LogLevel is the minimum level for log output (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for runner settings.
	DefaultConfigFilename = "advent-settings.yaml"

	// DefaultInputDir is the default directory with puzzle inputs.
	DefaultInputDir = "inputs"

	// DefaultAnswersFilename is the default filename for the answers history.
	DefaultAnswersFilename = "advent-answers.json"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when LogLevel is not a level zap knows.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	return &Config{
		InputDir:    DefaultInputDir,
		AnswersFile: DefaultAnswersFilename,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path means DefaultConfigFilename, which may be absent: defaults
// apply then. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for empty fields and checks the log level.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}

	if cfg.AnswersFile == "" {
		cfg.AnswersFile = DefaultAnswersFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}

// InputPath returns the conventional input file for a day, e.g. inputs/day04.txt.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
