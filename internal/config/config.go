package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up at the project root.
const DefaultFilename = "leango.yaml"

const (
	defaultLoggerName = "LeanGo"
	defaultLogFolder  = "logs"
	defaultLogLevel   = "info"
	defaultSomeNumber = 10
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config aggregates the toolkit settings resolved from multiple sources.
type Config struct {
	// LoggerName names the shared logger and the log file.
	LoggerName string
	// LogFolder is the log directory relative to the project root. Empty
	// disables file logging.
	LogFolder string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// DateSuffix appends a timestamp to the log file name.
	DateSuffix bool
	// SomeNumber demonstrates a numeric setting fed from the command line.
	SomeNumber int
	// BoolExample demonstrates a boolean setting fed from the command line.
	BoolExample bool

	settings map[string]any
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	LoggerName  string         `yaml:"logger_name"`
	LogFolder   *string        `yaml:"log_folder"`
	LogLevel    string         `yaml:"log_level"`
	DateSuffix  *bool          `yaml:"date_suffix"`
	SomeNumber  *int           `yaml:"some_number"`
	BoolExample *bool          `yaml:"bool_example"`
	Settings    map[string]any `yaml:"settings"`
}

// Overrides holds command-line flag overrides. Boolean flags only enable;
// their absence never turns a YAML-enabled setting back off.
type Overrides struct {
	ConfigFile  string
	Debug       bool
	DateSuffix  bool
	BoolExample bool
	SomeNumber  *int
}

// Load resolves the configuration store for the project rooted at root with
// precedence: CLI flags > YAML config > Environment variables > Defaults.
// The default configuration file is optional; a file named explicitly in
// overrides must exist.
func Load(root string, overrides *Overrides) (Config, error) {
	cfg := defaultConfig()

	path, required := configFilePath(root, overrides)
	if path != "" {
		yamlCfg, err := loadFromFile(path)
		switch {
		case err == nil:
			applyYAMLConfig(&cfg, yamlCfg)
		case !required && os.IsNotExist(err):
			// The default file is a convenience, not a requirement.
		default:
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
	}

	applyEnvConfig(&cfg)

	if overrides != nil {
		applyOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Setting returns the user-defined setting for key and whether it exists.
func (c Config) Setting(key string) (any, bool) {
	value, ok := c.settings[key]
	return value, ok
}

// Settings returns a defensive copy of the user-defined settings map.
func (c Config) Settings() map[string]any {
	out := make(map[string]any, len(c.settings))
	for k, v := range c.settings {
		out[k] = v
	}
	return out
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LoggerName: defaultLoggerName,
		LogFolder:  defaultLogFolder,
		LogLevel:   defaultLogLevel,
		SomeNumber: defaultSomeNumber,
		settings:   map[string]any{},
	}
}

// configFilePath picks the configuration file to read. The second return
// value reports whether the file must exist.
func configFilePath(root string, overrides *Overrides) (string, bool) {
	if overrides != nil && overrides.ConfigFile != "" {
		return overrides.ConfigFile, true
	}
	if root != "" {
		return filepath.Join(root, DefaultFilename), false
	}
	return "", false
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.LoggerName != "" {
		cfg.LoggerName = yamlCfg.LoggerName
	}
	if yamlCfg.LogFolder != nil {
		cfg.LogFolder = *yamlCfg.LogFolder
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.DateSuffix != nil {
		cfg.DateSuffix = *yamlCfg.DateSuffix
	}
	if yamlCfg.SomeNumber != nil {
		cfg.SomeNumber = *yamlCfg.SomeNumber
	}
	if yamlCfg.BoolExample != nil {
		cfg.BoolExample = *yamlCfg.BoolExample
	}
	for key, value := range yamlCfg.Settings {
		cfg.settings[key] = value
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if name := strings.TrimSpace(os.Getenv("LEANGO_LOGGER_NAME")); name != "" {
		cfg.LoggerName = name
	}

	if folder := strings.TrimSpace(os.Getenv("LEANGO_LOG_FOLDER")); folder != "" {
		cfg.LogFolder = folder
	}

	if level := strings.TrimSpace(os.Getenv("LEANGO_LOG_LEVEL")); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if raw := strings.TrimSpace(os.Getenv("LEANGO_SOME_NUMBER")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.SomeNumber = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("LEANGO_BOOL_EXAMPLE")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.BoolExample = value
		}
	}
}

// applyOverrides applies command-line flag overrides.
func applyOverrides(cfg *Config, overrides *Overrides) {
	if overrides.Debug {
		cfg.LogLevel = "debug"
	}
	if overrides.DateSuffix {
		cfg.DateSuffix = true
	}
	if overrides.BoolExample {
		cfg.BoolExample = true
	}
	if overrides.SomeNumber != nil && *overrides.SomeNumber >= 0 {
		cfg.SomeNumber = *overrides.SomeNumber
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.LoggerName) == "" {
		return fmt.Errorf("logger name cannot be empty")
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	if cfg.SomeNumber < 0 {
		return fmt.Errorf("SOME_NUMBER must be >= 0")
	}
	return nil
}
