// Package config loads partyplanner configuration from defaults, an optional
// YAML file, and environment variables, in that order of precedence (lowest
// first). CLI flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the parties API.
const (
	DefaultBaseURL = "https://fsa-crud-2aa9294fe819.herokuapp.com/api"
	DefaultCohort  = "2109-CPU-RM-WEB-PT"
	DefaultAddr    = ":8080"

	// FormatTable and FormatJSON are the accepted output.default_format values.
	FormatTable = "table"
	FormatJSON  = "json"

	dirName    = ".partyplanner"
	fileName   = "config.yaml"
	logDirName = "logs"
	logName    = "partyplanner.log"
)

// Config is the complete configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// APIConfig locates the parties endpoint.
type APIConfig struct {
	BaseURL string `yaml:"base_url" env:"PARTYPLANNER_BASE_URL"`
	Cohort  string `yaml:"cohort"   env:"PARTYPLANNER_COHORT"`
	// Timeout bounds each request. Zero disables the timeout.
	Timeout time.Duration `yaml:"timeout" env:"PARTYPLANNER_API_TIMEOUT"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"PARTYPLANNER_OUTPUT_FORMAT"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"PARTYPLANNER_LOG_LEVEL"`
	Format string `yaml:"format" env:"PARTYPLANNER_LOG_FORMAT"`
	// File is where logs go. The terminal UI always logs to a file and uses
	// DefaultLogPath when this is empty.
	File string `yaml:"file" env:"PARTYPLANNER_LOG_FILE"`
	// Caller adds the file:line of each log call. --debug turns it on.
	Caller bool `yaml:"caller" env:"PARTYPLANNER_LOG_CALLER"`
}

// ServerConfig controls `partyplanner serve`.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"PARTYPLANNER_SERVER_ADDR"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Cohort:  DefaultCohort,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when it
// does not exist), and the environment. An empty path means DefaultPath().
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := MergeYAML(cfg, path); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must be set")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must be an http or https url, got %q", c.API.BaseURL)
	}
	if c.API.Cohort == "" {
		return errors.New("api.cohort must be set")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be >= 0, got %s", c.API.Timeout)
	}
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output.default_format must be %q or %q, got %q",
			FormatTable, FormatJSON, c.Output.DefaultFormat)
	}
	return nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Dir returns ~/.partyplanner, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, dirName)
}

// DefaultPath returns ~/.partyplanner/config.yaml.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, fileName)
}

// DefaultLogPath returns ~/.partyplanner/logs/partyplanner.log, falling back
// to the temp directory.
func DefaultLogPath() string {
	dir := Dir()
	if dir == "" {
		return filepath.Join(os.TempDir(), logName)
	}
	return filepath.Join(dir, logDirName, logName)
}
