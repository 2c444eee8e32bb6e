// Package config loads the driveseek YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the driveseek API configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Drive   DriveConfig   `yaml:"drive"`
	Search  SearchConfig  `yaml:"search"`
	Auth    AuthConfig    `yaml:"auth"`
	CORS    CORSConfig    `yaml:"cors"`
	Logging LoggingConfig `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DriveConfig holds the Drive service-account connection settings.
// Exactly one of CredentialsFile or CredentialsJSON must be provided;
// the JSON form supports ${VAR} injection from the environment.
type DriveConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	CredentialsJSON string `yaml:"credentials_json"`
	PassTimeoutSec  int    `yaml:"pass_timeout_sec"`
	MaxPageFetches  int    `yaml:"max_page_fetches"`
}

// SearchConfig holds retrieval defaults applied to unset request fields.
type SearchConfig struct {
	DefaultWindowDays int `yaml:"default_window_days"`
	DefaultPageSize   int `yaml:"default_page_size"`
	DefaultMaxPasses  int `yaml:"default_max_passes"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// CORSConfig holds cross-origin settings for browser callers.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Drive.PassTimeoutSec <= 0 {
		c.Drive.PassTimeoutSec = 20
	}
	if c.Drive.MaxPageFetches <= 0 {
		c.Drive.MaxPageFetches = 10
	}
	if c.Search.DefaultWindowDays <= 0 {
		c.Search.DefaultWindowDays = 120
	}
	if c.Search.DefaultPageSize <= 0 {
		c.Search.DefaultPageSize = 25
	}
	if c.Search.DefaultMaxPasses <= 0 {
		c.Search.DefaultMaxPasses = 4
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Drive.CredentialsFile == "" && strings.TrimSpace(c.Drive.CredentialsJSON) == "" {
		return fmt.Errorf("drive.credentials_file or drive.credentials_json is required")
	}
	if c.Drive.CredentialsFile != "" && strings.TrimSpace(c.Drive.CredentialsJSON) != "" {
		return fmt.Errorf("drive.credentials_file and drive.credentials_json are mutually exclusive")
	}
	if c.Search.DefaultMaxPasses > 4 {
		return fmt.Errorf("search.default_max_passes must be between 1 and 4, got %d", c.Search.DefaultMaxPasses)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
