// Package config loads the tracker connection settings. The values are
// read once at startup and the resulting Config is passed into every
// component that needs it; nothing here is global or mutable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/SunWooBang/jira-mcp-server/internal/credential"
)

// Config holds the connection parameters for one Jira instance. It is
// immutable for the process lifetime.
type Config struct {
	// BaseURL is the root URL of the Jira instance
	// (e.g., https://corp.atlassian.net).
	BaseURL string `mapstructure:"base_url"`

	// Email is the principal identity for Basic auth on Jira Cloud.
	// Leave empty to authenticate with a Bearer token instead.
	Email string `mapstructure:"email"`

	// APIToken is the secret used for authentication. When absent from
	// the file and the environment it is looked up in the system
	// keyring.
	APIToken string `mapstructure:"api_token"`

	// DefaultProject is the project key applied when a tool call omits
	// one.
	DefaultProject string `mapstructure:"default_project"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/jira-mcp-server/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "jira-mcp-server", "config.yaml")
}

// Load reads configuration from the given YAML file path using Viper,
// with JIRA_* environment variables taking precedence over file values.
// A missing file is not an error; the environment alone can carry the
// full configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("default_project", "PROJ")

	// Environment bindings for the four connection values.
	_ = v.BindEnv("base_url", "JIRA_BASE_URL")
	_ = v.BindEnv("email", "JIRA_EMAIL")
	_ = v.BindEnv("api_token", "JIRA_API_TOKEN")
	_ = v.BindEnv("default_project", "JIRA_DEFAULT_PROJECT")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.APIToken == "" {
		if token, err := credential.Get(credential.KeyAPIToken); err == nil {
			cfg.APIToken = token
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing required connection value.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New(
			"jira base URL is not configured: set JIRA_BASE_URL or base_url in the config file",
		)
	}
	if c.APIToken == "" {
		return errors.New(
			"jira API token is not configured: set JIRA_API_TOKEN, api_token in the config file, or store it in the system keyring",
		)
	}
	return nil
}
