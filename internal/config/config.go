// Package config loads the runsync configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/auth"
	"gopkg.in/yaml.v3"

	"github.com/lxkasmehl/runsync-dispatch/internal/github"
)

const (
	// EnvPath overrides the configuration file location.
	EnvPath = "RUNSYNC_CONFIG"

	// AutoRepository asks for the repository to be detected from the current git checkout.
	AutoRepository = "auto"

	DefaultRepository  = "Lxkasmehl/RunSync"
	DefaultWorkflow    = "runsync.yml"
	DefaultRef         = "main"
	DefaultAPIURL      = github.DefaultAPIURL
	DefaultHost        = github.DefaultHost
	DefaultWebURL      = github.DefaultWebURL
	DefaultHTTPTimeout = 30 * time.Second
	DefaultRunsPerPage = github.DefaultPerPage
	DefaultLogLevel    = "warn"

	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultTokenSources is the lookup order used when token_sources is omitted.
var DefaultTokenSources = []string{"durable", "session", "prompt"}

var knownTokenSources = []string{"durable", "session", "gh", "prompt"}

// Config represents the runsync configuration file.
type Config struct {
	Version      int           `yaml:"version"`
	Repository   string        `yaml:"repository"`
	Workflow     string        `yaml:"workflow"`
	Ref          string        `yaml:"ref"`
	APIURL       string        `yaml:"api_url"`
	Host         string        `yaml:"host"`
	WebURL       string        `yaml:"web_url"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	RunsPerPage  int           `yaml:"runs_per_page"`
	LogLevel     string        `yaml:"log_level"`
	TokenSources []string      `yaml:"token_sources"`
	Storage      Storage       `yaml:"storage"`
	WorkflowDir  string        `yaml:"workflow_dir"`

	// Path is the file the configuration was read from, empty when defaults were used.
	Path string `yaml:"-"`
}

// Storage selects where credentials are kept.
type Storage struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path"`
	SessionPath string `yaml:"session_path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:      1,
		Repository:   DefaultRepository,
		Workflow:     DefaultWorkflow,
		Ref:          DefaultRef,
		APIURL:       DefaultAPIURL,
		Host:         DefaultHost,
		WebURL:       DefaultWebURL,
		HTTPTimeout:  DefaultHTTPTimeout,
		RunsPerPage:  DefaultRunsPerPage,
		TokenSources: slices.Clone(DefaultTokenSources),
		Storage:      Storage{Backend: BackendFile},
	}
}

// DefaultPath returns the configuration file location, honouring RUNSYNC_CONFIG and XDG_CONFIG_HOME.
func DefaultPath() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runsync", "config.yml")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", "runsync", "config.yml")
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path. A missing file yields Default().
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Path = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// applyDefaults restores defaults for keys that were present but empty.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}

	if c.Repository == "" {
		c.Repository = DefaultRepository
	}

	if c.Workflow == "" {
		c.Workflow = DefaultWorkflow
	}

	if c.Ref == "" {
		c.Ref = DefaultRef
	}

	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}

	if c.Host == "" {
		c.Host = DefaultHost
	}

	if c.WebURL == "" {
		c.WebURL = DefaultWebURL
	}

	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}

	if c.RunsPerPage == 0 {
		c.RunsPerPage = DefaultRunsPerPage
	}

	if len(c.TokenSources) == 0 {
		c.TokenSources = slices.Clone(DefaultTokenSources)
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}

	if c.Repository != AutoRepository {
		if _, _, err := github.ParseRepository(c.Repository); err != nil {
			return err
		}
	}

	apiHost, err := github.APIHost(c.APIURL)
	if err != nil {
		return err
	}

	if apiHost != auth.NormalizeHostname(c.Host) {
		return fmt.Errorf("api_url %s does not belong to host %q; set host to %q", c.APIURL, c.Host, apiHost)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}

	if c.RunsPerPage < 1 || c.RunsPerPage > 100 {
		return fmt.Errorf("runs_per_page must be between 1 and 100, got %d", c.RunsPerPage)
	}

	for _, source := range c.TokenSources {
		if !slices.Contains(knownTokenSources, source) {
			return fmt.Errorf("unknown token source %q (expected one of %s)", source, strings.Join(knownTokenSources, ", "))
		}
	}

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (expected file, sqlite or memory)", c.Storage.Backend)
	}

	return nil
}

// ResolveRepository returns owner and repo, calling detect when the repository is "auto".
func (c *Config) ResolveRepository(detect func() (string, error)) (string, string, error) {
	full := c.Repository
	if full == AutoRepository {
		detected, err := detect()
		if err != nil {
			return "", "", err
		}

		full = detected
	}

	return github.ParseRepository(full)
}
