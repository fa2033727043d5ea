package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mkarren/gitseed/internal/constants"
	"github.com/mkarren/gitseed/internal/errors"
)

const (
	// DefaultConfigFile is looked up in the current directory when --config is not given
	DefaultConfigFile = ".gitseed.yaml"

	// envPrefix namespaces the environment variables read by Load
	envPrefix = "GITSEED_"
)

// Config holds all gitseed application settings
type Config struct {
	// Generation parameters
	RepoPath      string `koanf:"repo"`
	Count         int    `koanf:"count"`
	WindowDays    int    `koanf:"days"`
	Seed          int64  `koanf:"seed"`
	ProgressEvery int    `koanf:"progress"`
	MinKeepFiles  int    `koanf:"minfiles"`

	// Commit identity overrides, empty means use the repository's identity
	Author Author `koanf:"author"`

	// Commit message tables, empty means use the built-in tables
	Messages Messages `koanf:"messages"`

	// User experience
	Quiet     bool `koanf:"quiet"`
	AssumeYes bool `koanf:"yes"`

	// Debugging
	Debug   bool   `koanf:"debug"`
	LogFile string `koanf:"logfile"`

	// Build metadata
	VersionInfo VersionInfo `koanf:"-"`
}

// Author is the synthetic identity recorded on generated commits.
type Author struct {
	Name  string `koanf:"name"`
	Email string `koanf:"email"`
}

// Messages overrides the built-in commit message tables.
type Messages struct {
	Templates  []string `koanf:"templates"`
	Components []string `koanf:"components"`
	Features   []string `koanf:"features"`
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		RepoPath:      "",
		Count:         constants.DefaultCommitCount,
		WindowDays:    constants.DefaultWindowDays,
		Seed:          0,
		ProgressEvery: constants.DefaultProgressEvery,
		MinKeepFiles:  constants.MinKeepFiles,
		Quiet:         false,
		AssumeYes:     false,
		Debug:         false,
		LogFile:       "",

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// Load builds a Config from defaults, an optional YAML file, and GITSEED_*
// environment variables, in that order of precedence. When configFile is
// empty the default file is used if present; a missing default file is not
// an error, a missing explicit file is.
func Load(configFile string) (*Config, error) {
	cfg := New()

	k := koanf.New(".")

	path := configFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.NewConfigError("config", path,
				errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("config file not found: %v", err)))
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.NewConfigError("config", path,
				errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to parse config file: %v", err)))
		}
	}

	// GITSEED_AUTHOR_NAME becomes author.name, GITSEED_COUNT becomes count
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.NewConfigError("environment", nil,
			errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to read environment: %v", err)))
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.NewConfigError("config", path,
			errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to decode configuration: %v", err)))
	}

	return cfg, nil
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.Count < 1 {
		err := fmt.Errorf("invalid commit count: %d (must be at least 1)", c.Count)
		return errors.NewConfigError("count", c.Count, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if c.WindowDays < 1 {
		err := fmt.Errorf("invalid window: %d days (must be at least 1)", c.WindowDays)
		return errors.NewConfigError("days", c.WindowDays, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if c.ProgressEvery < 1 {
		err := fmt.Errorf("invalid progress interval: %d (must be at least 1)", c.ProgressEvery)
		return errors.NewConfigError("progress", c.ProgressEvery, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if c.MinKeepFiles < 0 {
		err := fmt.Errorf("invalid file floor: %d (must not be negative)", c.MinKeepFiles)
		return errors.NewConfigError("minfiles", c.MinKeepFiles, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if err := c.Messages.validate(); err != nil {
		return err
	}

	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repo", "", errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to get current directory: %v", err)))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repo", c.RepoPath, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.RepoPath = absRepoPath

	if c.LogFile == "" {
		// Follow XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			// Default XDG data home if not set
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				logDir = os.TempDir()
			}
		}

		// Create a unique identifier for the repository
		repoHash := fmt.Sprintf("%x", sha256OfString(c.RepoPath)[:8])

		// Final log directory and file
		gitseedLogDir := filepath.Join(logDir, "gitseed", "logs")
		c.LogFile = filepath.Join(gitseedLogDir, fmt.Sprintf("gitseed-%s.log", repoHash))
	}

	return nil
}

// validate rejects message tables a run could not use. A template set that
// references a placeholder needs a corresponding non-empty word list.
func (m Messages) validate() error {
	for i, tpl := range m.Templates {
		if strings.TrimSpace(tpl) == "" {
			err := fmt.Errorf("template %d is empty", i)
			return errors.NewConfigError("messages.templates", tpl, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
		}
	}

	if len(m.Templates) > 0 {
		needsComponent := false
		needsFeature := false
		for _, tpl := range m.Templates {
			if strings.Contains(tpl, "{component}") {
				needsComponent = true
			}
			if strings.Contains(tpl, "{feature}") {
				needsFeature = true
			}
		}

		if needsComponent && len(m.Components) == 0 {
			err := fmt.Errorf("templates reference {component} but no components are configured")
			return errors.NewConfigError("messages.components", nil, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
		}
		if needsFeature && len(m.Features) == 0 {
			err := fmt.Errorf("templates reference {feature} but no features are configured")
			return errors.NewConfigError("messages.features", nil, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
		}
	}

	return nil
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
