// Package config provides configuration handling for the gitseed application.
//
// This package manages all configuration parameters for gitseed, layering an
// optional YAML file and environment variables over built-in defaults through
// koanf. Command-line flags are bound by the cmd layer and applied on top of
// the loaded configuration. It ensures configuration values are consistent
// and valid before they are used by the application.
//
// # Core Components
//
// - Config: Main configuration type that holds all gitseed settings
// - Author: Synthetic identity recorded on generated commits
// - Messages: Override tables for commit message generation
// - VersionInfo: Type for version, commit, and build date information
//
// # Configuration Sources
//
// Configuration values are loaded with the following precedence:
//
// 1. Command-line flags (highest priority)
// 2. GITSEED_* environment variables
// 3. YAML config file (.gitseed.yaml or --config)
// 4. Default values (lowest priority)
//
// # Environment Variables
//
// Variables are prefixed with GITSEED_ and mapped to config keys by
// lowercasing and turning underscores into dots:
//
//	GITSEED_REPO          Path to repository (default: current directory)
//	GITSEED_COUNT         Number of commits to generate (default: 100)
//	GITSEED_DAYS          Size of the trailing date window in days (default: 365)
//	GITSEED_SEED          RNG seed, 0 picks a time-based seed (default: 0)
//	GITSEED_PROGRESS      Commits between progress lines (default: 50)
//	GITSEED_MINFILES      File-count floor protected from deletes (default: 5)
//	GITSEED_QUIET         Hide informational messages (default: false)
//	GITSEED_YES           Skip the confirmation prompt (default: false)
//	GITSEED_DEBUG         Enable debug logging (default: false)
//	GITSEED_LOGFILE       Path to log file (default: ~/.local/share/gitseed/logs/gitseed-<hash>.log)
//	GITSEED_AUTHOR_NAME   Author/committer name override
//	GITSEED_AUTHOR_EMAIL  Author/committer email override
//
// # Config File
//
// The YAML file mirrors the same keys and additionally carries the message
// tables:
//
//	count: 250
//	days: 180
//	author:
//	  name: Demo Bot
//	  email: demo@example.com
//	messages:
//	  templates:
//	    - "Fix bug in {component}"
//	    - "Add {feature} functionality"
//	  components: [auth module, database]
//	  features: [caching, pagination]
//
// # Usage
//
// Basic usage pattern:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    // Handle error
//	}
//
//	// Apply flag overrides here, then validate
//	if err := cfg.Finalize(); err != nil {
//	    // Handle error
//	}
//
// # Thread Safety
//
// The Config type is not designed to be thread-safe. Configuration is typically
// loaded at startup and then used in a read-only fashion by the application.
// Concurrent modifications to a Config instance are not supported.
package config
