package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/m-manu/sftpclone/fmte"
	"github.com/m-manu/sftpclone/lib"
)

// Config holds the environment-based defaults of sftpclone. Command line flags override them.
type Config struct {
	KeyPath               string        `env:"SFTPCLONE_KEY" envDefault:"~/.ssh/id_rsa"`
	LogLevel              string        `env:"SFTPCLONE_LOGGING" envDefault:"ERROR"`
	Port                  int           `env:"SFTPCLONE_PORT" envDefault:"22"`
	FixSymlinks           bool          `env:"SFTPCLONE_FIX_SYMLINKS" envDefault:"false"`
	SSHConfigPath         string        `env:"SFTPCLONE_SSH_CONFIG" envDefault:"~/.ssh/config"`
	ExcludeFrom           string        `env:"SFTPCLONE_EXCLUDE_FROM"`
	KnownHostsPath        string        `env:"SFTPCLONE_KNOWN_HOSTS" envDefault:"~/.ssh/known_hosts"`
	InsecureIgnoreHostKey bool          `env:"SFTPCLONE_INSECURE_IGNORE_HOST_KEY" envDefault:"false"`
	DryRun                bool          `env:"SFTPCLONE_DRY_RUN" envDefault:"false"`
	Timeout               time.Duration `env:"SFTPCLONE_TIMEOUT" envDefault:"30s"`

	// PortSet and KeySet record whether the environment chose a value, so ssh_config doesn't override it
	PortSet bool
	KeySet  bool
}

// Load reads configuration from environment variables.
// It first attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	_, cfg.PortSet = os.LookupEnv("SFTPCLONE_PORT")
	_, cfg.KeySet = os.LookupEnv("SFTPCLONE_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.ExpandPaths()
	return cfg, nil
}

// Validate checks values that can't be expressed as env tags
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if _, err := fmte.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s", c.Timeout)
	}
	return nil
}

// ExpandPaths replaces a leading "~" in every path setting
func (c *Config) ExpandPaths() {
	c.KeyPath = lib.ExpandUser(c.KeyPath)
	c.SSHConfigPath = lib.ExpandUser(c.SSHConfigPath)
	c.KnownHostsPath = lib.ExpandUser(c.KnownHostsPath)
	c.ExcludeFrom = lib.ExpandUser(c.ExcludeFrom)
}
