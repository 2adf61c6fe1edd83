package remote

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kevinburke/ssh_config"
	"github.com/m-manu/sftpclone/lib"
)

// HostConfig holds the ssh_config values that apply to one host alias
type HostConfig struct {
	HostName     string
	User         string
	Port         int
	IdentityFile string
}

// ParseHostConfig decodes an ssh_config document and looks up the values for alias
func ParseHostConfig(r io.Reader, alias string) (HostConfig, error) {
	cfg, err := ssh_config.Decode(r)
	if err != nil {
		return HostConfig{}, err
	}
	var hc HostConfig
	if hc.HostName, err = cfg.Get(alias, "HostName"); err != nil {
		return HostConfig{}, err
	}
	if hc.User, err = cfg.Get(alias, "User"); err != nil {
		return HostConfig{}, err
	}
	port, err := cfg.Get(alias, "Port")
	if err != nil {
		return HostConfig{}, err
	}
	if port != "" {
		if hc.Port, err = strconv.Atoi(port); err != nil {
			return HostConfig{}, fmt.Errorf("invalid port %q for host %s: %w", port, alias, err)
		}
	}
	identity, err := cfg.Get(alias, "IdentityFile")
	if err != nil {
		return HostConfig{}, err
	}
	if identity != "" {
		hc.IdentityFile = lib.ExpandUser(identity)
	}
	return hc, nil
}

// LoadHostConfig reads the ssh_config file at path and looks up the values for alias.
// A missing file yields an empty HostConfig.
func LoadHostConfig(path, alias string) (HostConfig, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return HostConfig{}, nil
	} else if err != nil {
		return HostConfig{}, err
	}
	defer f.Close()
	return ParseHostConfig(f, alias)
}

// ApplySSHConfig merges ssh_config values into the location and connection options.
// A user given in the location and ports or keys given explicitly on the command line win.
func ApplySSHConfig(loc *Location, opts *ConnectOptions, hc HostConfig, portExplicit, keyExplicit bool) {
	if hc.HostName != "" {
		loc.Host = hc.HostName
	}
	if loc.User == "" {
		loc.User = hc.User
	}
	if hc.Port != 0 && !portExplicit {
		loc.Port = hc.Port
	}
	if hc.IdentityFile != "" && !keyExplicit {
		opts.KeyPath = hc.IdentityFile
	}
}
