package remote

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Location represents either a local path or a remote [user[:password]@]host:path.
type Location struct {
	IsRemote bool
	User     string // empty = current user
	Password string // empty = key based authentication
	Host     string
	Port     int // 0 = default (22)
	Path     string
}

// ParseLocation parses a CLI argument into a Location.
//
// Rules:
//   - Starts with "/", "./", or "../" → local
//   - Contains ":" → remote ([user[:password]@]host:path or [user[:password]@]host:port:/path)
//   - Everything else → local
//
// The user info ends at the first "@" that is followed by "host:", so passwords may contain
// ":" or "/" and remote paths may contain "@".
func ParseLocation(arg string) (Location, error) {
	if arg == "" {
		return Location{}, fmt.Errorf("empty path argument")
	}

	// Clearly local paths
	if strings.HasPrefix(arg, "/") || strings.HasPrefix(arg, "./") || strings.HasPrefix(arg, "../") {
		return Location{Path: arg}, nil
	}

	loc := Location{IsRemote: true}
	rest := arg
	if atIdx := userInfoEnd(arg); atIdx >= 0 {
		userInfo := arg[:atIdx]
		rest = arg[atIdx+1:]
		if colonIdx := strings.Index(userInfo, ":"); colonIdx >= 0 {
			loc.User, loc.Password = userInfo[:colonIdx], userInfo[colonIdx+1:]
		} else {
			loc.User = userInfo
		}
	}

	colonIdx := strings.Index(rest, ":")
	if colonIdx < 0 {
		// No colon → local
		return Location{Path: arg}, nil
	}

	loc.Host = rest[:colonIdx]
	rest = rest[colonIdx+1:]
	if loc.Host == "" {
		return Location{}, fmt.Errorf("empty host in remote path %q", arg)
	}

	// port:path only when the path after the port is absolute or home-relative
	if secondColon := strings.Index(rest, ":"); secondColon > 0 {
		possiblePort, afterPort := rest[:secondColon], rest[secondColon+1:]
		port, err := strconv.Atoi(possiblePort)
		if err == nil && port > 0 && port <= 65535 &&
			(strings.HasPrefix(afterPort, "/") || strings.HasPrefix(afterPort, "~")) {
			loc.Port = port
			rest = afterPort
		}
	}

	if rest == "" {
		return Location{}, fmt.Errorf("empty path in remote spec %q", arg)
	}

	loc.Path = rest
	return loc, nil
}

// userInfoEnd returns the index of the "@" closing the user info, or -1 when there is none
func userInfoEnd(arg string) int {
	for i := 0; i < len(arg); i++ {
		if arg[i] != '@' {
			continue
		}
		hostPart, _, found := strings.Cut(arg[i+1:], ":")
		if found && !strings.ContainsAny(hostPart, "/@") {
			return i
		}
	}
	return -1
}

// SSHAddr returns the host:port string for SSH connection.
func (l Location) SSHAddr() string {
	port := l.Port
	if port == 0 {
		port = 22
	}
	return net.JoinHostPort(l.Host, strconv.Itoa(port))
}

// SSHSpec returns a string like "user@host" or "host" suitable for display.
// The password is never part of it.
func (l Location) SSHSpec() string {
	if l.User != "" {
		return l.User + "@" + l.Host
	}
	return l.Host
}

// ExpandHome replaces a leading "~" of a remote path with the session's home directory
func ExpandHome(remotePath, home string) string {
	if remotePath == "~" {
		return home
	}
	if strings.HasPrefix(remotePath, "~/") {
		return strings.TrimSuffix(home, "/") + remotePath[1:]
	}
	return remotePath
}
