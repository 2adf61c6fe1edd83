package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	set "github.com/deckarep/golang-set/v2"
	"github.com/m-manu/sftpclone/config"
	"github.com/m-manu/sftpclone/entity"
	"github.com/m-manu/sftpclone/fmte"
	rsfs "github.com/m-manu/sftpclone/fs"
	"github.com/m-manu/sftpclone/lib"
	"github.com/m-manu/sftpclone/remote"
	"github.com/m-manu/sftpclone/service"
)

// destination is an opened mirror target
type destination struct {
	fs         rsfs.RemoteFS
	root       string
	privileged bool
	closer     io.Closer
}

// resolveLocalRoot turns the command line local path into an absolute path free of symlinks
func resolveLocalRoot(arg string) (string, error) {
	absPath, err := filepath.Abs(lib.ExpandUser(arg))
	if err != nil {
		return "", err
	}
	if !lib.IsReadableDirectory(absPath) {
		return "", fmt.Errorf("%w: %q is not a readable directory", service.ErrLocalRootMissing, arg)
	}
	return filepath.EvalSymlinks(absPath)
}

func loadExclusions(excludeFrom string, localRoot string) (set.Set[string], error) {
	if excludeFrom == "" {
		return set.NewThreadUnsafeSet[string](), nil
	}
	if !lib.IsReadableFile(excludeFrom) {
		return nil, fmt.Errorf("exclude file %q is not a readable file", excludeFrom)
	}
	return service.LoadExclusions(excludeFrom, localRoot)
}

// openLocalDestination mirrors into a directory of this machine
func openLocalDestination(loc remote.Location) (*destination, error) {
	root, err := filepath.Abs(lib.ExpandUser(loc.Path))
	if err != nil {
		return nil, err
	}
	localFS := rsfs.NewLocalFS()
	return &destination{
		fs:         localFS,
		root:       root,
		privileged: os.Geteuid() == 0,
		closer:     localFS,
	}, nil
}

// openRemoteDestination resolves ssh_config settings, connects and resolves the remote root
func openRemoteDestination(loc remote.Location, cfg *config.Config, portExplicit, keyExplicit bool) (*destination, error) {
	alias := loc.Host
	opts := remote.ConnectOptions{
		KeyPath:               cfg.KeyPath,
		KnownHostsPath:        cfg.KnownHostsPath,
		InsecureIgnoreHostKey: cfg.InsecureIgnoreHostKey,
		Timeout:               cfg.Timeout,
		Prompt:                remote.TerminalPrompt,
	}
	if loc.Port == 0 {
		loc.Port = cfg.Port
	}
	hostConfig, err := remote.LoadHostConfig(cfg.SSHConfigPath, alias)
	if err != nil {
		fmte.Warnf("Couldn't parse the ssh_config file %s: %v", cfg.SSHConfigPath, err)
	} else {
		remote.ApplySSHConfig(&loc, &opts, hostConfig, portExplicit, keyExplicit)
	}

	loc.User = loc.LoginUser()
	session, err := remote.Connect(loc, opts)
	if err != nil {
		return nil, err
	}
	sftpFS := rsfs.NewSFTPFS(session.SFTP)

	root := loc.Path
	if root == "~" || !path.IsAbs(root) {
		home, err := sftpFS.Getwd()
		if err != nil {
			_ = session.Close()
			return nil, fmt.Errorf("couldn't determine remote working directory: %w", err)
		}
		root = remote.ExpandHome(root, home)
		if !path.IsAbs(root) {
			root = path.Join(home, root)
		}
	}
	return &destination{
		fs:         sftpFS,
		root:       path.Clean(root),
		privileged: isPrivilegedLogin(loc),
		closer:     session,
	}, nil
}

// isPrivilegedLogin tells whether the remote session may change file ownership
func isPrivilegedLogin(loc remote.Location) bool {
	return loc.LoginUser() == "root"
}

// sftpClone mirrors localRoot onto dest and prints a summary of what was done
func sftpClone(localRoot string, exclusions set.Set[string], dest *destination, fixSymlinks, dryRun bool) (entity.Stats, error) {
	if dryRun {
		fmte.Printf("Dry run: nothing will be changed at the destination\n")
	}
	syncer := service.NewSyncer(dest.fs, service.Options{
		LocalRoot:   localRoot,
		RemoteRoot:  dest.root,
		Exclusions:  exclusions,
		FixSymlinks: fixSymlinks,
		Privileged:  dest.privileged,
		DryRun:      dryRun,
	})
	start := time.Now()
	stats, err := syncer.Run()
	fmte.Printf("%s\n", stats.String())
	fmte.Printf("Completed in %.1fs\n", time.Since(start).Seconds())
	if err != nil {
		return stats, err
	}
	if stats.SymlinkFailures > 0 {
		fmte.Warnf("%d symbolic link(s) could not be written", stats.SymlinkFailures)
	}
	return stats, nil
}

// closeDestination releases the destination's session, logging any failure
func closeDestination(dest *destination) {
	if err := dest.closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		fmte.Warnf("Error while closing the connection: %v", err)
	}
}
