package service

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	set "github.com/deckarep/golang-set/v2"
	"github.com/m-manu/sftpclone/action"
	"github.com/m-manu/sftpclone/entity"
	"github.com/m-manu/sftpclone/fmte"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// ErrLocalRootMissing is returned when the local tree to mirror does not exist
var ErrLocalRootMissing = errors.New("local path must exist")

// Options are the inputs of a run. They are resolved by the caller before the engine starts
// and stay read-only for the whole run.
type Options struct {
	// LocalRoot is the absolute, symlink-free path of the tree to mirror
	LocalRoot string
	// RemoteRoot is the absolute slash-separated path of the mirror
	RemoteRoot string
	// Exclusions holds absolute local paths that are neither mirrored nor touched remotely
	Exclusions set.Set[string]
	// FixSymlinks rewrites absolute links pointing inside the local tree to the remote root
	FixSymlinks bool
	// Privileged is set when the remote identity may change ownership
	Privileged bool
	// DryRun logs decisions without changing anything remotely
	DryRun bool
}

// Syncer makes a remote tree an exact mirror of a local one. It owns the remote session for the
// duration of a run and must not be used from more than one goroutine.
type Syncer struct {
	local  *rsfs.LocalFS
	remote rsfs.RemoteFS
	opts   Options
	stats  entity.Stats
}

// NewSyncer creates a Syncer writing through the given remote filesystem
func NewSyncer(remote rsfs.RemoteFS, opts Options) *Syncer {
	if opts.Exclusions == nil {
		opts.Exclusions = set.NewThreadUnsafeSet[string]()
	}
	opts.LocalRoot = filepath.Clean(opts.LocalRoot)
	opts.RemoteRoot = path.Clean(opts.RemoteRoot)
	return &Syncer{
		local:  rsfs.NewLocalFS(),
		remote: remote,
		opts:   opts,
	}
}

// Run removes stale remote nodes and then creates, uploads and relinks whatever is missing or
// outdated. The deletion pass always completes before the creation pass starts, so a path whose
// type changed locally is freed before it is recreated.
func (s *Syncer) Run() (entity.Stats, error) {
	s.stats = entity.Stats{}
	if info, err := s.local.Stat(s.opts.LocalRoot); err != nil || info.Type != entity.Directory {
		return s.stats, fmt.Errorf("%w: %s", ErrLocalRootMissing, s.opts.LocalRoot)
	}
	remoteRootExists, err := s.prepareRemoteRoot()
	if err != nil {
		return s.stats, err
	}
	if remoteRootExists {
		if err := s.ReconcileDeletions(""); err != nil {
			return s.stats, fmt.Errorf("error while removing stale remote files: %w", err)
		}
	}
	if err := s.ReconcileCreations(""); err != nil {
		return s.stats, fmt.Errorf("error while uploading local files: %w", err)
	}
	return s.stats, nil
}

// prepareRemoteRoot creates the remote root when it is missing. It reports whether the root
// exists afterwards (which is not the case in a dry run).
func (s *Syncer) prepareRemoteRoot() (bool, error) {
	info, err := s.remote.Stat(s.opts.RemoteRoot)
	if err == nil {
		if info.Type != entity.Directory {
			return false, fmt.Errorf("remote path %q is a %s, not a directory", s.opts.RemoteRoot, info.Type)
		}
		return true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("couldn't access remote path %q: %w", s.opts.RemoteRoot, err)
	}
	fmte.Infof("Remote path %s does not exist, creating it.", s.opts.RemoteRoot)
	if err := s.apply(action.MakeDirectoryAction{RemotePath: s.opts.RemoteRoot}); err != nil {
		return false, err
	}
	return !s.opts.DryRun, nil
}

// apply performs an action (unless in a dry run) and counts its decision once it succeeded
func (s *Syncer) apply(a action.SyncAction) error {
	if s.opts.DryRun {
		fmte.Infof("%s (dry run)", a)
		s.stats.Record(a.Decision())
		return nil
	}
	fmte.Infof("%s", a)
	if err := a.Perform(s.remote); err != nil {
		return err
	}
	s.stats.Record(a.Decision())
	return nil
}

func (s *Syncer) unchanged(relativePath string) {
	fmte.Debugf("%s is up to date", relativePath)
	s.stats.Record(entity.NoOp)
}

func (s *Syncer) localPath(relativePath string) string {
	return filepath.Join(s.opts.LocalRoot, filepath.FromSlash(relativePath))
}

func (s *Syncer) remotePath(relativePath string) string {
	return path.Join(s.opts.RemoteRoot, relativePath)
}

func (s *Syncer) isExcluded(relativePath string) bool {
	return s.opts.Exclusions.Contains(s.localPath(relativePath))
}
