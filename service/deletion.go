package service

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/m-manu/sftpclone/action"
	"github.com/m-manu/sftpclone/entity"
	"github.com/m-manu/sftpclone/fmte"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// ReconcileDeletions walks the remote tree under relativePath and removes every remote node that
// has no local counterpart of the same type. Remote symlinks are judged by the link itself and
// are never descended into, even when they resolve to a directory.
func (s *Syncer) ReconcileDeletions(relativePath string) error {
	pending := []string{relativePath}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := s.remote.ReadDir(s.remotePath(dir))
		if err != nil {
			return fmt.Errorf("couldn't list remote directory %q: %w", s.remotePath(dir), err)
		}
		subdirs := make([]string, 0, len(entries))
		for _, entry := range entries {
			relativeChild := path.Join(dir, entry.Name)
			descend, err := s.checkForDeletion(relativeChild)
			if err != nil {
				return err
			}
			if descend {
				subdirs = append(subdirs, relativeChild)
			}
		}
		for i := len(subdirs) - 1; i >= 0; i-- {
			pending = append(pending, subdirs[i])
		}
	}
	return nil
}

// checkForDeletion deletes a single remote node if needed and reports whether the walk should
// continue into it
func (s *Syncer) checkForDeletion(relativePath string) (bool, error) {
	if s.isExcluded(relativePath) {
		fmte.Debugf("Leaving remote counterpart of excluded file %s untouched.", s.localPath(relativePath))
		return false, nil
	}
	remotePath := s.remotePath(relativePath)
	remoteInfo, err := s.remote.Lstat(remotePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("couldn't stat remote %q: %w", remotePath, err)
	}
	mustDelete, err := s.mustBeDeleted(relativePath, remoteInfo)
	if err != nil {
		return false, err
	}
	if mustDelete {
		return false, s.apply(action.DeleteAction{RemotePath: remotePath, Type: remoteInfo.Type})
	}
	return remoteInfo.Type == entity.Directory, nil
}

// mustBeDeleted tells whether a remote node is stale: nothing exists locally at the same relative
// path (a broken local symlink counts as existing), or the local node has a different type
func (s *Syncer) mustBeDeleted(relativePath string, remoteInfo rsfs.FileInfo) (bool, error) {
	localInfo, err := s.local.Lstat(s.localPath(relativePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("couldn't stat local %q: %w", s.localPath(relativePath), err)
	}
	return localInfo.Type != remoteInfo.Type, nil
}
