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

type creationStep int8

const (
	listDirectory creationStep = iota
	reconcileNode
	finishDirectory
)

type creationTask struct {
	step         creationStep
	relativePath string
	local        rsfs.FileInfo
}

// ReconcileCreations walks the local tree under relativePath, parents before children, and
// creates, uploads or relinks every node whose remote counterpart is missing or outdated.
// Directory permissions and times are applied once the directory's children are done.
func (s *Syncer) ReconcileCreations(relativePath string) error {
	stack := []creationTask{{step: listDirectory, relativePath: relativePath}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch task.step {
		case listDirectory:
			entries, err := s.local.ReadDir(s.localPath(task.relativePath))
			if err != nil {
				return fmt.Errorf("couldn't list local directory %q: %w", s.localPath(task.relativePath), err)
			}
			for i := len(entries) - 1; i >= 0; i-- {
				stack = append(stack, creationTask{
					step:         reconcileNode,
					relativePath: path.Join(task.relativePath, entries[i].Name),
					local:        entries[i],
				})
			}
		case reconcileNode:
			descend, err := s.checkForUploadCreate(task.relativePath, task.local)
			if err != nil {
				return err
			}
			if descend {
				stack = append(stack,
					creationTask{step: finishDirectory, relativePath: task.relativePath, local: task.local},
					creationTask{step: listDirectory, relativePath: task.relativePath},
				)
			}
		case finishDirectory:
			if s.opts.DryRun {
				continue
			}
			if err := action.MatchModes(s.remote, s.remotePath(task.relativePath), task.local, s.opts.Privileged); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkForUploadCreate reconciles a single local node and reports whether it is a directory
// to descend into
func (s *Syncer) checkForUploadCreate(relativePath string, local rsfs.FileInfo) (bool, error) {
	localPath := s.localPath(relativePath)
	if s.isExcluded(relativePath) {
		fmte.Infof("Skipping excluded file %s.", localPath)
		s.stats.Excluded++
		return false, nil
	}
	remotePath := s.remotePath(relativePath)

	switch local.Type {
	case entity.Directory:
		// Anything other than a directory at this path was removed by the deletion pass
		_, err := s.remote.Stat(remotePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := s.apply(action.MakeDirectoryAction{RemotePath: remotePath}); err != nil {
				return false, err
			}
		case err != nil:
			return false, fmt.Errorf("couldn't stat remote %q: %w", remotePath, err)
		default:
			s.unchanged(relativePath)
		}
		return true, nil

	case entity.Symlink:
		return false, s.checkSymlink(relativePath, localPath, remotePath)

	case entity.Regular:
		upload := action.UploadFileAction{
			LocalPath:  localPath,
			RemotePath: remotePath,
			Local:      local,
			Chown:      s.opts.Privileged,
		}
		remoteInfo, err := s.remote.Lstat(remotePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return false, fmt.Errorf("couldn't stat remote %q: %w", remotePath, err)
		case !NeedsUpload(local, remoteInfo):
			s.unchanged(relativePath)
			return false, nil
		}
		if err := s.apply(upload); err != nil {
			return false, err
		}
		s.stats.UploadedBytes += local.Size
		return false, nil

	default:
		fmte.Warnf("Skipping unsupported file %s.", localPath)
		s.stats.Record(entity.SkipUnsupported)
		return false, nil
	}
}
