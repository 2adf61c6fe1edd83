package fs

import (
	"io/fs"
	"time"

	"github.com/m-manu/sftpclone/entity"
)

//go:generate mockgen -destination=mock_remote_fs.go -package=fs . RemoteFS

// RemoteFS is the set of operations the reconciliation engine needs on the mirror side.
// Paths are absolute and slash separated. Operations on a missing node fail with an error
// matching fs.ErrNotExist.
type RemoteFS interface {
	// ReadDir lists a directory, returning non-following attributes sorted by name.
	ReadDir(dirPath string) ([]FileInfo, error)

	// Lstat returns file info without following symlinks.
	Lstat(path string) (FileInfo, error)

	// Stat returns file info, following symlinks.
	Stat(path string) (FileInfo, error)

	// Mkdir creates a single directory.
	Mkdir(path string) error

	// RemoveDirectory removes an empty directory.
	RemoveDirectory(path string) error

	// Remove removes a file or a symlink.
	Remove(path string) error

	// ReadLink returns the target of a symlink.
	ReadLink(path string) (string, error)

	// Symlink creates linkPath pointing at target.
	Symlink(target, linkPath string) error

	// Chmod changes permission bits.
	Chmod(path string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(path string, atime, mtime time.Time) error

	// Chown changes the numeric owner and group.
	Chown(path string, uid, gid int) error

	// Put uploads a local file over the remote one, returning the number of bytes written.
	Put(localPath, remotePath string) (int64, error)

	// Close releases any resources held by the filesystem (e.g. SSH connections).
	Close() error
}

// FileInfo holds the subset of node attributes the engine compares.
type FileInfo struct {
	Name       string
	Type       entity.NodeType
	Size       int64
	Mode       fs.FileMode
	ModTime    time.Time
	AccessTime time.Time
	UID        int
	GID        int
}

// Permissions returns the mode bits that chmod can set.
func (f FileInfo) Permissions() fs.FileMode {
	return f.Mode & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
}
