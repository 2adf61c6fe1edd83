package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/m-manu/sftpclone/entity"
)

// LocalFS implements RemoteFS using standard os.* calls. The engine reads the local tree through it,
// and it can serve as the mirror side when the destination is a local directory.
type LocalFS struct{}

var _ RemoteFS = (*LocalFS)(nil)

// NewLocalFS returns a new LocalFS.
func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

func (l *LocalFS) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		info, infoErr := e.Info()
		if infoErr != nil {
			return nil, fmt.Errorf("couldn't get metadata of %q in %q: %w", e.Name(), dirPath, infoErr)
		}
		infos = append(infos, fileInfoFromOS(info))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (l *LocalFS) Lstat(path string) (FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return fileInfoFromOS(info), nil
}

func (l *LocalFS) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return fileInfoFromOS(info), nil
}

func (l *LocalFS) Mkdir(path string) error {
	return os.Mkdir(path, 0755)
}

func (l *LocalFS) RemoveDirectory(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", path)
	}
	return os.Remove(path)
}

func (l *LocalFS) Remove(path string) error {
	return os.Remove(path)
}

func (l *LocalFS) ReadLink(path string) (string, error) {
	return os.Readlink(path)
}

func (l *LocalFS) Symlink(target, linkPath string) error {
	return os.Symlink(target, linkPath)
}

func (l *LocalFS) Chmod(path string, mode fs.FileMode) error {
	return os.Chmod(path, mode)
}

func (l *LocalFS) Chtimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

func (l *LocalFS) Chown(path string, uid, gid int) error {
	return os.Lchown(path, uid, gid)
}

func (l *LocalFS) Put(localPath, remotePath string) (int64, error) {
	in, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("cannot open source %q: %w", localPath, err)
	}
	defer in.Close()

	out, err := os.OpenFile(remotePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("cannot create destination %q: %w", remotePath, err)
	}
	defer out.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return n, fmt.Errorf("copy failed from %q to %q: %w", localPath, remotePath, err)
	}
	return n, out.Close()
}

func (l *LocalFS) Close() error {
	return nil
}

func fileInfoFromOS(info os.FileInfo) FileInfo {
	uid, gid := ownerOf(info)
	return FileInfo{
		Name:       info.Name(),
		Type:       entity.NodeTypeOf(info.Mode()),
		Size:       info.Size(),
		Mode:       info.Mode(),
		ModTime:    info.ModTime(),
		AccessTime: accessTimeOf(info),
		UID:        uid,
		GID:        gid,
	}
}
