package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/m-manu/sftpclone/entity"
	"github.com/pkg/sftp"
)

// SSH_FX_NO_SUCH_FILE status code of the SFTP protocol
const sshFxNoSuchFile = 2

// SFTPFS implements RemoteFS over an SFTP connection.
type SFTPFS struct {
	client *sftp.Client
}

var _ RemoteFS = (*SFTPFS)(nil)

// NewSFTPFS wraps an existing sftp.Client in a RemoteFS.
func NewSFTPFS(client *sftp.Client) *SFTPFS {
	return &SFTPFS{client: client}
}

func (s *SFTPFS) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := s.client.ReadDir(dirPath)
	if err != nil {
		return nil, normaliseError(err)
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, sftpFileInfo(e))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *SFTPFS) Lstat(p string) (FileInfo, error) {
	info, err := s.client.Lstat(p)
	if err != nil {
		return FileInfo{}, normaliseError(err)
	}
	return sftpFileInfo(info), nil
}

func (s *SFTPFS) Stat(p string) (FileInfo, error) {
	info, err := s.client.Stat(p)
	if err != nil {
		return FileInfo{}, normaliseError(err)
	}
	return sftpFileInfo(info), nil
}

func (s *SFTPFS) Mkdir(p string) error {
	return normaliseError(s.client.Mkdir(p))
}

func (s *SFTPFS) RemoveDirectory(p string) error {
	return normaliseError(s.client.RemoveDirectory(p))
}

func (s *SFTPFS) Remove(p string) error {
	return normaliseError(s.client.Remove(p))
}

func (s *SFTPFS) ReadLink(p string) (string, error) {
	target, err := s.client.ReadLink(p)
	return target, normaliseError(err)
}

func (s *SFTPFS) Symlink(target, linkPath string) error {
	return normaliseError(s.client.Symlink(target, linkPath))
}

func (s *SFTPFS) Chmod(p string, mode fs.FileMode) error {
	return normaliseError(s.client.Chmod(p, mode))
}

func (s *SFTPFS) Chtimes(p string, atime, mtime time.Time) error {
	return normaliseError(s.client.Chtimes(p, atime, mtime))
}

func (s *SFTPFS) Chown(p string, uid, gid int) error {
	return normaliseError(s.client.Chown(p, uid, gid))
}

func (s *SFTPFS) Put(localPath, remotePath string) (int64, error) {
	in, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("cannot open source %q: %w", localPath, err)
	}
	defer in.Close()

	out, err := s.client.OpenFile(remotePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return 0, fmt.Errorf("cannot create remote file %q: %w", remotePath, normaliseError(err))
	}
	defer out.Close()

	n, err := out.ReadFrom(in)
	if err != nil {
		return n, fmt.Errorf("upload failed from %q to %q: %w", localPath, remotePath, err)
	}
	return n, out.Close()
}

// Getwd returns the initial working directory of the session, which is the login user's home
// on common servers.
func (s *SFTPFS) Getwd() (string, error) {
	return s.client.Getwd()
}

func (s *SFTPFS) Close() error {
	return s.client.Close()
}

func sftpFileInfo(info fs.FileInfo) FileInfo {
	fi := FileInfo{
		Name:       info.Name(),
		Type:       entity.NodeTypeOf(info.Mode()),
		Size:       info.Size(),
		Mode:       info.Mode(),
		ModTime:    info.ModTime(),
		AccessTime: info.ModTime(),
		UID:        -1,
		GID:        -1,
	}
	if stat, ok := info.Sys().(*sftp.FileStat); ok {
		fi.AccessTime = time.Unix(int64(stat.Atime), 0)
		fi.UID = int(stat.UID)
		fi.GID = int(stat.GID)
	}
	return fi
}

// normaliseError makes "no such file" status codes match fs.ErrNotExist, whichever
// way the client reported them.
func normaliseError(err error) error {
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return err
	}
	var status *sftp.StatusError
	if errors.As(err, &status) && status.Code == sshFxNoSuchFile {
		return fmt.Errorf("%w: %v", fs.ErrNotExist, err)
	}
	return err
}
