package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-manu/sftpclone/entity"
	"github.com/pkg/sftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPipedSFTPFS serves the local filesystem through an in-process SFTP server
func newPipedSFTPFS(t *testing.T) *SFTPFS {
	t.Helper()
	clientRd, serverWr := io.Pipe()
	serverRd, clientWr := io.Pipe()
	server, err := sftp.NewServer(struct {
		io.Reader
		io.WriteCloser
	}{serverRd, serverWr})
	require.NoError(t, err)
	go func() {
		_ = server.Serve()
	}()
	client, err := sftp.NewClientPipe(clientRd, clientWr)
	require.NoError(t, err)
	s := NewSFTPFS(client)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestSFTPFS_Operations(t *testing.T) {
	s := newPipedSFTPFS(t)
	root := filepath.ToSlash(t.TempDir())
	local := filepath.Join(t.TempDir(), "local.txt")
	require.NoError(t, os.WriteFile(local, []byte("payload"), 0644))

	dir := path.Join(root, "dir")
	require.NoError(t, s.Mkdir(dir))

	file := path.Join(dir, "file.txt")
	n, err := s.Put(local, file)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	mtime := time.Unix(1_000_000, 0)
	require.NoError(t, s.Chtimes(file, mtime, mtime))
	require.NoError(t, s.Chmod(file, 0600))

	info, err := s.Lstat(file)
	require.NoError(t, err)
	assert.Equal(t, entity.Regular, info.Type)
	assert.Equal(t, int64(7), info.Size)
	assert.Equal(t, int64(1_000_000), info.ModTime.Unix())
	assert.Equal(t, fs.FileMode(0600), info.Permissions())

	link := path.Join(dir, "link")
	require.NoError(t, s.Symlink("file.txt", link))
	target, err := s.ReadLink(link)
	require.NoError(t, err)
	assert.Equal(t, "file.txt", target)

	infos, err := s.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "file.txt", infos[0].Name)
	assert.Equal(t, "link", infos[1].Name)
	assert.Equal(t, entity.Symlink, infos[1].Type)

	require.NoError(t, s.Remove(link))
	require.NoError(t, s.Remove(file))
	require.NoError(t, s.RemoveDirectory(dir))
}

func TestSFTPFS_NotExist(t *testing.T) {
	s := newPipedSFTPFS(t)
	missing := path.Join(filepath.ToSlash(t.TempDir()), "missing")

	_, err := s.Lstat(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "lstat: %v", err)
	_, err = s.Stat(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "stat: %v", err)
	err = s.Remove(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "remove: %v", err)
}

func TestNormaliseError(t *testing.T) {
	assert.NoError(t, normaliseError(nil))
	assert.True(t, errors.Is(normaliseError(&sftp.StatusError{Code: sshFxNoSuchFile}), fs.ErrNotExist))
	assert.False(t, errors.Is(normaliseError(&sftp.StatusError{Code: 3}), fs.ErrNotExist))
}
