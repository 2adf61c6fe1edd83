package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-manu/sftpclone/entity"
	rsfs "github.com/m-manu/sftpclone/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const mockRemoteRoot = "/r"

func newMockSyncer(t *testing.T, local string, privileged bool) (*Syncer, *rsfs.MockRemoteFS) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := rsfs.NewMockRemoteFS(ctrl)
	remote.EXPECT().Stat(mockRemoteRoot).Return(rsfs.FileInfo{Name: "r", Type: entity.Directory}, nil)
	return NewSyncer(remote, Options{LocalRoot: local, RemoteRoot: mockRemoteRoot, Privileged: privileged}), remote
}

func TestSyncer_SymlinkFailureIsNotFatal(t *testing.T) {
	local, _ := newRoots(t)
	symlink(t, "target", filepath.Join(local, "link"))
	syncer, remote := newMockSyncer(t, local, false)
	remote.EXPECT().ReadDir(mockRemoteRoot).Return(nil, nil)
	remote.EXPECT().ReadLink("/r/link").Return("", fs.ErrNotExist)
	remote.EXPECT().Symlink("target", "/r/link").Return(errors.New("bad message"))

	stats, err := syncer.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SymlinkFailures)
	assert.Equal(t, 0, stats.SymlinksWritten)
}

func TestSyncer_RemoteStatFailureAbortsRun(t *testing.T) {
	local, _ := newRoots(t)
	writeFile(t, filepath.Join(local, "f"), "f", 1000)
	syncer, remote := newMockSyncer(t, local, false)
	remote.EXPECT().ReadDir(mockRemoteRoot).Return(nil, nil)
	remote.EXPECT().Lstat("/r/f").Return(rsfs.FileInfo{}, fs.ErrPermission)

	_, err := syncer.Run()
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestSyncer_AlreadyRemovedNodeIsNotFatal(t *testing.T) {
	local, _ := newRoots(t)
	syncer, remote := newMockSyncer(t, local, false)
	remote.EXPECT().ReadDir(mockRemoteRoot).Return([]rsfs.FileInfo{
		{Name: "gone", Type: entity.Regular},
		{Name: "vanished", Type: entity.Regular},
	}, nil)
	remote.EXPECT().Lstat("/r/gone").Return(rsfs.FileInfo{Name: "gone", Type: entity.Regular}, nil)
	remote.EXPECT().Remove("/r/gone").Return(fs.ErrNotExist)
	remote.EXPECT().Lstat("/r/vanished").Return(rsfs.FileInfo{}, fs.ErrNotExist)

	_, err := syncer.Run()
	assert.NoError(t, err)
}

func TestSyncer_RemoveFailureAbortsRun(t *testing.T) {
	local, _ := newRoots(t)
	syncer, remote := newMockSyncer(t, local, false)
	remote.EXPECT().ReadDir(mockRemoteRoot).Return([]rsfs.FileInfo{{Name: "locked", Type: entity.Regular}}, nil)
	remote.EXPECT().Lstat("/r/locked").Return(rsfs.FileInfo{Name: "locked", Type: entity.Regular}, nil)
	remote.EXPECT().Remove("/r/locked").Return(fs.ErrPermission)

	_, err := syncer.Run()
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestSyncer_PrivilegedDirectoryGetsOwner(t *testing.T) {
	local, _ := newRoots(t)
	mkdir(t, filepath.Join(local, "d"))
	require.NoError(t, os.Chmod(filepath.Join(local, "d"), 0755))
	syncer, remote := newMockSyncer(t, local, true)
	gomock.InOrder(
		remote.EXPECT().ReadDir(mockRemoteRoot).Return(nil, nil),
		remote.EXPECT().Stat("/r/d").Return(rsfs.FileInfo{}, fs.ErrNotExist),
		remote.EXPECT().Mkdir("/r/d").Return(nil),
		remote.EXPECT().Chmod("/r/d", fs.FileMode(0755)).Return(nil),
		remote.EXPECT().Chtimes("/r/d", gomock.Any(), gomock.Any()).Return(nil),
		remote.EXPECT().Chown("/r/d", os.Getuid(), os.Getgid()).Return(nil),
	)

	stats, err := syncer.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DirectoriesCreated)
}

func TestSyncer_RemoteSymlinkToDirectoryIsNotDescended(t *testing.T) {
	local, _ := newRoots(t)
	mkdir(t, filepath.Join(local, "shared"))
	symlink(t, "shared", filepath.Join(local, "alias"))
	syncer, remote := newMockSyncer(t, local, false)
	remote.EXPECT().ReadDir(mockRemoteRoot).Return([]rsfs.FileInfo{{Name: "alias", Type: entity.Symlink}}, nil)
	remote.EXPECT().Lstat("/r/alias").Return(rsfs.FileInfo{Name: "alias", Type: entity.Symlink}, nil)
	// creation pass
	remote.EXPECT().ReadLink("/r/alias").Return("shared", nil)
	remote.EXPECT().Stat("/r/shared").Return(rsfs.FileInfo{Name: "shared", Type: entity.Directory}, nil)
	remote.EXPECT().Chmod("/r/shared", gomock.Any()).Return(nil)
	remote.EXPECT().Chtimes("/r/shared", gomock.Any(), gomock.Any()).Return(nil)

	stats, err := syncer.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Changes())
}
