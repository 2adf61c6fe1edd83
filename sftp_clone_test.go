package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/m-manu/sftpclone/fmte"
	rsfs "github.com/m-manu/sftpclone/fs"
	"github.com/m-manu/sftpclone/remote"
	"github.com/m-manu/sftpclone/service"
	"github.com/pkg/sftp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultFolderPerms = 0755

func init() {
	fmte.Off()
	fmte.SetLevel(fmte.LevelCritical)
}

// createLocalTree lays out a small tree with a file, a nested directory, an excluded
// directory and an absolute symlink pointing inside the tree
func createLocalTree(t *testing.T) string {
	t.Helper()
	root, err := resolveLocalRoot(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "deep"), defaultFolderPerms))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "cache"), defaultFolderPerms))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "deep", "notes.md"), []byte("# notes"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "cache", "blob"), []byte("temporary"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(root, "readme.txt"), filepath.Join(root, "latest")))
	return root
}

func writeExcludeFile(t *testing.T, lines string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "exclude.txt")
	require.NoError(t, os.WriteFile(p, []byte(lines), 0644))
	return p
}

func TestSftpClone_LocalDestination(t *testing.T) {
	localRoot := createLocalTree(t)
	remoteDir := t.TempDir()
	exclusions, err := loadExclusions(writeExcludeFile(t, "# caches\n/cache\n"), localRoot)
	require.NoError(t, err)

	dest, err := openLocalDestination(remote.Location{Path: remoteDir})
	require.NoError(t, err)
	defer closeDestination(dest)

	stats, err := sftpClone(localRoot, exclusions, dest, true, false)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Uploads)
	assert.Equal(t, 2, stats.DirectoriesCreated)
	assert.Equal(t, 1, stats.SymlinksWritten)
	assert.Equal(t, 1, stats.Excluded)

	content, err := os.ReadFile(filepath.Join(remoteDir, "docs", "deep", "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "# notes", string(content))
	assert.NoDirExists(t, filepath.Join(remoteDir, "cache"))
	target, err := os.Readlink(filepath.Join(remoteDir, "latest"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest.root, "readme.txt"), target)

	stats, err = sftpClone(localRoot, exclusions, dest, true, false)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Changes(), "second run must not change anything: %s", stats)
}

func TestSftpClone_DryRun(t *testing.T) {
	localRoot := createLocalTree(t)
	remoteDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(remoteDir, "stale.txt"), []byte("old"), 0644))

	dest, err := openLocalDestination(remote.Location{Path: remoteDir})
	require.NoError(t, err)
	exclusions, err := loadExclusions("", localRoot)
	require.NoError(t, err)

	stats, err := sftpClone(localRoot, exclusions, dest, false, true)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Deletions)
	assert.Positive(t, stats.Uploads)
	assert.FileExists(t, filepath.Join(remoteDir, "stale.txt"))
	assert.NoFileExists(t, filepath.Join(remoteDir, "readme.txt"))
}

// pipedDestination serves the local filesystem through an in-process SFTP server
func pipedDestination(t *testing.T, root string) *destination {
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
	sftpFS := rsfs.NewSFTPFS(client)
	dest := &destination{fs: sftpFS, root: filepath.ToSlash(root), closer: sftpFS}
	t.Cleanup(func() {
		closeDestination(dest)
	})
	return dest
}

func TestSftpClone_SFTPDestination(t *testing.T) {
	localRoot := createLocalTree(t)
	remoteDir := filepath.Join(t.TempDir(), "mirror")
	require.NoError(t, os.MkdirAll(filepath.Join(remoteDir, "docs", "obsolete"), defaultFolderPerms))
	require.NoError(t, os.WriteFile(filepath.Join(remoteDir, "docs", "obsolete", "x"), []byte("x"), 0644))
	dest := pipedDestination(t, remoteDir)
	exclusions, err := loadExclusions("", localRoot)
	require.NoError(t, err)

	stats, err := sftpClone(localRoot, exclusions, dest, false, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Deletions)
	assert.Equal(t, 3, stats.Uploads)
	assert.NoDirExists(t, filepath.Join(remoteDir, "docs", "obsolete"))

	content, err := os.ReadFile(filepath.Join(remoteDir, "cache", "blob"))
	require.NoError(t, err)
	assert.Equal(t, "temporary", string(content))

	localInfo, err := os.Stat(filepath.Join(localRoot, "readme.txt"))
	require.NoError(t, err)
	remoteInfo, err := os.Stat(filepath.Join(remoteDir, "readme.txt"))
	require.NoError(t, err)
	assert.Equal(t, localInfo.ModTime().Unix(), remoteInfo.ModTime().Unix())
	assert.Equal(t, localInfo.Mode().Perm(), remoteInfo.Mode().Perm())

	stats, err = sftpClone(localRoot, exclusions, dest, false, false)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Changes(), "second run must not change anything: %s", stats)
}

func TestResolveLocalRoot(t *testing.T) {
	_, err := resolveLocalRoot(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, service.ErrLocalRootMissing))

	targetDir := t.TempDir()
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(targetDir, link))
	resolved, err := resolveLocalRoot(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(targetDir)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}

func TestLoadExclusions(t *testing.T) {
	root := t.TempDir()
	exclusions, err := loadExclusions("", root)
	require.NoError(t, err)
	assert.Equal(t, 0, exclusions.Cardinality())

	_, err = loadExclusions(filepath.Join(root, "missing.txt"), root)
	assert.Error(t, err)
}

func TestConnectionExitCode(t *testing.T) {
	assert.Equal(t, exitCodeInvalidArgs, connectionExitCode(remote.ErrNoCredentials))
	assert.Equal(t, exitCodeInvalidArgs, connectionExitCode(fmt.Errorf("key: %w", remote.ErrIncorrectPassphrase)))
	assert.Equal(t, exitCodeConnectionError, connectionExitCode(remote.ErrUnknownHost))
}

func TestIsPrivilegedLogin(t *testing.T) {
	assert.True(t, isPrivilegedLogin(remote.Location{IsRemote: true, User: "root", Host: "h"}))
	assert.False(t, isPrivilegedLogin(remote.Location{IsRemote: true, User: "alice", Host: "h"}))

	// Without a user the session logs in as the user running the process
	current, err := user.Current()
	require.NoError(t, err)
	assert.Equal(t, current.Username == "root", isPrivilegedLogin(remote.Location{IsRemote: true, Host: "h"}))
}

func TestHelpTextStatesSSHConfigPrecedence(t *testing.T) {
	assert.Contains(t, helpText, "take precedence over the ssh_config values")
}
