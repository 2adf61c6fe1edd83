package action

import (
	"fmt"

	rsfs "github.com/m-manu/sftpclone/fs"
)

// MatchModes copies permission bits, access/modification times and, when chown is set,
// numeric ownership of a local node onto the remote path
func MatchModes(remote rsfs.RemoteFS, remotePath string, local rsfs.FileInfo, chown bool) error {
	if err := remote.Chmod(remotePath, local.Permissions()); err != nil {
		return fmt.Errorf("chmod failed on %q: %w", remotePath, err)
	}
	if err := remote.Chtimes(remotePath, local.AccessTime, local.ModTime); err != nil {
		return fmt.Errorf("utime failed on %q: %w", remotePath, err)
	}
	if chown && local.UID >= 0 && local.GID >= 0 {
		if err := remote.Chown(remotePath, local.UID, local.GID); err != nil {
			return fmt.Errorf("chown failed on %q: %w", remotePath, err)
		}
	}
	return nil
}
