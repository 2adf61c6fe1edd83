package action

import (
	"fmt"

	"github.com/m-manu/sftpclone/entity"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// SymlinkAction is a SyncAction for writing a remote symlink. Replace is set when a remote link
// with a different target is already in place.
type SymlinkAction struct {
	RemotePath string
	Target     string
	Replace    bool
}

func (a SymlinkAction) Decision() entity.Decision {
	return entity.CreateOrUpdateSymlink
}

func (a SymlinkAction) Perform(remote rsfs.RemoteFS) error {
	if a.Replace {
		if err := removeNode(remote, a.RemotePath); err != nil {
			return fmt.Errorf("couldn't remove stale link %q: %w", a.RemotePath, err)
		}
	}
	if err := remote.Symlink(a.Target, a.RemotePath); err != nil {
		return fmt.Errorf("couldn't link %q to %q: %w", a.RemotePath, a.Target, err)
	}
	return nil
}

func (a SymlinkAction) String() string {
	if a.Replace {
		return fmt.Sprintf(`relink "%s" to "%s"`, a.RemotePath, a.Target)
	}
	return fmt.Sprintf(`link "%s" to "%s"`, a.RemotePath, a.Target)
}
