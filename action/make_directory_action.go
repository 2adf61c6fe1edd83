package action

import (
	"fmt"

	"github.com/m-manu/sftpclone/entity"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// MakeDirectoryAction is a SyncAction for creating a remote directory
type MakeDirectoryAction struct {
	RemotePath string
}

func (a MakeDirectoryAction) Decision() entity.Decision {
	return entity.CreateDirectory
}

// Perform the 'create directory' action
func (a MakeDirectoryAction) Perform(remote rsfs.RemoteFS) error {
	if err := remote.Mkdir(a.RemotePath); err != nil {
		return fmt.Errorf("couldn't create directory %q: %w", a.RemotePath, err)
	}
	return nil
}

func (a MakeDirectoryAction) String() string {
	return fmt.Sprintf(`create directory "%s"`, a.RemotePath)
}
