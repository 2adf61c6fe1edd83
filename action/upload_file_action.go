package action

import (
	"fmt"

	"github.com/m-manu/sftpclone/entity"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// UploadFileAction is a SyncAction for creating or overwriting a remote regular file with the
// whole content of a local one
type UploadFileAction struct {
	LocalPath  string
	RemotePath string
	Local      rsfs.FileInfo
	Chown      bool
}

func (a UploadFileAction) Decision() entity.Decision {
	return entity.Upload
}

// Perform uploads the file and then copies permission bits, times and (optionally) ownership
func (a UploadFileAction) Perform(remote rsfs.RemoteFS) error {
	if _, err := remote.Put(a.LocalPath, a.RemotePath); err != nil {
		return err
	}
	return MatchModes(remote, a.RemotePath, a.Local, a.Chown)
}

func (a UploadFileAction) String() string {
	return fmt.Sprintf(`upload "%s" to "%s"`, a.LocalPath, a.RemotePath)
}
