package action

import (
	"errors"
	"io/fs"

	"github.com/m-manu/sftpclone/entity"
	"github.com/m-manu/sftpclone/fmte"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// SyncAction is a single change to the remote tree, decided by comparing a local node with its
// remote counterpart
type SyncAction interface {
	// Decision is the kind of change this action makes
	Decision() entity.Decision
	// Perform must apply the change on the remote side
	Perform(remote rsfs.RemoteFS) error
	String() string
}

// removeNode removes a single non-directory node. A node that is already gone was removed by
// someone else in the meantime; that is logged and not treated as a failure.
func removeNode(remote rsfs.RemoteFS, remotePath string) error {
	err := remote.Remove(remotePath)
	if errors.Is(err, fs.ErrNotExist) {
		fmte.LogErrorf("error while removing %s: %v", remotePath, err)
		return nil
	}
	return err
}
