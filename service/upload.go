package service

import rsfs "github.com/m-manu/sftpclone/fs"

// NeedsUpload tells whether a remote regular file is stale. Modification times are compared in
// whole seconds, so a sub-second local change that keeps the size is not detected.
func NeedsUpload(local, remote rsfs.FileInfo) bool {
	return local.Size != remote.Size || local.ModTime.Unix() != remote.ModTime.Unix()
}
