package action

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/m-manu/sftpclone/entity"
	"github.com/m-manu/sftpclone/fmte"
	rsfs "github.com/m-manu/sftpclone/fs"
)

// DeleteAction is a SyncAction for removing a remote node. Directories are emptied first,
// deepest entries before their parents.
type DeleteAction struct {
	RemotePath string
	Type       entity.NodeType
}

func (a DeleteAction) Decision() entity.Decision {
	return entity.DeleteRecursive
}

func (a DeleteAction) Perform(remote rsfs.RemoteFS) error {
	if a.Type != entity.Directory {
		return removeNode(remote, a.RemotePath)
	}
	type pendingDir struct {
		path   string
		listed bool
	}
	stack := []pendingDir{{path: a.RemotePath}}
	for len(stack) > 0 {
		top := len(stack) - 1
		dir := stack[top].path
		if stack[top].listed {
			stack = stack[:top]
			if err := remote.RemoveDirectory(dir); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					fmte.LogErrorf("error while removing %s: %v", dir, err)
					continue
				}
				return fmt.Errorf("couldn't remove directory %q: %w", dir, err)
			}
			continue
		}
		stack[top].listed = true
		children, err := remote.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmte.LogErrorf("error while listing %s: %v", dir, err)
				stack = stack[:top]
				continue
			}
			return fmt.Errorf("couldn't list directory %q: %w", dir, err)
		}
		for _, child := range children {
			childPath := path.Join(dir, child.Name)
			if child.Type == entity.Directory {
				stack = append(stack, pendingDir{path: childPath})
				continue
			}
			if err := removeNode(remote, childPath); err != nil {
				return fmt.Errorf("couldn't remove %q: %w", childPath, err)
			}
		}
	}
	return nil
}

func (a DeleteAction) String() string {
	return fmt.Sprintf(`delete %s "%s"`, a.Type, a.RemotePath)
}
