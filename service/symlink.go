package service

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/m-manu/sftpclone/action"
	"github.com/m-manu/sftpclone/fmte"
)

// ResolveSymlink decides what target, if any, to write for a remote symlink mirroring a local one.
// localLink is the link target as written and absoluteLocalLink the fully resolved one.
//
//   - relative links are written verbatim
//   - absolute links pointing outside localRoot are written verbatim (the remote host probably
//     cannot resolve them, but nothing better is possible)
//   - absolute links pointing inside localRoot get the remote root as prefix when fixSymlinks is
//     set, and are not written at all otherwise
func ResolveSymlink(localLink, absoluteLocalLink, localRoot, remoteRoot string, fixSymlinks bool) (target string, write bool) {
	if !filepath.IsAbs(localLink) {
		return localLink, true
	}
	relativeLink, inside := relativeToRoot(absoluteLocalLink, localRoot)
	if !inside {
		return localLink, true
	}
	if !fixSymlinks {
		return "", false
	}
	return path.Join(remoteRoot, filepath.ToSlash(relativeLink)), true
}

// relativeToRoot strips root from p. The root gets a trailing separator first, so that a sibling
// such as "/data2" is not mistaken for a child of "/data".
func relativeToRoot(p, root string) (string, bool) {
	prefix := strings.TrimSuffix(root, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	return p[len(prefix):], true
}

// absoluteLinkTarget resolves a link target against the directory holding the link, following
// nested symlinks. Trailing components that do not exist are kept as they are.
func absoluteLinkTarget(linkPath, localLink string) string {
	target := localLink
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	return realPath(filepath.Clean(target))
}

func realPath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	parent := filepath.Dir(p)
	if parent == p {
		return p
	}
	return filepath.Join(realPath(parent), filepath.Base(p))
}

func (s *Syncer) checkSymlink(relativePath, localPath, remotePath string) error {
	localLink, err := s.local.ReadLink(localPath)
	if err != nil {
		return fmt.Errorf("couldn't read local link %q: %w", localPath, err)
	}
	target, write := ResolveSymlink(localLink, absoluteLinkTarget(localPath, localLink),
		s.opts.LocalRoot, s.opts.RemoteRoot, s.opts.FixSymlinks)
	if !write {
		fmte.Debugf("Leaving absolute link %s -> %s as it is on the remote side.", localPath, localLink)
		s.unchanged(relativePath)
		return nil
	}
	s.createUpdateSymlink(relativePath, target, remotePath)
	return nil
}

// createUpdateSymlink makes remotePath a symlink to target. Failures are logged and do not stop
// the run: some servers refuse targets whose absolute form differs too much from their own paths.
func (s *Syncer) createUpdateSymlink(relativePath, target, remotePath string) {
	link := action.SymlinkAction{RemotePath: remotePath, Target: target}
	existing, err := s.remote.ReadLink(remotePath)
	if err == nil {
		if existing == target {
			s.unchanged(relativePath)
			return
		}
		link.Replace = true
	}
	if err := s.apply(link); err != nil {
		s.stats.SymlinkFailures++
		fmte.LogErrorf("error while symlinking %s to %s: %v", remotePath, target, err)
	}
}
