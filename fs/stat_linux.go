//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"
)

// accessTimeOf returns the last access time, falling back to mtime when the platform
// stat structure is unavailable.
func accessTimeOf(info os.FileInfo) time.Time {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(sys.Atim.Sec, sys.Atim.Nsec)
}

func ownerOf(info os.FileInfo) (uid, gid int) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return -1, -1
	}
	return int(sys.Uid), int(sys.Gid)
}
