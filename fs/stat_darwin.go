//go:build darwin

package fs

import (
	"os"
	"syscall"
	"time"
)

func accessTimeOf(info os.FileInfo) time.Time {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(sys.Atimespec.Sec, sys.Atimespec.Nsec)
}

func ownerOf(info os.FileInfo) (uid, gid int) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return -1, -1
	}
	return int(sys.Uid), int(sys.Gid)
}
