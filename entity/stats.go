package entity

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats counts the decisions taken during a run
type Stats struct {
	Uploads            int
	UploadedBytes      int64
	DirectoriesCreated int
	Deletions          int
	SymlinksWritten    int
	SymlinkFailures    int
	Unsupported        int
	Excluded           int
	Unchanged          int
}

// Record counts one decision
func (s *Stats) Record(d Decision) {
	switch d {
	case Upload:
		s.Uploads++
	case CreateDirectory:
		s.DirectoriesCreated++
	case DeleteRecursive:
		s.Deletions++
	case CreateOrUpdateSymlink:
		s.SymlinksWritten++
	case SkipUnsupported:
		s.Unsupported++
	default:
		s.Unchanged++
	}
}

// Changes is the number of decisions that mutated (or, in a dry run, would mutate) the remote tree
func (s Stats) Changes() int {
	return s.Uploads + s.DirectoriesCreated + s.Deletions + s.SymlinksWritten
}

func (s Stats) String() string {
	return fmt.Sprintf("%d uploads (%s), %d directories created, %d deletions, %d symlinks written, "+
		"%d unchanged, %d excluded, %d unsupported",
		s.Uploads, humanize.Bytes(uint64(max(s.UploadedBytes, 0))), s.DirectoriesCreated, s.Deletions,
		s.SymlinksWritten, s.Unchanged, s.Excluded, s.Unsupported)
}
