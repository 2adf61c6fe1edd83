package entity

import "io/fs"

// NodeType is the top-level kind of a filesystem node, as reported by a non-following stat
type NodeType int8

const (
	Other NodeType = iota
	Directory
	Symlink
	Regular
)

// NodeTypeOf classifies a file mode
func NodeTypeOf(mode fs.FileMode) NodeType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode.IsDir():
		return Directory
	case mode.IsRegular():
		return Regular
	default:
		return Other
	}
}

func (t NodeType) String() string {
	switch t {
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	case Regular:
		return "regular file"
	default:
		return "other"
	}
}
