package entity

// Decision is the outcome of reconciling a single node
type Decision int8

const (
	NoOp Decision = iota
	Upload
	CreateDirectory
	DeleteRecursive
	CreateOrUpdateSymlink
	SkipUnsupported
)

func (d Decision) String() string {
	switch d {
	case Upload:
		return "upload"
	case CreateDirectory:
		return "create directory"
	case DeleteRecursive:
		return "delete"
	case CreateOrUpdateSymlink:
		return "create or update symlink"
	case SkipUnsupported:
		return "skip unsupported"
	default:
		return "no-op"
	}
}
