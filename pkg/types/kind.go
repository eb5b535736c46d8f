package types

// FileKind is the classification of a filesystem entry.
type FileKind int

const (
	KindOther FileKind = iota
	KindFile
	KindDirectory
)

// String returns the name used in operator messages.
func (k FileKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "other"
	}
}
