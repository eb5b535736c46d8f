package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem surface carp needs to classify, compare and mutate
// trees.
type FS interface {
	// Lstat must not follow symlinks.
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Open(name string) (io.ReadCloser, error)

	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}
