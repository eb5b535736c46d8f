package compare

import (
	"bytes"
	"io"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/types"
)

const chunkSize = 32 * 1024

// Identical compares two regular files byte for byte. Size and mtime are
// never used as a shortcut.
func Identical(fsys types.FS, pathA, pathB string) (bool, error) {
	a, err := fsys.Open(pathA)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", pathA)
	}
	defer func() { _ = a.Close() }()

	b, err := fsys.Open(pathB)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", pathB)
	}
	defer func() { _ = b.Close() }()

	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)
	for {
		nA, errA := io.ReadFull(a, bufA)
		nB, errB := io.ReadFull(b, bufB)

		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}

		endA, err := chunkEnd(errA, pathA)
		if err != nil {
			return false, err
		}
		endB, err := chunkEnd(errB, pathB)
		if err != nil {
			return false, err
		}
		if endA || endB {
			return endA == endB, nil
		}
	}
}

// chunkEnd reports whether a ReadFull result marks the end of the file.
func chunkEnd(err error, path string) (bool, error) {
	switch err {
	case nil:
		return false, nil
	case io.EOF, io.ErrUnexpectedEOF:
		return true, nil
	default:
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
}
