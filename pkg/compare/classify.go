package compare

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/carp/pkg/errors"
	"github.com/arthur-debert/carp/pkg/types"
)

// Classify reports whether path is a regular file or a directory. Symlinks
// are not followed: a symlink, device, socket or fifo is ErrUnsupportedType.
// A missing path is ErrNotFound.
func Classify(fsys types.FS, path string) (types.FileKind, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.KindOther, errors.Wrapf(err, errors.ErrNotFound, "%s does not exist", path)
		}
		return types.KindOther, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	kind := KindOf(info.Mode())
	if kind == types.KindOther {
		return kind, errors.Newf(errors.ErrUnsupportedType,
			"%s is neither a regular file nor a directory", path).
			WithDetail("path", path).
			WithDetail("mode", info.Mode().String())
	}
	return kind, nil
}

// KindOf maps a file mode to a FileKind.
func KindOf(mode fs.FileMode) types.FileKind {
	switch {
	case mode.IsRegular():
		return types.KindFile
	case mode.IsDir():
		return types.KindDirectory
	default:
		return types.KindOther
	}
}
