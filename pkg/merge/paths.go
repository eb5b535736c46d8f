package merge

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/carp/pkg/types"
)

// ResolvePair derives the current and candidate paths of arg. An argument
// ending in suffix names the candidate; any other names the current object.
func ResolvePair(arg, suffix string) types.PathPair {
	clean := filepath.Clean(arg)
	if strings.HasSuffix(clean, suffix) && len(clean) > len(suffix) {
		return types.PathPair{Current: strings.TrimSuffix(clean, suffix), New: clean}
	}
	return types.PathPair{Current: clean, New: clean + suffix}
}

// JoinPrefix places arg under prefix. An empty prefix leaves arg alone.
func JoinPrefix(prefix, arg string) string {
	if prefix == "" {
		return arg
	}
	return filepath.Join(prefix, arg)
}
