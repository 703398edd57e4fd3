package rpmver

import (
	"context"

	"github.com/go-logr/logr"
)

// Normalize makes a crate version safe for use as an RPM
// version. The rightmost hyphen is kept as the pre-release
// separator and every hyphen before it becomes an underscore.
//
// No semantic version validation is performed.
func Normalize(ctx context.Context, version string) string {
	log := logr.FromContextOrDiscard(ctx)

	hyphens := Hyphens(version)
	log.V(3).Info("hyphens", "version", version, "indices", hyphens)

	if len(hyphens) <= 1 {
		return version
	}

	out := []byte(version)
	for _, i := range hyphens[:len(hyphens)-1] {
		out[i] = '_'
	}
	return string(out)
}

// Hyphens returns the byte offset of every hyphen in s.
func Hyphens(s string) []int {
	var indices []int
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			indices = append(indices, i)
		}
	}
	return indices
}
