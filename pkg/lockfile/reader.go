package lockfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
)

var ErrMissing = errors.New("missing lockfile")

// Read parses the Cargo.lock contained in dir. Packages
// are returned in the order they appear in the file.
func Read(ctx context.Context, dir string) (*Lock, error) {
	log := logr.FromContextOrDiscard(ctx)
	path := Name(dir)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("lockfile %q not found: %w", path, ErrMissing)
	}
	log.V(1).Info("found lockfile", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(err, "failed to open lockfile", "path", path)
		return nil, fmt.Errorf("reading lockfile: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Error(err, "failed to parse lockfile", "path", path)
		return nil, fmt.Errorf("parsing lockfile %q: %w", path, err)
	}
	lockFile, err := doc.lock()
	if err != nil {
		log.Error(err, "failed to parse lockfile", "path", path)
		return nil, fmt.Errorf("parsing lockfile %q: %w", path, err)
	}
	return lockFile, nil
}

// Name returns the expected path of the lockfile
// inside the given directory.
func Name(dir string) string {
	return filepath.Join(dir, FileName)
}
