package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
)

var ErrMissing = errors.New("missing manifest")

var errNoPackage = errors.New("missing field package")

// Read parses the manifest found in the crate directory dir.
// A manifest that does not exist is reported with ErrMissing.
// One without a package table is a parse error.
func Read(ctx context.Context, dir string) (*Manifest, error) {
	log := logr.FromContextOrDiscard(ctx)
	path := Name(dir)
	log.V(2).Info("checking license", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, ErrMissing)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}
	if m.Package == nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, errNoPackage)
	}
	log.V(3).Info("parsed manifest", "path", path, "package", *m.Package)
	return &m, nil
}

func Name(dir string) string {
	return filepath.Join(dir, FileName)
}
