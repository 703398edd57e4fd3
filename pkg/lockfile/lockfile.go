package lockfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

var errNoPackages = errors.New("missing field package")

// lock checks that the document carries the keys the
// rest of the tool depends on and flattens it.
func (d *document) lock() (*Lock, error) {
	if d.Packages == nil {
		return nil, errNoPackages
	}
	l := &Lock{
		Packages: make([]Package, 0, len(*d.Packages)),
	}
	for i, e := range *d.Packages {
		if e.Name == nil {
			return nil, fmt.Errorf("package %d: missing field name", i)
		}
		if e.Version == nil {
			return nil, fmt.Errorf("package %s: missing field version", *e.Name)
		}
		l.Packages = append(l.Packages, Package{
			Name:         *e.Name,
			Version:      *e.Version,
			Dependencies: e.Dependencies,
			Source:       e.Source,
			Checksum:     e.Checksum,
		})
	}
	return l, nil
}

// Names returns the package names in lockfile order.
func (l *Lock) Names() []string {
	names := make([]string, 0, len(l.Packages))
	for _, p := range l.Packages {
		names = append(names, p.Name)
	}
	return names
}

// Trace echoes every package record to the debug log.
func (l *Lock) Trace(ctx context.Context) {
	log := logr.FromContextOrDiscard(ctx)
	for _, p := range l.Packages {
		log.V(1).Info("pkg", "name", p.Name, "version", p.Version, "dependencies", p.Dependencies, "source", p.Source, "checksum", p.Checksum)
	}
}
