package bundled

import (
	"context"
	"errors"
	"os"

	"github.com/djcass44/cargo-bundled/pkg/license"
	"github.com/djcass44/cargo-bundled/pkg/lockfile"
	"github.com/djcass44/cargo-bundled/pkg/report"
	"github.com/go-logr/logr"
)

var ErrMissingVendorDir = errors.New("could not find vendor directory")

// Provides returns the Provides lines for the lockfile in dir.
func Provides(ctx context.Context, dir string) ([]string, error) {
	lock, err := lockfile.Read(ctx, dir)
	if err != nil {
		return nil, err
	}
	lock.Trace(ctx)

	return report.Provides(ctx, lock.Packages), nil
}

// Bundle returns the Provides lines for the lockfile in workDir
// followed by the aggregate License line built from the crates
// in vendorDir.
func Bundle(ctx context.Context, workDir, vendorDir string) ([]string, error) {
	log := logr.FromContextOrDiscard(ctx)
	log.V(1).Info("resolved directories", "workDir", workDir, "vendorDir", vendorDir)

	lock, err := lockfile.Read(ctx, workDir)
	if err != nil {
		return nil, err
	}

	licenses := license.NewSet()
	if _, err := os.Stat(vendorDir); err == nil {
		log.V(1).Info("found vendor directory", "path", vendorDir)
		licenses, err = license.NewResolver(vendorDir).ResolveAll(ctx, lock.Names())
		if err != nil {
			return nil, err
		}
	} else {
		log.Error(ErrMissingVendorDir, "skipping license checks", "path", vendorDir)
	}

	lock.Trace(ctx)

	lines := report.Provides(ctx, lock.Packages)
	lines = append(lines, report.License(licenses.Sorted()))
	return lines, nil
}
