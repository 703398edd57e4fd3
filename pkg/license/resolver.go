package license

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/djcass44/cargo-bundled/pkg/manifest"
	"github.com/go-logr/logr"
)

type Resolver struct {
	vendorDir string
}

func NewResolver(vendorDir string) *Resolver {
	return &Resolver{
		vendorDir: vendorDir,
	}
}

// Resolve looks up the license of the named crate in the vendor
// directory. The boolean is false when the license could not be
// determined, in which case the reason has already been logged.
// Only a manifest that exists but cannot be read or parsed
// produces an error.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, bool, error) {
	dir := filepath.Join(r.vendorDir, name)
	log := logr.FromContextOrDiscard(ctx).WithValues("path", manifest.Name(dir))

	m, err := manifest.Read(ctx, dir)
	if err != nil {
		if errors.Is(err, manifest.ErrMissing) {
			log.Info("unable to check license, you may need to check this manually")
			return "", false, nil
		}
		return "", false, err
	}

	switch {
	case m.Package.License != nil:
		return Normalize(*m.Package.License), true, nil
	case m.Package.LicenseFile != nil:
		log.Info("unable to find license, you may need to check the license file for details", "licenseFile", filepath.Join(dir, *m.Package.LicenseFile))
		return "", false, nil
	default:
		log.Info("unable to determine license, you must manually investigate")
		return "", false, nil
	}
}

// ResolveAll resolves every named crate and collects the
// licenses that could be determined.
func (r *Resolver) ResolveAll(ctx context.Context, names []string) (*Set, error) {
	set := NewSet()
	for _, name := range names {
		lic, ok, err := r.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		if ok {
			set.Add(lic)
		}
	}
	return set, nil
}
