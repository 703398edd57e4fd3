package license

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, vendor, name, content string) {
	dir := filepath.Join(vendor, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0644))
}

func TestResolver_Resolve(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	vendor := t.TempDir()
	writeManifest(t, vendor, "dual", "[package]\nname = \"dual\"\nlicense = \"MIT/Apache-2.0\"\n")
	writeManifest(t, vendor, "file-only", "[package]\nname = \"file-only\"\nlicense-file = \"LICENSE\"\n")
	writeManifest(t, vendor, "nothing", "[package]\nname = \"nothing\"\n")
	writeManifest(t, vendor, "broken", "[package\n")
	writeManifest(t, vendor, "workspace", "[workspace]\nmembers = [\"a\"]\n")

	r := NewResolver(vendor)

	var cases = []struct {
		name string
		lic  string
		ok   bool
		err  bool
	}{
		{"dual", "( Apache-2.0 OR MIT )", true, false},
		{"file-only", "", false, false},
		{"nothing", "", false, false},
		{"missing", "", false, false},
		{"broken", "", false, true},
		{"workspace", "", false, true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			lic, ok, err := r.Resolve(ctx, tt.name)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.ok, ok)
			assert.EqualValues(t, tt.lic, lic)
		})
	}
}

func TestResolver_ResolveAll(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	t.Run("duplicates are collapsed", func(t *testing.T) {
		vendor := t.TempDir()
		writeManifest(t, vendor, "a", "[package]\nlicense = \"MIT\"\n")
		writeManifest(t, vendor, "b", "[package]\nlicense = \"MIT\"\n")
		writeManifest(t, vendor, "c", "[package]\nlicense-file = \"COPYING\"\n")

		set, err := NewResolver(vendor).ResolveAll(ctx, []string{"a", "b", "c", "d"})
		require.NoError(t, err)
		assert.EqualValues(t, []string{"MIT"}, set.Sorted())
	})
	t.Run("broken manifest stops the run", func(t *testing.T) {
		vendor := t.TempDir()
		writeManifest(t, vendor, "a", "[package]\nlicense = \"MIT\"\n")
		writeManifest(t, vendor, "b", "license = ")

		_, err := NewResolver(vendor).ResolveAll(ctx, []string{"a", "b"})
		assert.Error(t, err)
	})
}
