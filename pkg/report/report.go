package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/djcass44/cargo-bundled/pkg/lockfile"
	"github.com/djcass44/cargo-bundled/pkg/rpmver"
	"github.com/go-logr/logr"
)

// Provides returns one Provides line per package in
// lockfile order.
func Provides(ctx context.Context, packages []lockfile.Package) []string {
	return Lines(packages, func(p lockfile.Package) string {
		return ProvidesLine(p.Name, rpmver.Normalize(ctx, p.Version))
	})
}

func ProvidesLine(name, version string) string {
	return fmt.Sprintf("Provides: bundled(crate(%s)) = %s", name, version)
}

// License joins the licenses into the aggregate License line.
// Every license is followed by " AND ", including the last.
func License(licenses []string) string {
	out := strings.Builder{}
	out.WriteString("License: ")
	for _, lic := range licenses {
		out.WriteString(lic)
		out.WriteString(" AND ")
	}
	return out.String()
}

func Lines[T any](items []T, format func(t T) string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, format(item))
	}
	return lines
}

// Write prints each line to w, one write per line.
func Write(ctx context.Context, w io.Writer, lines []string) error {
	log := logr.FromContextOrDiscard(ctx)
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			log.Error(err, "failed to write line")
			return fmt.Errorf("writing: %w", err)
		}
	}
	return nil
}
