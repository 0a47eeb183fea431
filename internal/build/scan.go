package build

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Filename suffix identifying compiled class entries.
const classSuffix = ".class"

// Derives the set of exportable package names from a class archive.
//
// Every entry ending in ".class" whose path contains a directory separator
// contributes its directory prefix, with separators replaced by dots.
// Entries without a separator are default-package classes; they cannot be
// exported from a named module and are skipped. The result is deduplicated
// and sorted lexicographically, so the derived set is identical across runs
// regardless of archive iteration order.
func scanPackages(archive string) ([]string, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArchiveRead, archive, err)
	}
	defer zr.Close()

	packages := make(map[string]struct{})
	skipped := 0

	for _, f := range zr.File {
		name := f.Name
		if !strings.HasSuffix(name, classSuffix) {
			continue
		}

		i := strings.LastIndexByte(name, '/')
		if i < 0 {
			skipped++
			continue
		}

		packages[strings.ReplaceAll(name[:i], "/", ".")] = struct{}{}
	}

	if skipped > 0 {
		slog.Debug("skipped default-package classes", "archive", archive, "count", skipped)
	}

	return slices.Sorted(maps.Keys(packages)), nil
}
