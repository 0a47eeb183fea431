package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsaky/jdkgen/internal/paths"
)

const (

	// Name of the single module in the generated image. The whole archive is
	// exposed as the platform's built-in module so consumers resolve it
	// without any module-path configuration.
	moduleName = "java.base"

	// Filename of the synthesized descriptor source.
	descriptorSource = "module-info.java"

	// Filename of the compiled descriptor emitted by javac.
	descriptorClass = "module-info.class"
)

// Renders the module descriptor source text.
//
// One export clause per package, in the order given. Callers pass the sorted
// package set from scanPackages, so the rendered text is deterministic.
func renderDescriptor(packages []string) string {
	var sb strings.Builder

	sb.WriteString("module " + moduleName + " {")
	for _, pkg := range packages {
		sb.WriteString("\n    exports ")
		sb.WriteString(pkg)
		sb.WriteByte(';')
	}
	sb.WriteString("\n}")

	return sb.String()
}

// Writes the synthesized descriptor into a freshly cleared scratch directory.
//
// The scratch directory is removed and recreated first so no artifact from a
// previous run survives. After the write, the file is stat'd as a
// postcondition; a missing file is an error even when the write itself
// reported none.
func writeDescriptor(scratch string, packages []string) (string, error) {
	if err := os.RemoveAll(scratch); err != nil {
		return "", fmt.Errorf("%w: clearing %s: %w", ErrDescriptorWrite, scratch, err)
	}
	if err := os.MkdirAll(scratch, paths.DefaultDirMode); err != nil {
		return "", fmt.Errorf("%w: creating %s: %w", ErrDescriptorWrite, scratch, err)
	}

	path := filepath.Join(scratch, descriptorSource)
	if err := os.WriteFile(path, []byte(renderDescriptor(packages)), paths.DefaultFileMode); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDescriptorWrite, path, err)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s missing after write", ErrDescriptorWrite, path)
	}

	return path, nil
}
