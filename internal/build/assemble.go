package build

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Assembles the modular jar consumed by the packaging stage.
//
// The output archive contains exactly one entry for the compiled descriptor,
// followed by every class entry of the source archive copied byte-for-byte
// in its original order. Resources, signatures, and other non-class entries
// are dropped: the jar exists only to carry the module's classes into jmod.
// On failure the partially written file is removed so the packaging stage
// can never observe it.
func assembleModuleArchive(dest, compiledDescriptor, archive string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssembly, dest, err)
	}

	if err := writeModuleArchive(out, compiledDescriptor, archive); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("%w: %s: %w", ErrAssembly, dest, err)
	}

	return nil
}

// Streams the descriptor entry and the source archive's class entries into w.
func writeModuleArchive(w io.Writer, compiledDescriptor, archive string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssembly, archive, err)
	}
	defer zr.Close()

	zw := zip.NewWriter(w)

	if err := writeDescriptorEntry(zw, compiledDescriptor); err != nil {
		return err
	}

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, classSuffix) {
			continue
		}
		if err := copyClassEntry(zw, f); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrAssembly, err)
	}

	return nil
}

// Writes the compiled descriptor as the archive's first entry.
func writeDescriptorEntry(zw *zip.Writer, compiledDescriptor string) error {
	src, err := os.Open(compiledDescriptor)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssembly, compiledDescriptor, err)
	}
	defer src.Close()

	entry, err := zw.Create(descriptorClass)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssembly, err)
	}

	if _, err := io.Copy(entry, src); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssembly, compiledDescriptor, err)
	}

	return nil
}

// Copies a single class entry from the source archive, name and bytes intact.
func copyClassEntry(zw *zip.Writer, f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: entry %s: %w", ErrAssembly, f.Name, err)
	}
	defer rc.Close()

	entry, err := zw.Create(f.Name)
	if err != nil {
		return fmt.Errorf("%w: entry %s: %w", ErrAssembly, f.Name, err)
	}

	if _, err := io.Copy(entry, rc); err != nil {
		return fmt.Errorf("%w: entry %s: %w", ErrAssembly, f.Name, err)
	}

	return nil
}
