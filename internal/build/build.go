package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/itsaky/jdkgen/internal/paths"
	"github.com/itsaky/jdkgen/internal/toolchain"
)

// Controls a pipeline run.
type Options struct {
	Archive   string               // Path to the class archive (android.jar).
	Output    string               // Directory for the linked runtime image. Deleted before the run.
	Toolchain *toolchain.Toolchain // Resolved JDK executables.
	Version   string               // Module version recorded in the packaged module.
	Scratch   string               // Override for the scratch directory. Empty uses paths.Scratch().
}

// Returned after a successful pipeline run.
type Result struct {
	Image    string   // Directory containing the linked runtime image.
	Modules  string   // Path to the module data blob within the image.
	Packages []string // Packages exported by the generated java.base module.
}

// Runs the full pipeline: scan, synthesize, then the four toolchain stages.
//
// The archive must reference an existing file. The output directory, if
// present, is deleted before the pipeline executes; a failed pre-clean is
// fatal, since linking into a directory that still holds a previous image
// would be indistinguishable from success. The scratch and output
// directories are exclusively owned by this run; concurrent runs against
// the same directories corrupt each other's state and are not supported.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Scratch == "" {
		opts.Scratch = paths.Scratch()
	}

	if _, err := os.Stat(opts.Archive); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArchiveRead, opts.Archive, err)
	}

	if err := os.RemoveAll(opts.Output); err != nil {
		return nil, fmt.Errorf("%w: clearing %s: %w", ErrFileSystemOperation, opts.Output, err)
	}

	packages, err := scanPackages(opts.Archive)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: no exportable packages in %s", ErrArchiveRead, opts.Archive)
	}

	slog.Info("synthesizing module descriptor",
		"module", moduleName,
		"archive", opts.Archive,
		"packages", len(packages),
	)

	descriptor, err := writeDescriptor(opts.Scratch, packages)
	if err != nil {
		return nil, err
	}

	slog.Debug("descriptor written", "path", descriptor)

	p := &pipeline{
		tc:      opts.Toolchain,
		archive: opts.Archive,
		scratch: opts.Scratch,
		output:  opts.Output,
		version: opts.Version,
	}

	if err := p.run(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Image:    opts.Output,
		Modules:  ModulesBlob(opts.Output),
		Packages: packages,
	}, nil
}
