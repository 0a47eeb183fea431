package build

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/itsaky/jdkgen/internal/runner"
	"github.com/itsaky/jdkgen/internal/toolchain"
)

const (

	// Filename of the modular jar produced by the assemble stage.
	moduleArchive = "java.base-module.jar"

	// Filename of the module unit produced by the package stage.
	moduleUnit = "java.base.jmod"

	// Target platform recorded in the packaged module. The classes come from
	// the Android SDK, not from a real JDK installation.
	targetPlatform = "android"
)

// Holds shared state for one run of the four-stage pipeline.
type pipeline struct {
	tc      *toolchain.Toolchain // Resolved JDK executables.
	archive string               // Source class archive (android.jar).
	scratch string               // Scratch directory holding intermediate artifacts.
	output  string               // Output directory for the linked image.
	version string               // Module version recorded by the package stage.
}

// Runs the stages in order. The first failure aborts the run; later stages
// never execute.
func (p *pipeline) run(ctx context.Context) error {
	for _, s := range p.stages() {
		if err := s.execute(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Declares the four stages with their artifact contracts.
//
// Each stage's required input is its predecessor's declared output, so the
// chain is airtight: an artifact is only ever consumed after its producer's
// postcondition check passed.
func (p *pipeline) stages() []stage {
	descriptorSrc := filepath.Join(p.scratch, descriptorSource)
	compiled := filepath.Join(p.scratch, descriptorClass)
	jar := filepath.Join(p.scratch, moduleArchive)
	jmod := filepath.Join(p.scratch, moduleUnit)

	return []stage{
		{
			name:   "compile-descriptor",
			inputs: []string{descriptorSrc},
			run: p.tool(p.tc.Javac,
				"--system=none",
				"--patch-module="+moduleName+"="+p.archive,
				"-d", p.scratch,
				descriptorSrc,
			),
			output:  compiled,
			failure: ErrCompile,
		},
		{
			name:   "assemble-archive",
			inputs: []string{compiled},
			run: func(context.Context) error {
				return assembleModuleArchive(jar, compiled, p.archive)
			},
			output:  jar,
			failure: ErrAssembly,
		},
		{
			name:   "package-module",
			inputs: []string{jar},
			run: p.tool(p.tc.Jmod,
				"create",
				"--module-version", p.version,
				"--target-platform", targetPlatform,
				"--class-path", jar,
				jmod,
			),
			output:  jmod,
			failure: ErrPackaging,
		},
		{
			name:   "link-image",
			inputs: []string{jmod},
			run: p.tool(p.tc.Jlink,
				"--module-path", jmod,
				"--add-modules", moduleName,
				"--output", p.output,
				// The synthesized descriptor does not describe a real system
				// module set, so the system-modules plugin's assumptions do
				// not hold.
				"--disable-plugin", "system-modules",
			),
			output:  ModulesBlob(p.output),
			failure: ErrLink,
		},
	}
}

// Returns a run function that invokes an external tool and fails on a
// non-zero exit code, carrying the tool's captured output in the error.
func (p *pipeline) tool(path string, args ...string) func(context.Context) error {
	return func(ctx context.Context) error {
		result, err := runner.Run(ctx, path, args...)
		if err != nil {
			return err
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("%s exited with code %d: %s",
				filepath.Base(path), result.ExitCode, strings.TrimSpace(result.Output))
		}
		return nil
	}
}

// Returns the path of the linked module data blob within an image directory.
//
// Its existence is the definition of a successful run.
func ModulesBlob(image string) string {
	return filepath.Join(image, "lib", "modules")
}
