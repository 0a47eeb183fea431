package cli

import (
	"context"
	"log/slog"

	"github.com/itsaky/jdkgen/internal/build"
	"github.com/itsaky/jdkgen/internal/toolchain"
)

// Represents the 'jdkgen generate' command.
type GenerateCmd struct {
	AndroidJar string `short:"a" required:"" type:"existingfile" help:"android.jar whose classes become the java.base module of the generated image." placeholder:"PATH"`
	OutputDir  string `short:"o" default:"compiler_module" type:"path" help:"Directory for the generated JDK image. Deleted before the pipeline runs." placeholder:"PATH"`
	JavaHome   string `type:"path" help:"JDK installation to drive the pipeline. Defaults to $JAVA_HOME." placeholder:"DIR"`
}

// Executes the generate command.
//
// Resolves the toolchain and its version once, then hands off to the build
// pipeline. Any error is fatal; main reports it and exits non-zero.
func (c *GenerateCmd) Run(ctx context.Context) error {
	tc, err := toolchain.Discover(c.JavaHome)
	if err != nil {
		return err
	}

	version, err := tc.Version(ctx)
	if err != nil {
		return err
	}

	slog.Info("generating compiler module",
		"archive", c.AndroidJar,
		"output", c.OutputDir,
		"jdk", tc.Home,
		"jlink", version,
	)

	result, err := build.Run(ctx, build.Options{
		Archive:   c.AndroidJar,
		Output:    c.OutputDir,
		Toolchain: tc,
		Version:   version,
	})
	if err != nil {
		return err
	}

	slog.Info("JDK image generated",
		"image", result.Image,
		"modules", result.Modules,
		"exports", len(result.Packages),
	)
	return nil
}
