// Package build orchestrates the runtime image pipeline.
//
// A run derives the set of exportable packages from a class archive,
// synthesizes a java.base module descriptor exporting every one of them,
// then drives four stages in strict order: compile the descriptor with
// javac, assemble a modular jar from the compiled descriptor and the
// archive's class entries, package the jar as a jmod with the installed
// toolchain's version, and link the runtime image with jlink. Each stage
// validates its required input artifacts before running and its required
// output artifact after; the first failure aborts the whole run. There is
// no retry, no rollback, and no partial-success state.
//
// External tool invocations are delegated to the runner package. The scratch
// and output directories are exclusively owned by one run and force-cleared
// before use; concurrent runs against the same directories are not supported.
//
// Example usage:
//
//	result, err := build.Run(ctx, build.Options{
//	    Archive:   "android.jar",
//	    Output:    "compiler_module",
//	    Toolchain: tc,
//	    Version:   version,
//	})
//	if err != nil {
//	    return err
//	}
package build
