// Runs external toolchain executables on behalf of the pipeline.
//
// Each invocation spawns exactly one process with its standard error stream
// merged into standard output. The merged stream is drained line-by-line by
// a goroutine that runs for the full lifetime of the process and is joined
// before the call returns, so the child is never blocked on a full pipe
// buffer. A non-zero exit code is reported as data, not as an error; the
// caller decides how to handle it.
package runner
