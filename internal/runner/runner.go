package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrLaunch = errors.New("unable to start process")

// Output of an external tool invocation.
type Result struct {
	ExitCode int    // Exit code of the process.
	Output   string // Captured combined stdout and stderr.
}

// Runs an executable with the given argument vector and waits for it to exit.
//
// Standard error is merged into the standard output pipe. While the process
// runs, a goroutine drains the merged stream line-by-line into the debug log
// and accumulates it for the returned [Result]. The drain is joined before
// Wait so the pipe can never fill up and deadlock the child. Cancelling the
// context kills the process.
//
// A failure to start the process wraps [ErrLaunch]. A non-zero exit code is
// not an error.
func Run(ctx context.Context, path string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, path, err)
	}
	cmd.Stderr = cmd.Stdout // StdoutPipe set Stdout to the pipe's write end.

	slog.Debug("running tool", "path", path, "args", args)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, path, err)
	}

	var output strings.Builder
	done := make(chan struct{})
	go drain(stdout, filepath.Base(path), &output, done)

	// The drain must finish before Wait closes the read side of the pipe.
	<-done

	result := &Result{Output: output.String()}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, path, err)
	}

	return result, nil
}

// Drains a process output stream line-by-line until EOF.
//
// Each line is echoed to the log under the tool's name and appended to the
// capture buffer. Lines have no length limit: stopping early on an over-long
// line would leave the child blocked on a full pipe. The done channel is
// closed when the stream is exhausted.
func drain(r io.Reader, tool string, capture *strings.Builder, done chan<- struct{}) {
	defer close(done)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			slog.Debug(strings.TrimRight(line, "\n"), "tool", tool)
			capture.WriteString(line)
		}
		if err != nil {
			// EOF, or the pipe broke; either way the stream is finished.
			return
		}
	}
}

// Runs an executable and returns its captured standard output.
//
// Used for short probe invocations (e.g. version queries) where the output
// is the result rather than progress to stream. A non-zero exit is an error
// here, unlike [Run]: a failed probe has no usable output.
func Output(ctx context.Context, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s exited with code %d: %s",
				filepath.Base(path), exitErr.ExitCode(), bytes.TrimSpace(exitErr.Stderr))
		}
		return "", fmt.Errorf("%w: %s: %w", ErrLaunch, path, err)
	}

	return string(out), nil
}
