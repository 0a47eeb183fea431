package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsaky/jdkgen/internal/runner"
)

var (
	ErrNotFound       = errors.New("JDK installation not found")
	ErrInvalidVersion = errors.New("invalid jlink version")
)

// Holds resolved absolute paths to the JDK executables used by the pipeline.
//
// The handle is read-only for the lifetime of a single invocation.
type Toolchain struct {
	Home  string // JDK home directory.
	Javac string // Path to the javac executable.
	Jmod  string // Path to the jmod executable.
	Jlink string // Path to the jlink executable.
}

// Resolves the JDK home directory and returns a toolchain handle.
//
// The explicit override takes precedence; if it is empty, the JAVA_HOME
// environment variable is used. The resolved path must reference an existing
// directory.
func Discover(override string) (*Toolchain, error) {
	home := override
	if home == "" {
		home = os.Getenv("JAVA_HOME")
	}
	if home == "" {
		return nil, fmt.Errorf("%w: no --java-home given and JAVA_HOME is not set", ErrNotFound)
	}

	info, err := os.Stat(home)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not an existing directory", ErrNotFound, home)
	}

	abs, err := filepath.Abs(home)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, home, err)
	}

	return New(abs), nil
}

// Creates a toolchain handle rooted at the given JDK home.
//
// The executables are not checked for existence here; a missing tool
// surfaces as a launch failure when its pipeline stage runs.
func New(home string) *Toolchain {
	bin := filepath.Join(home, "bin")
	return &Toolchain{
		Home:  home,
		Javac: filepath.Join(bin, "javac"),
		Jmod:  filepath.Join(bin, "jmod"),
		Jlink: filepath.Join(bin, "jlink"),
	}
}

// Probes the installed jlink for its version string.
//
// Reads the full standard output of "jlink --version" and trims surrounding
// whitespace. An empty result is an error: the version is recorded in the
// packaged module and must not be blank.
func (t *Toolchain) Version(ctx context.Context) (string, error) {
	out, err := runner.Output(ctx, t.Jlink, "--version")
	if err != nil {
		return "", err
	}

	version := strings.TrimSpace(out)
	if version == "" {
		return "", fmt.Errorf("%w: %s --version produced no output", ErrInvalidVersion, t.Jlink)
	}

	return version, nil
}
