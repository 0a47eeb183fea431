package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/itsaky/jdkgen/internal/toolchain"
)

// Stub scripts standing in for a real JDK. Each script honors just enough of
// the real tool's argument vector to produce its required output artifact.
const (
	fakeJavac = `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-d" ]; then dir="$2"; shift; fi
  shift
done
touch "$dir/module-info.class"
`

	fakeJmod = `#!/bin/sh
for out in "$@"; do :; done
touch "$out"
`

	fakeJlink = `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "--output" ]; then dir="$2"; shift; fi
  shift
done
mkdir -p "$dir/lib"
touch "$dir/lib/modules"
`
)

// Builds a fake JDK home whose bin directory holds the given tool scripts.
func fakeToolchain(t *testing.T, scripts map[string]string) *toolchain.Toolchain {
	t.Helper()

	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}

	for name, body := range scripts {
		if err := os.WriteFile(filepath.Join(bin, name), []byte(body), 0755); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	return toolchain.New(home)
}

// Writes the two-class archive used by most pipeline tests.
func sourceArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "android.jar")
	writeArchive(t, path, []archiveEntry{
		{name: "x/y/A.class", data: []byte("class A")},
		{name: "x/y/B.class", data: []byte("class B")},
	})
	return path
}

func TestRunProducesImage(t *testing.T) {
	tc := fakeToolchain(t, map[string]string{
		"javac": fakeJavac,
		"jmod":  fakeJmod,
		"jlink": fakeJlink,
	})

	scratch := filepath.Join(t.TempDir(), "scratch")
	output := filepath.Join(t.TempDir(), "image")

	result, err := Run(context.Background(), Options{
		Archive:   sourceArchive(t),
		Output:    output,
		Toolchain: tc,
		Version:   "17.0.2",
		Scratch:   scratch,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Modules != filepath.Join(output, "lib", "modules") {
		t.Errorf("Modules = %q, want %q", result.Modules, filepath.Join(output, "lib", "modules"))
	}
	if _, err := os.Stat(result.Modules); err != nil {
		t.Fatalf("module blob missing: %v", err)
	}

	if len(result.Packages) != 1 || result.Packages[0] != "x.y" {
		t.Errorf("Packages = %v, want [x.y]", result.Packages)
	}

	descriptor, err := os.ReadFile(filepath.Join(scratch, "module-info.java"))
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	if string(descriptor) != "module java.base {\n    exports x.y;\n}" {
		t.Errorf("descriptor = %q", descriptor)
	}

	// Assembled archive: descriptor plus the two class entries.
	jar := readArchive(t, filepath.Join(scratch, "java.base-module.jar"))
	if len(jar) != 3 {
		t.Fatalf("assembled entries = %v, want 3 entries", names(jar))
	}
	if jar[0].name != "module-info.class" {
		t.Errorf("first entry = %q, want module-info.class", jar[0].name)
	}
}

func TestRunStageFailureShortCircuits(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "jlink-ran")

	tc := fakeToolchain(t, map[string]string{
		"javac": fakeJavac,
		"jmod":  "#!/bin/sh\necho \"jmod: boom\"\nexit 1\n",
		"jlink": "#!/bin/sh\ntouch '" + marker + "'\n",
	})

	_, err := Run(context.Background(), Options{
		Archive:   sourceArchive(t),
		Output:    filepath.Join(t.TempDir(), "image"),
		Toolchain: tc,
		Version:   "17.0.2",
		Scratch:   filepath.Join(t.TempDir(), "scratch"),
	})
	if !errors.Is(err, ErrPackaging) {
		t.Fatalf("err = %v, want ErrPackaging", err)
	}

	if _, statErr := os.Stat(marker); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("link stage executed after packaging failure")
	}
}

func TestRunSpuriousToolSuccess(t *testing.T) {
	// jlink exits zero without producing lib/modules.
	tc := fakeToolchain(t, map[string]string{
		"javac": fakeJavac,
		"jmod":  fakeJmod,
		"jlink": "#!/bin/sh\nexit 0\n",
	})

	_, err := Run(context.Background(), Options{
		Archive:   sourceArchive(t),
		Output:    filepath.Join(t.TempDir(), "image"),
		Toolchain: tc,
		Version:   "17.0.2",
		Scratch:   filepath.Join(t.TempDir(), "scratch"),
	})
	if !errors.Is(err, ErrLink) {
		t.Fatalf("err = %v, want ErrLink", err)
	}
}

func TestRunCompileFailure(t *testing.T) {
	tc := fakeToolchain(t, map[string]string{
		"javac": "#!/bin/sh\nexit 2\n",
		"jmod":  fakeJmod,
		"jlink": fakeJlink,
	})

	_, err := Run(context.Background(), Options{
		Archive:   sourceArchive(t),
		Output:    filepath.Join(t.TempDir(), "image"),
		Toolchain: tc,
		Version:   "17.0.2",
		Scratch:   filepath.Join(t.TempDir(), "scratch"),
	})
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("err = %v, want ErrCompile", err)
	}
}

func TestRunClearsExistingOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "image")
	stale := filepath.Join(output, "stale-file")
	if err := os.MkdirAll(output, 0755); err != nil {
		t.Fatalf("mkdir output: %v", err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	tc := fakeToolchain(t, map[string]string{
		"javac": fakeJavac,
		"jmod":  fakeJmod,
		"jlink": fakeJlink,
	})

	_, err := Run(context.Background(), Options{
		Archive:   sourceArchive(t),
		Output:    output,
		Toolchain: tc,
		Version:   "17.0.2",
		Scratch:   filepath.Join(t.TempDir(), "scratch"),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, statErr := os.Stat(stale); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("stale file survived the output pre-clean")
	}
}

func TestRunMissingArchive(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Archive: filepath.Join(t.TempDir(), "absent.jar"),
		Output:  filepath.Join(t.TempDir(), "image"),
		Scratch: filepath.Join(t.TempDir(), "scratch"),
	})
	if !errors.Is(err, ErrArchiveRead) {
		t.Fatalf("err = %v, want ErrArchiveRead", err)
	}
}

func TestRunNoExportablePackages(t *testing.T) {
	// Only a default-package class: nothing can be exported.
	archive := filepath.Join(t.TempDir(), "android.jar")
	writeArchive(t, archive, []archiveEntry{{name: "Standalone.class"}})

	_, err := Run(context.Background(), Options{
		Archive: archive,
		Output:  filepath.Join(t.TempDir(), "image"),
		Scratch: filepath.Join(t.TempDir(), "scratch"),
	})
	if !errors.Is(err, ErrArchiveRead) {
		t.Fatalf("err = %v, want ErrArchiveRead", err)
	}
}
