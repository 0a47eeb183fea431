package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "jdkgen"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for intermediate pipeline artifacts.
//
//	Linux:   ~/.cache/jdkgen or $XDG_CACHE_HOME/jdkgen
//	macOS:   ~/Library/Caches/jdkgen
func Cache() string {
	return filepath.Join(xdg.CacheHome, toolName)
}

// Path to the scratch directory holding the synthesized descriptor and the
// intermediate module artifacts of a single pipeline run.
//
//	Linux:   $XDG_CACHE_HOME/jdkgen/scratch
//	macOS:   ~/Library/Caches/jdkgen/scratch
func Scratch() string {
	return filepath.Join(Cache(), "scratch")
}
