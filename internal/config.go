package internal

import (
	"strconv"
	"sync/atomic"
)

var (
	quietMode   atomic.Bool // Whether informational output is suppressed.
	debugMode   atomic.Bool // Whether debug logging is enabled.
	verboseMode atomic.Bool // Whether verbose logging is enabled.
)

// Seeds the runtime modes from build-time linker flags.
//
// The rawQuiet, rawDebug, and rawVerbose variables may be set via ldflags;
// unset or unparsable values leave the modes at their "false" defaults. CLI
// flags override these seeds after parsing.
func init() {
	if v, err := strconv.ParseBool(rawQuiet); err == nil {
		quietMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawDebug); err == nil {
		debugMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawVerbose); err == nil {
		verboseMode.Store(v)
	}
}

// Enables or disables quiet mode for this run.
func SetQuiet(enabled bool) {
	quietMode.Store(enabled)
}

// Reports whether quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Enables or disables debug mode for this run.
func SetDebug(enabled bool) {
	debugMode.Store(enabled)
}

// Reports whether debug mode is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// Enables or disables verbose logging for this run.
func SetVerbose(enabled bool) {
	verboseMode.Store(enabled)
}

// Reports whether verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}
