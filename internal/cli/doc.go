// Parses flags and configures logging for the jdkgen tool.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level and verbosity
// before the selected command runs. The generate command is the default, so
// "jdkgen -a android.jar" works without naming it.
package cli
