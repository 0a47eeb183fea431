// Provides platform-appropriate paths for the generator.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The tool name "jdkgen" is used as the subdirectory
// under each base path. The scratch directory is exclusively owned by a
// single pipeline run and is force-cleared before use, so concurrent runs
// against the same scratch directory are not supported.
package paths
