// Locates the JDK installation used to drive the image pipeline.
//
// The JDK home is resolved once at startup, either from an explicit override
// or from the JAVA_HOME environment variable. The resulting handle carries
// absolute paths to the javac, jmod, and jlink executables under the home's
// bin directory and is never mutated after resolution, so a fake home
// directory with stub executables can stand in for a real JDK in tests.
package toolchain
