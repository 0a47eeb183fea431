package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/itsaky/jdkgen/internal"
)

// Represents the root command for the jdkgen tool.
var RootCmd struct {
	Quiet    bool        `short:"q" help:"Suppress informational output."`
	Verbose  bool        `short:"v" help:"Enable verbose output."`
	Debug    bool        `short:"d" help:"Enable debug output."`
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate the compiler module image."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// Failures of the selected command print the full usage text before the
// error is returned, so a broken invocation is diagnosable in one pass.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Generates a custom JDK runtime image whose single java.base module exports every package of a given android.jar."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	if err := kongCtx.Run(); err != nil {
		// Usage accompanies the error on stderr; --help output stays on stdout.
		kongCtx.Stdout = os.Stderr
		kongCtx.PrintUsage(false)
		return err
	}
	return nil
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	// Persist flag overrides for the rest of the run.
	internal.SetDebug(debug)
	internal.SetQuiet(quiet)
	internal.SetVerbose(verbose)

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          internal.Name,
		ReportTimestamp: verbose,
		ReportCaller:    debug,
	})

	if debug {
		handler.SetLevel(log.DebugLevel)
	} else if quiet {
		handler.SetLevel(log.WarnLevel)
	} else {
		handler.SetLevel(log.InfoLevel)
	}

	slog.SetDefault(slog.New(handler))
}
