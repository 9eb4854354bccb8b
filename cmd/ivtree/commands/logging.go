package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/ivtree/pkg/observability"
)

// newLogger builds the slog.Logger a command should use, honouring the
// root command's persistent --verbose/--quiet flags: --verbose lowers
// the level to Debug, --quiet raises it to Warn, and records flow
// through observability.TracingHandler, which attaches trace and span IDs
// only to records logged with a context that carries a span. The
// commands' Debug/Info/Warn calls pass no context, so their lines carry
// the service attribute but no trace IDs.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = slog.LevelWarn
	}

	inner := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	return slog.New(observability.NewTracingHandler(inner, "ivtree"))
}
