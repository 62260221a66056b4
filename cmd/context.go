package cmd

import (
	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AppContext carries the per-process application state built by the root
// command. Commands receive it through getAppContext rather than reaching
// for package globals, so tests can substitute their own.
type AppContext struct {
	Logger     *zap.SugaredLogger
	Config     *CLIConfig
	ResultsDir string
	Counters   *telemetry.Recorder
}

var appContext *AppContext

// getAppContext returns the application context for the current invocation.
// The cmd parameter keeps call sites uniform should the context ever move
// into cobra's command context.
func getAppContext(cmd *cobra.Command) *AppContext {
	return appContext
}

func setAppContext(ctx *AppContext) {
	appContext = ctx
}
