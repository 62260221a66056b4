package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultScanTimeoutSeconds = 15
	defaultBatchConcurrency   = 4
	defaultBatchRateLimit     = 50
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Defaults DefaultValues
	Scan     ScanRuntimeConfig
	Batch    BatchRuntimeConfig
}

// DefaultValues represent operator-level defaults, typically derived from
// env/config.
type DefaultValues struct {
	TelemetryEnabled bool
	GuessRateLabel   string
}

// ScanRuntimeConfig consolidates flag-driven settings for the scan command.
type ScanRuntimeConfig struct {
	TimeoutSecs int
}

// BatchRuntimeConfig consolidates settings for batch password checks.
type BatchRuntimeConfig struct {
	Concurrency     int
	RateLimit       int
	ProgressEnabled bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Defaults: DefaultValues{
			TelemetryEnabled: true,
			GuessRateLabel:   "10^9 guesses/sec (offline attack)",
		},
		Scan: ScanRuntimeConfig{
			TimeoutSecs: defaultScanTimeoutSeconds,
		},
		Batch: BatchRuntimeConfig{
			Concurrency:     defaultBatchConcurrency,
			RateLimit:       defaultBatchRateLimit,
			ProgressEnabled: true,
		},
	}
}

// applyConfigDefaults merges config file defaults into the runtime config
// when the user did not explicitly override the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	if viper.IsSet("defaults.telemetry") {
		cliConfig.Defaults.TelemetryEnabled = viper.GetBool("defaults.telemetry")
	}

	if viper.IsSet("scan.timeout_secs") {
		applyIntDefault(scanCmd.Flags(), "timeout", viper.GetInt("scan.timeout_secs"), func(v int) {
			cliConfig.Scan.TimeoutSecs = v
		})
	}

	if viper.IsSet("batch.concurrency") {
		applyIntDefault(batchCheckCmd.Flags(), "concurrency", viper.GetInt("batch.concurrency"), func(v int) {
			cliConfig.Batch.Concurrency = v
		})
	}

	if viper.IsSet("batch.rate_limit") {
		applyIntDefault(batchCheckCmd.Flags(), "rate", viper.GetInt("batch.rate_limit"), func(v int) {
			cliConfig.Batch.RateLimit = v
		})
	}

	if viper.IsSet("batch.progress") {
		cliConfig.Batch.ProgressEnabled = viper.GetBool("batch.progress")
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
