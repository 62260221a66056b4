package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/graexlabs/sentinel-cli/internal/shared/constants"
	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var resultsDir string

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Password strength analysis and WiFi security auditing toolkit",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".sentinel-cli")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		applyConfigDefaults(cmd)

		if resultsDir == "" {
			resultsDir = viper.GetString("results_dir")
		}
		if resultsDir == "" {
			resultsDir = "./results"
		}
		if err := os.MkdirAll(resultsDir, constants.DefaultDirPerm); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
		if abs, err := filepath.Abs(resultsDir); err == nil {
			resultsDir = abs
		}

		// init logger
		l, _ := zap.NewProduction()
		logger := l.Sugar()

		// The counters recorder is built exactly once, here, before any
		// command that reads it runs.
		setAppContext(&AppContext{
			Logger:     logger,
			Config:     cliConfig,
			ResultsDir: resultsDir,
			Counters:   telemetry.NewRecorder(resultsDir),
		})

		logger.Infow("sentinel initialized", "results_dir", resultsDir)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		appCtx := getAppContext(cmd)
		if appCtx == nil || appCtx.Counters == nil {
			return
		}
		if appCtx.Config != nil && !appCtx.Config.Defaults.TelemetryEnabled {
			return
		}
		if err := appCtx.Counters.Flush(cmd.Name()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record telemetry: %v\n", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sentinel-cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "directory for results and reports (default ./results)")

	// add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
