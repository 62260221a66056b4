package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestApplyIntDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("timeout", 15, "")

	var applied int
	applyIntDefault(flags, "timeout", 30, func(v int) { applied = v })
	if applied != 30 {
		t.Fatalf("expected config value applied, got %d", applied)
	}

	if err := flags.Set("timeout", "5"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	applied = 0
	applyIntDefault(flags, "timeout", 30, func(v int) { applied = v })
	if applied != 0 {
		t.Fatal("expected explicit flag to win over config value")
	}
}

func TestApplyIntDefaultNilSafe(t *testing.T) {
	applyIntDefault(nil, "timeout", 30, func(int) {
		t.Fatal("setter should not run with nil flags")
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	applyIntDefault(flags, "missing", 30, func(v int) {
		if v != 30 {
			t.Fatalf("expected value passed through, got %d", v)
		}
	})
}

func TestApplyConfigDefaults(t *testing.T) {
	originalConfig := *cliConfig
	t.Cleanup(func() {
		*cliConfig = originalConfig
		viper.Reset()
	})

	viper.Set("defaults.telemetry", false)
	viper.Set("scan.timeout_secs", 45)
	viper.Set("batch.concurrency", 8)
	viper.Set("batch.rate_limit", 25)
	viper.Set("batch.progress", false)

	applyConfigDefaults(rootCmd)

	if cliConfig.Defaults.TelemetryEnabled {
		t.Fatal("expected telemetry disabled by config")
	}
	if cliConfig.Scan.TimeoutSecs != 45 {
		t.Fatalf("expected scan timeout 45, got %d", cliConfig.Scan.TimeoutSecs)
	}
	if cliConfig.Batch.Concurrency != 8 {
		t.Fatalf("expected batch concurrency 8, got %d", cliConfig.Batch.Concurrency)
	}
	if cliConfig.Batch.RateLimit != 25 {
		t.Fatalf("expected batch rate limit 25, got %d", cliConfig.Batch.RateLimit)
	}
	if cliConfig.Batch.ProgressEnabled {
		t.Fatal("expected progress disabled by config")
	}
}

func TestNewCLIConfigDefaults(t *testing.T) {
	cfg := newCLIConfig()
	if !cfg.Defaults.TelemetryEnabled {
		t.Fatal("expected telemetry enabled by default")
	}
	if cfg.Scan.TimeoutSecs != defaultScanTimeoutSeconds {
		t.Fatalf("expected default scan timeout, got %d", cfg.Scan.TimeoutSecs)
	}
	if cfg.Batch.Concurrency != defaultBatchConcurrency || cfg.Batch.RateLimit != defaultBatchRateLimit {
		t.Fatalf("unexpected batch defaults: %+v", cfg.Batch)
	}
}
