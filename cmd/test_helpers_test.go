package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"go.uber.org/zap"
)

// setupTestAppContext installs a minimal AppContext backed by a temp
// results directory and returns it alongside a restore function.
func setupTestAppContext(t *testing.T) (*AppContext, func()) {
	t.Helper()

	original := appContext
	resultsDir := t.TempDir()

	appCtx := &AppContext{
		Logger:     zap.NewNop().Sugar(),
		Config:     newCLIConfig(),
		ResultsDir: resultsDir,
		Counters:   telemetry.NewRecorder(resultsDir),
	}
	setAppContext(appCtx)

	return appCtx, func() {
		appContext = original
	}
}

// captureStdout redirects os.Stdout for the duration of fn and returns what
// was written. Helpers like the progress printer write to os.Stdout
// directly, bypassing cobra's output streams.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	fn()

	os.Stdout = original
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	return <-done
}
