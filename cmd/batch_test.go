package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
)

func disableBatchProgress(t *testing.T) {
	t.Helper()
	original := cliConfig.Batch.ProgressEnabled
	cliConfig.Batch.ProgressEnabled = false
	t.Cleanup(func() {
		cliConfig.Batch.ProgressEnabled = original
	})
}

func TestReadWordlist(t *testing.T) {
	path := writeTestFile(t, "wordlist.txt", "password123\n\nCorrect Horse Battery\nqwerty\r\n")

	candidates, err := readWordlist(path)
	if err != nil {
		t.Fatalf("readWordlist returned error: %v", err)
	}

	want := []string{"password123", "Correct Horse Battery", "qwerty"}
	if len(candidates) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %v", len(want), len(candidates), candidates)
	}
	for i, w := range want {
		if candidates[i] != w {
			t.Fatalf("candidate %d = %q, want %q", i, candidates[i], w)
		}
	}
}

func TestReadWordlistMissingFile(t *testing.T) {
	if _, err := readWordlist("/nonexistent/wordlist.txt"); err == nil {
		t.Fatal("expected error for missing wordlist")
	}
}

func TestBatchCheckCommand(t *testing.T) {
	appCtx, restore := setupTestAppContext(t)
	defer restore()
	disableColor(t)
	disableBatchProgress(t)

	path := writeTestFile(t, "wordlist.txt", "password\nXk9#mLp2$vQw7!Rt\n")
	setTestFlag(t, batchCheckCmd, "file", path)
	setTestFlag(t, batchCheckCmd, "breach", "true")

	var buf bytes.Buffer
	batchCheckCmd.SetOut(&buf)
	defer batchCheckCmd.SetOut(nil)

	if err := batchCheckCmd.RunE(batchCheckCmd, nil); err != nil {
		t.Fatalf("batch check returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pas...") || !strings.Contains(output, "Xk9...") {
		t.Fatalf("expected redacted candidates in table, got %q", output)
	}
	if strings.Contains(output, "password\t") || strings.Contains(output, "Xk9#mLp2") {
		t.Fatalf("raw candidate leaked into output: %q", output)
	}

	var saved BatchOutput
	if err := readResultsFile(appCtx.ResultsDir, passwordResultsFilename, &saved); err != nil {
		t.Fatalf("expected results file, got error: %v", err)
	}
	if len(saved.Results) != 2 {
		t.Fatalf("expected 2 persisted results, got %d", len(saved.Results))
	}
	if saved.Results[0].Password != "pas..." {
		t.Fatalf("expected redacted persisted password, got %q", saved.Results[0].Password)
	}
	if !saved.Results[0].Breached {
		t.Fatal("expected 'password' flagged as breached")
	}
	if saved.Results[1].Breached {
		t.Fatal("did not expect random password flagged as breached")
	}
	if saved.Results[1].Score <= saved.Results[0].Score {
		t.Fatalf("expected strong candidate to outscore weak one: %d vs %d",
			saved.Results[1].Score, saved.Results[0].Score)
	}

	counters := appCtx.Counters.Snapshot()
	if counters.PasswordsAnalyzed != 2 {
		t.Fatalf("expected 2 passwords counted, got %d", counters.PasswordsAnalyzed)
	}
	if counters.BreachesFound != 1 {
		t.Fatalf("expected 1 breach counted, got %d", counters.BreachesFound)
	}
}

func TestBatchCheckRequiresFile(t *testing.T) {
	_, restore := setupTestAppContext(t)
	defer restore()

	err := batchCheckCmd.RunE(batchCheckCmd, nil)
	if !errors.Is(err, sentinelErrors.ErrMissingRequired) {
		t.Fatalf("expected ErrMissingRequired, got %v", err)
	}
}

func TestBatchCheckEmptyWordlist(t *testing.T) {
	_, restore := setupTestAppContext(t)
	defer restore()

	path := writeTestFile(t, "empty.txt", "\n\n")
	setTestFlag(t, batchCheckCmd, "file", path)

	err := batchCheckCmd.RunE(batchCheckCmd, nil)
	if !errors.Is(err, sentinelErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
