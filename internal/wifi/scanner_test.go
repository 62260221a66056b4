package wifi

import (
	"context"
	"errors"
	"testing"

	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
)

func stubCommand(t *testing.T, output string, err error) func() {
	t.Helper()
	original := runCommand
	runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(output), err
	}
	return func() { runCommand = original }
}

func TestScannerWindows(t *testing.T) {
	restore := stubCommand(t, netshSample, nil)
	defer restore()

	s := &Scanner{GOOS: "windows"}
	entries, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

func TestScannerLinux(t *testing.T) {
	restore := stubCommand(t, "Net:WPA2:90:6\n", nil)
	defer restore()

	s := &Scanner{GOOS: "linux"}
	entries, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].SSID != "Net" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestScannerUnsupportedPlatform(t *testing.T) {
	s := &Scanner{GOOS: "plan9"}
	_, err := s.Scan(context.Background())
	if !errors.Is(err, sentinelErrors.ErrScanUnsupported) {
		t.Fatalf("expected ErrScanUnsupported, got %v", err)
	}
}

func TestScannerEmptyOutput(t *testing.T) {
	restore := stubCommand(t, "   \n", nil)
	defer restore()

	s := &Scanner{GOOS: "linux"}
	_, err := s.Scan(context.Background())
	if !errors.Is(err, sentinelErrors.ErrNoScanOutput) {
		t.Fatalf("expected ErrNoScanOutput, got %v", err)
	}
}

func TestScannerCommandFailure(t *testing.T) {
	restore := stubCommand(t, "", errors.New("command not found"))
	defer restore()

	s := &Scanner{GOOS: "linux"}
	if _, err := s.Scan(context.Background()); err == nil {
		t.Fatal("expected error when the scan command fails")
	}
}
