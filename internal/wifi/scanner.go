package wifi

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
)

// runCommand is swapped out in tests.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Scanner invokes the platform WiFi listing command and parses its output.
// It is the only resource-bearing piece of this package; everything after
// the command invocation is pure.
type Scanner struct {
	// GOOS overrides runtime.GOOS, for tests.
	GOOS string
}

// Scan runs the platform scan command and returns the parsed raw entries.
// The caller controls cancellation and timeout through ctx.
func (s *Scanner) Scan(ctx context.Context) ([]RawEntry, error) {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "windows":
		out, err := runCommand(ctx, "netsh", "wlan", "show", "networks", "mode=bssid")
		if err != nil {
			return nil, fmt.Errorf("run netsh: %w", err)
		}
		return s.checked(ParseNetsh(string(out)), out)
	case "linux":
		out, err := runCommand(ctx, "nmcli", "-t", "-f", "SSID,SECURITY,SIGNAL,CHAN", "device", "wifi", "list")
		if err != nil {
			return nil, fmt.Errorf("run nmcli: %w", err)
		}
		return s.checked(ParseNmcli(string(out)), out)
	default:
		return nil, fmt.Errorf("%w: %s", sentinelErrors.ErrScanUnsupported, goos)
	}
}

func (s *Scanner) checked(entries []RawEntry, raw []byte) ([]RawEntry, error) {
	if len(entries) == 0 && strings.TrimSpace(string(raw)) == "" {
		return nil, sentinelErrors.ErrNoScanOutput
	}
	return entries, nil
}
