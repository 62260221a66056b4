package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/graexlabs/sentinel-cli/internal/breach"
	"github.com/graexlabs/sentinel-cli/internal/password"
	"github.com/graexlabs/sentinel-cli/internal/shared/constants"
	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
	"github.com/graexlabs/sentinel-cli/internal/shared/security"
	"github.com/graexlabs/sentinel-cli/internal/wifi"
)

const (
	jsonPrefix = ""
	jsonIndent = "  "

	wifiResultsFilename     = "wifi_results.json"
	passwordResultsFilename = "password_results.json"
)

// RunMetadata describes one scan or batch run stored in the results dir.
type RunMetadata struct {
	GeneratedAt  time.Time `json:"generated_at"`
	Command      string    `json:"command"`
	Source       string    `json:"source,omitempty"`
	TotalRecords int       `json:"total_records"`
}

// ScanOutput is the persisted form of a WiFi scan run.
type ScanOutput struct {
	Metadata RunMetadata    `json:"metadata"`
	Networks []wifi.Network `json:"networks"`
}

// BatchResult is one redacted entry of a batch password check. The candidate
// itself never touches disk; only a short prefix survives.
type BatchResult struct {
	Password    string            `json:"password"`
	Length      int               `json:"length"`
	EntropyBits float64           `json:"entropy_bits"`
	Score       int               `json:"score"`
	Strength    password.Strength `json:"strength"`
	CrackTime   string            `json:"crack_time"`
	Breached    bool              `json:"breached"`
}

// BatchOutput is the persisted form of a batch password check run.
type BatchOutput struct {
	Metadata RunMetadata   `json:"metadata"`
	Results  []BatchResult `json:"results"`
}

// redactCandidate keeps a short prefix of a candidate password for report
// readability while discarding the rest.
func redactCandidate(candidate string) string {
	runes := []rune(candidate)
	if len(runes) <= constants.RedactedPrefixLen {
		return string(runes) + "..."
	}
	return string(runes[:constants.RedactedPrefixLen]) + "..."
}

func newBatchResult(candidate string, analysis password.Analysis, breachResult breach.Result) BatchResult {
	return BatchResult{
		Password:    redactCandidate(candidate),
		Length:      analysis.Length,
		EntropyBits: analysis.EntropyBits,
		Score:       analysis.Score,
		Strength:    analysis.Strength,
		CrackTime:   analysis.CrackTime,
		Breached:    breachResult.Breached,
	}
}

func resolveResultsPath(resultsDir string, parts ...string) (string, error) {
	return security.ResolveWithin(resultsDir, parts...)
}

func writeResultsFile(resultsDir, filename string, payload any) (string, error) {
	path, err := resolveResultsPath(resultsDir, filename)
	if err != nil {
		return "", fmt.Errorf("resolve results path: %w", err)
	}
	data, err := json.MarshalIndent(payload, jsonPrefix, jsonIndent)
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, constants.DefaultFilePerm); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}
	return path, nil
}

func readResultsFile(resultsDir, filename string, out any) error {
	path, err := resolveResultsPath(resultsDir, filename)
	if err != nil {
		return fmt.Errorf("resolve results path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", sentinelErrors.ErrNoResults, filename)
		}
		return fmt.Errorf("read results: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", sentinelErrors.ErrInvalidResultsFile, filename, err)
	}
	return nil
}
