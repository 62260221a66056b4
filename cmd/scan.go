package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/graexlabs/sentinel-cli/internal/wifi"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby WiFi networks and classify their encryption risk",
	Long: `Scan for WiFi networks and assign each a risk tier:

  CRITICAL  WEP encryption, trivially crackable
  HIGH      open network, no encryption
  MEDIUM    legacy WPA1 only
  LOW       WPA2 or WPA3
  UNKNOWN   unrecognized security descriptor

The platform listing command (netsh on Windows, nmcli on Linux) supplies the
raw data. Previously captured output can be classified offline with --input.
Results are written to the results directory for report generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		inputPath, _ := cmd.Flags().GetString("input")
		parserName, _ := cmd.Flags().GetString("parser")
		asJSON, _ := cmd.Flags().GetBool("json")

		timeoutSecs := cliConfig.Scan.TimeoutSecs
		if cmd.Flags().Changed("timeout") {
			timeoutSecs, _ = cmd.Flags().GetInt("timeout")
		}

		entries, source, err := collectRawEntries(cmd.Context(), inputPath, parserName, timeoutSecs)
		if err != nil {
			return err
		}

		networks := wifi.ClassifyAll(entries)
		appCtx.Counters.Add(telemetry.Counters{NetworksScanned: len(networks)})

		output := ScanOutput{
			Metadata: RunMetadata{
				GeneratedAt:  time.Now().UTC(),
				Command:      "scan",
				Source:       source,
				TotalRecords: len(networks),
			},
			Networks: networks,
		}

		resultsPath, err := writeResultsFile(appCtx.ResultsDir, wifiResultsFilename, output)
		if err != nil {
			return err
		}

		if asJSON {
			payload, err := json.MarshalIndent(output, jsonPrefix, jsonIndent)
			if err != nil {
				return fmt.Errorf("marshal scan output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		}

		printScanTable(cmd, networks)
		printScanSummary(cmd, networks, resultsPath)
		return nil
	},
}

// collectRawEntries sources raw entries either from a captured output file
// or from a live platform scan.
func collectRawEntries(ctx context.Context, inputPath, parserName string, timeoutSecs int) ([]wifi.RawEntry, string, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, "", fmt.Errorf("read scan input: %w", err)
		}
		switch parserName {
		case "netsh":
			return wifi.ParseNetsh(string(data)), inputPath, nil
		case "nmcli":
			return wifi.ParseNmcli(string(data)), inputPath, nil
		default:
			return nil, "", fmt.Errorf("unsupported parser %q (use netsh|nmcli)", parserName)
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	scanCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutSecs)*time.Second)
	defer cancel()

	scanner := &wifi.Scanner{}
	entries, err := scanner.Scan(scanCtx)
	if err != nil {
		return nil, "", fmt.Errorf("wifi scan: %w", err)
	}
	return entries, runtime.GOOS, nil
}

func printScanTable(cmd *cobra.Command, networks []wifi.Network) {
	out := cmd.OutOrStdout()
	if len(networks) == 0 {
		fmt.Fprintln(out, colorWarn("No networks found."))
		return
	}

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSSID\tSECURITY\tSIGNAL\tCHANNEL\tRISK")
	for i, n := range networks {
		signal := n.Signal
		if signal == "" {
			signal = "-"
		}
		channel := n.Channel
		if channel == "" {
			channel = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, n.SSID, n.Security, signal, channel, formatRiskWithColor(n.Risk))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush scan table: %v\n", err)
	}
}

func printScanSummary(cmd *cobra.Command, networks []wifi.Network, resultsPath string) {
	out := cmd.OutOrStdout()
	counts := wifi.TierCounts(networks)

	fmt.Fprintf(out, "\n%s %d network(s) | CRITICAL: %s | HIGH: %s | MEDIUM: %s | LOW: %s | UNKNOWN: %d\n",
		colorInfo("Summary:"),
		len(networks),
		colorError(fmt.Sprintf("%d", counts[wifi.RiskCritical])),
		colorError(fmt.Sprintf("%d", counts[wifi.RiskHigh])),
		colorWarn(fmt.Sprintf("%d", counts[wifi.RiskMedium])),
		colorSuccess(fmt.Sprintf("%d", counts[wifi.RiskLow])),
		counts[wifi.RiskUnknown],
	)

	vulnerable := wifi.Vulnerable(networks)
	if len(vulnerable) > 0 {
		fmt.Fprintf(out, "%s %d vulnerable network(s):\n", colorError("Warning:"), len(vulnerable))
		for _, n := range vulnerable {
			fmt.Fprintf(out, "  - %s (%s, %s)\n", n.SSID, n.Security, n.Risk)
		}
	}

	fmt.Fprintf(out, "%s %s\n", colorInfo("Results:"), resultsPath)
}

func init() {
	scanCmd.Flags().String("input", "", "Classify previously captured scan output from a file instead of scanning")
	scanCmd.Flags().String("parser", "netsh", "Parser for --input files: netsh|nmcli")
	scanCmd.Flags().Int("timeout", defaultScanTimeoutSeconds, "Scan command timeout in seconds")
	scanCmd.Flags().Bool("json", false, "Emit classified networks as JSON")
}
