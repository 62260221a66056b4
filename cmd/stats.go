package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage totals accumulated across runs",
	Long: `Summarize the telemetry history: how many passwords were analyzed,
networks scanned, breaches found, and reports generated across past runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		format, _ := cmd.Flags().GetString("format")
		limit, _ := cmd.Flags().GetInt("limit")
		format = strings.ToLower(strings.TrimSpace(format))
		if format == "" {
			format = "text"
		}

		history, err := telemetry.LoadHistory(appCtx.ResultsDir, limit)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s telemetry records found. Run analyze, scan, or batch first.\n", colorWarn("No"))
			return nil
		}

		totals := telemetry.Aggregate(history)

		switch format {
		case "json":
			payload, err := json.MarshalIndent(statsSummary{
				Runs:   len(history),
				Totals: totals,
				Recent: history,
			}, jsonPrefix, jsonIndent)
			if err != nil {
				return fmt.Errorf("marshal stats: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		case "table":
			printStatsTable(cmd, history)
		case "text":
			printStatsText(cmd, len(history), totals)
			printStatsTrend(cmd, history)
		default:
			return fmt.Errorf("unsupported format %q (use text|table|json)", format)
		}
		return nil
	},
}

type statsSummary struct {
	Runs   int                `json:"runs"`
	Totals telemetry.Counters `json:"totals"`
	Recent []telemetry.Record `json:"recent"`
}

func printStatsText(cmd *cobra.Command, runs int, totals telemetry.Counters) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, colorInfo("Usage Totals"))
	fmt.Fprintf(out, "Runs: %d\n", runs)
	fmt.Fprintf(out, "Passwords analyzed: %s\n", colorSuccess(fmt.Sprintf("%d", totals.PasswordsAnalyzed)))
	fmt.Fprintf(out, "Networks scanned:   %s\n", colorSuccess(fmt.Sprintf("%d", totals.NetworksScanned)))
	fmt.Fprintf(out, "Breaches found:     %s\n", colorError(fmt.Sprintf("%d", totals.BreachesFound)))
	fmt.Fprintf(out, "Reports generated:  %s\n", colorSuccess(fmt.Sprintf("%d", totals.ReportsGenerated)))
}

func printStatsTable(cmd *cobra.Command, history []telemetry.Record) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tCOMMAND\tPASSWORDS\tNETWORKS\tBREACHES\tREPORTS\tDURATION")
	for _, rec := range history {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%.2fs\n",
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.Command,
			rec.PasswordsAnalyzed,
			rec.NetworksScanned,
			rec.BreachesFound,
			rec.ReportsGenerated,
			rec.DurationSeconds,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush stats table: %v\n", err)
	}
}

// printStatsTrend renders a small ASCII bar per run, scaled to the busiest
// run in the window.
func printStatsTrend(cmd *cobra.Command, history []telemetry.Record) {
	const barWidth = 40

	peak := 0
	for _, rec := range history {
		if activity := recordActivity(rec); activity > peak {
			peak = activity
		}
	}
	if peak == 0 {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", colorInfo("Activity Trend"))
	for _, rec := range history {
		activity := recordActivity(rec)
		barLen := int(math.Round(float64(activity) / float64(peak) * barWidth))
		if barLen == 0 && activity > 0 {
			barLen = 1
		}
		fmt.Fprintf(out, "%s | %-*s | %s (%d item(s))\n",
			rec.Timestamp.Format("2006-01-02 15:04"),
			barWidth,
			strings.Repeat("#", barLen),
			rec.Command,
			activity,
		)
	}
}

func recordActivity(rec telemetry.Record) int {
	return rec.PasswordsAnalyzed + rec.NetworksScanned + rec.ReportsGenerated
}

func init() {
	statsCmd.Flags().String("format", "text", "Output format: text|table|json")
	statsCmd.Flags().Int("limit", 20, "Number of recent runs to include")
}
