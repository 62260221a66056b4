package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/graexlabs/sentinel-cli/internal/batch"
	"github.com/graexlabs/sentinel-cli/internal/breach"
	"github.com/graexlabs/sentinel-cli/internal/password"
	"github.com/graexlabs/sentinel-cli/internal/shared/constants"
	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run bulk password operations from wordlist files",
}

var batchCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Score every password in a wordlist file",
	Long: `Read candidate passwords from a file (one per line) and score each one.

Candidates are analyzed concurrently under a global rate limit. Persisted
results are redacted: only a short prefix of each candidate survives on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		filePath, _ := cmd.Flags().GetString("file")
		checkBreach, _ := cmd.Flags().GetBool("breach")
		asJSON, _ := cmd.Flags().GetBool("json")

		if filePath == "" {
			return fmt.Errorf("%w: --file", sentinelErrors.ErrMissingRequired)
		}

		candidates, err := readWordlist(filePath)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return fmt.Errorf("%w: no candidates in %s", sentinelErrors.ErrInvalidInput, filePath)
		}
		if len(candidates) > constants.MaxBatchPasswords {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s wordlist truncated to %d candidate(s)\n",
				colorWarn("Warning:"), constants.MaxBatchPasswords)
			candidates = candidates[:constants.MaxBatchPasswords]
		}

		baseCtx := cmd.Context()
		if baseCtx == nil {
			baseCtx = context.Background()
		}
		ctx, cancel := context.WithCancel(baseCtx)
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		go func() {
			select {
			case sig := <-sigCh:
				fmt.Fprintf(cmd.ErrOrStderr(), "\n%s Received %s, finalizing partial results...\n",
					colorWarn("!"), sig.String())
				cancel()
			case <-ctx.Done():
			}
		}()

		var progress *progressPrinter
		var observe batch.ObserveFunc
		if cliConfig.Batch.ProgressEnabled && !asJSON {
			progress = newProgressPrinter(len(candidates), "batch check")
			progress.Start()
			observe = func(outcome batch.Outcome, duration float64) {
				progress.Increment(outcome.Analysis.Strength >= password.StrengthStrong, duration)
			}
		}

		concurrency := cliConfig.Batch.Concurrency
		if cmd.Flags().Changed("concurrency") {
			concurrency, _ = cmd.Flags().GetInt("concurrency")
		}
		rateLimit := cliConfig.Batch.RateLimit
		if cmd.Flags().Changed("rate") {
			rateLimit, _ = cmd.Flags().GetInt("rate")
		}

		runner := &batch.Runner{
			Concurrency: concurrency,
			RateLimit:   rateLimit,
			CheckBreach: checkBreach,
		}

		start := time.Now()
		outcomes := runner.Run(ctx, candidates, observe)

		if progress != nil {
			progress.Stop()
		}
		if ctx.Err() != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s Run cancelled. Writing partial results...\n", colorWarn("!"))
		}

		results := make([]BatchResult, 0, len(outcomes))
		weak := 0
		breached := 0
		for _, outcome := range outcomes {
			var breachResult breach.Result
			if outcome.Breach != nil {
				breachResult = *outcome.Breach
			}
			results = append(results, newBatchResult(outcome.Candidate, outcome.Analysis, breachResult))
			if outcome.Analysis.Strength < password.StrengthStrong {
				weak++
			}
			if breachResult.Breached {
				breached++
			}
		}

		appCtx.Counters.Add(telemetry.Counters{
			PasswordsAnalyzed: len(results),
			BreachesFound:     breached,
		})

		output := BatchOutput{
			Metadata: RunMetadata{
				GeneratedAt:  time.Now().UTC(),
				Command:      "batch check",
				Source:       filePath,
				TotalRecords: len(results),
			},
			Results: results,
		}

		resultsPath, err := writeResultsFile(appCtx.ResultsDir, passwordResultsFilename, output)
		if err != nil {
			return err
		}

		if asJSON {
			payload, err := json.MarshalIndent(output, jsonPrefix, jsonIndent)
			if err != nil {
				return fmt.Errorf("marshal batch output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		}

		printBatchTable(cmd, results)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n%s %d candidate(s) in %.2fs | weak: %s | breached: %s\n",
			colorInfo("Summary:"),
			len(results),
			time.Since(start).Seconds(),
			colorWarn(fmt.Sprintf("%d", weak)),
			colorError(fmt.Sprintf("%d", breached)),
		)
		fmt.Fprintf(out, "%s %s\n", colorInfo("Results:"), resultsPath)
		return nil
	},
}

// readWordlist loads one candidate per line, skipping blank lines.
// Leading and trailing spaces are preserved: they are legal password
// characters.
func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied wordlist path.
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	var candidates []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return candidates, nil
}

func printBatchTable(cmd *cobra.Command, results []BatchResult) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPASSWORD\tLEN\tENTROPY\tSCORE\tSTRENGTH\tCRACK TIME\tBREACHED")
	for i, r := range results {
		breachedLabel := "no"
		if r.Breached {
			breachedLabel = colorError("YES")
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f\t%d\t%s\t%s\t%s\n",
			i+1, r.Password, r.Length, r.EntropyBits, r.Score,
			formatStrengthWithColor(r.Strength), r.CrackTime, breachedLabel)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush batch table: %v\n", err)
	}
}

func init() {
	batchCheckCmd.Flags().StringP("file", "f", "", "Wordlist file, one candidate password per line (required)")
	batchCheckCmd.Flags().IntP("concurrency", "c", defaultBatchConcurrency, "Max concurrent analyses")
	batchCheckCmd.Flags().IntP("rate", "r", defaultBatchRateLimit, "Candidates per second (global)")
	batchCheckCmd.Flags().Bool("breach", false, "Also look each candidate up in the breach corpus")
	batchCheckCmd.Flags().Bool("json", false, "Emit results as JSON")
	batchCheckCmd.Flags().BoolVar(&cliConfig.Batch.ProgressEnabled, "progress", cliConfig.Batch.ProgressEnabled, "Display live progress")

	batchCmd.AddCommand(batchCheckCmd)
}
