package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/graexlabs/sentinel-cli/internal/breach"
	"github.com/graexlabs/sentinel-cli/internal/password"
	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// requirementOrder fixes the display order of requirement rows.
var requirementOrder = []string{
	password.ReqMinLength,
	password.ReqHasUpper,
	password.ReqHasLower,
	password.ReqHasDigit,
	password.ReqHasSpecial,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze password strength (entropy, requirements, crack time)",
	Long: `Analyze a candidate password and report:
  - An entropy estimate based on the character classes in use
  - Five requirement checks (length, upper, lower, digit, special)
  - A composite 0-100 score with a qualitative strength label
  - An estimated crack time at a fixed offline attacker rate

The password is read from an interactive masked prompt by default, or from
standard input with --stdin. It is never echoed, logged, or written to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		fromStdin, _ := cmd.Flags().GetBool("stdin")
		checkBreach, _ := cmd.Flags().GetBool("breach")
		asJSON, _ := cmd.Flags().GetBool("json")

		candidate, err := readCandidate(fromStdin)
		if err != nil {
			return err
		}

		analysis := password.Analyze(candidate)

		var breachResult *breach.Result
		if checkBreach {
			r := breach.Check(candidate)
			breachResult = &r
		}

		delta := telemetry.Counters{PasswordsAnalyzed: 1}
		if breachResult != nil && breachResult.Breached {
			delta.BreachesFound = 1
		}
		appCtx.Counters.Add(delta)

		if asJSON {
			return printAnalysisJSON(cmd, analysis, breachResult)
		}

		printAnalysis(cmd, analysis, appCtx.Config.Defaults.GuessRateLabel)
		if breachResult != nil {
			printBreachResult(cmd, *breachResult)
		}
		return nil
	},
}

// readCandidate reads the candidate password without echoing it. The masked
// prompt requires a terminal; piped input must use --stdin.
func readCandidate(fromStdin bool) (string, error) {
	if fromStdin {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read stdin: %w", err)
			}
			return "", nil
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; use --stdin for piped input")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func printAnalysis(cmd *cobra.Command, analysis password.Analysis, guessRateLabel string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s (%d/100)\n\n",
		colorInfo("Strength:"), formatStrengthWithColor(analysis.Strength), analysis.Score)

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Length:\t%d characters\n", analysis.Length)
	fmt.Fprintf(tw, "Entropy:\t%.1f bits\n", analysis.EntropyBits)
	fmt.Fprintf(tw, "Crack time:\t%s (at %s)\n", analysis.CrackTime, guessRateLabel)
	tw.Flush()

	fmt.Fprintf(out, "\n%s\n", colorInfo("Requirements:"))
	rw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	for _, name := range requirementOrder {
		fmt.Fprintf(rw, "  %s\t%s\n", name, formatRequirementWithColor(analysis.Requirements[name]))
	}
	rw.Flush()
}

func printBreachResult(cmd *cobra.Command, result breach.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	if result.Breached {
		fmt.Fprintf(out, "%s found in approximately %d breached accounts. Change this password.\n",
			colorError("BREACHED:"), result.Count)
		return
	}
	fmt.Fprintf(out, "%s %s\n", colorSuccess("No breach:"), result.Message)
}

type analysisEnvelope struct {
	password.Analysis
	Breach *breach.Result `json:"breach,omitempty"`
}

func printAnalysisJSON(cmd *cobra.Command, analysis password.Analysis, breachResult *breach.Result) error {
	payload, err := json.MarshalIndent(analysisEnvelope{Analysis: analysis, Breach: breachResult}, jsonPrefix, jsonIndent)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

func init() {
	analyzeCmd.Flags().Bool("stdin", false, "Read the password from standard input instead of prompting")
	analyzeCmd.Flags().Bool("breach", false, "Also run the local breach-exposure check")
	analyzeCmd.Flags().Bool("json", false, "Emit the analysis as JSON")
}
