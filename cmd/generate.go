package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/graexlabs/sentinel-cli/internal/password"
	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random passwords from a configurable character set",
	Long: `Generate one or more random passwords using crypto/rand.

Length is bounded to 12-32 characters; out-of-range values clamp rather than
error. At least one character class must remain enabled. Each generated
password includes at least one character from every enabled class and is
analyzed in place so the strength of the output is visible immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		length, _ := cmd.Flags().GetInt("length")
		count, _ := cmd.Flags().GetInt("count")
		noLower, _ := cmd.Flags().GetBool("no-lower")
		noUpper, _ := cmd.Flags().GetBool("no-upper")
		noDigits, _ := cmd.Flags().GetBool("no-digits")
		noSpecial, _ := cmd.Flags().GetBool("no-special")
		asJSON, _ := cmd.Flags().GetBool("json")

		if count < 1 {
			count = 1
		}
		if count > 100 {
			count = 100
		}

		cfg := password.CharsetConfig{
			Lower:   !noLower,
			Upper:   !noUpper,
			Digits:  !noDigits,
			Special: !noSpecial,
			Length:  length,
		}

		type generated struct {
			Password string            `json:"password"`
			Score    int               `json:"score"`
			Strength password.Strength `json:"strength"`
		}

		out := cmd.OutOrStdout()
		results := make([]generated, 0, count)
		for i := 0; i < count; i++ {
			pw, err := password.Generate(cfg)
			if err != nil {
				return err
			}
			analysis := password.Analyze(pw)
			results = append(results, generated{Password: pw, Score: analysis.Score, Strength: analysis.Strength})
		}

		appCtx.Counters.Add(telemetry.Counters{PasswordsAnalyzed: count})

		if asJSON {
			payload, err := json.MarshalIndent(results, jsonPrefix, jsonIndent)
			if err != nil {
				return fmt.Errorf("marshal generated passwords: %w", err)
			}
			fmt.Fprintln(out, string(payload))
			return nil
		}

		for i, r := range results {
			if count == 1 {
				fmt.Fprintf(out, "%s\n", r.Password)
				fmt.Fprintf(out, "%s %s (%d/100)\n", colorInfo("Strength:"), formatStrengthWithColor(r.Strength), r.Score)
				continue
			}
			fmt.Fprintf(out, "%3d. %s  %s (%d/100)\n", i+1, r.Password, formatStrengthWithColor(r.Strength), r.Score)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("length", "l", password.DefaultLength, "Password length (12-32, clamped)")
	generateCmd.Flags().IntP("count", "n", 1, "Number of passwords to generate (1-100)")
	generateCmd.Flags().Bool("no-lower", false, "Exclude lowercase letters")
	generateCmd.Flags().Bool("no-upper", false, "Exclude uppercase letters")
	generateCmd.Flags().Bool("no-digits", false, "Exclude digits")
	generateCmd.Flags().Bool("no-special", false, "Exclude special characters")
	generateCmd.Flags().Bool("json", false, "Emit generated passwords as JSON")
}
