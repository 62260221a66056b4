package cmd

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/graexlabs/sentinel-cli/internal/shared/constants"
	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
	"github.com/graexlabs/sentinel-cli/internal/telemetry"
	"github.com/graexlabs/sentinel-cli/internal/wifi"
	"github.com/jung-kurt/gofpdf"
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"
)

const htmlTemplatePath = "templates/report.html"

//go:embed templates/report.html
var reportTemplateFS embed.FS

var htmlReportTemplate = template.Must(
	template.New("report.html").Funcs(template.FuncMap{
		"add":            addInts,
		"lower":          strings.ToLower,
		"riskBadgeClass": riskBadgeClass,
	}).ParseFS(reportTemplateFS, htmlTemplatePath),
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a security report from saved results",
}

var reportGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render saved scan and batch results as json, md, html, or pdf",
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		format, _ := cmd.Flags().GetString("format")
		format = strings.ToLower(strings.TrimSpace(format))
		if format != "json" && format != "md" && format != "html" && format != "pdf" {
			return fmt.Errorf("invalid format: %s (must be json, md, html, or pdf)", format)
		}

		data, err := buildReportData(appCtx.ResultsDir)
		if err != nil {
			return err
		}

		var content []byte
		filename := "report." + format

		switch format {
		case "json":
			content, err = json.MarshalIndent(data, jsonPrefix, jsonIndent)
		case "md":
			content, err = renderMarkdownReport(data)
		case "html":
			content, err = renderHTMLReport(data)
		case "pdf":
			content, err = renderPDFReport(data)
		}
		if err != nil {
			return fmt.Errorf("generate %s report: %w", format, err)
		}

		reportPath, err := resolveResultsPath(appCtx.ResultsDir, filename)
		if err != nil {
			return fmt.Errorf("resolve report path: %w", err)
		}
		if err := os.WriteFile(reportPath, content, constants.DefaultFilePerm); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		appCtx.Counters.Add(telemetry.Counters{ReportsGenerated: 1})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", colorSuccess("Report generated:"), reportPath)
		fmt.Fprintf(out, "Format: %s\n", format)
		if len(data.Sources) > 0 {
			fmt.Fprintf(out, "Result files included: %s\n", strings.Join(data.Sources, ", "))
		}
		return nil
	},
}

// riskBreakdown flattens tier counts for templates.
type riskBreakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Unknown  int `json:"unknown"`
}

// passwordBreakdown summarizes a batch run for templates.
type passwordBreakdown struct {
	Total        int     `json:"total"`
	Weak         int     `json:"weak"`
	Breached     int     `json:"breached"`
	AverageScore float64 `json:"average_score"`
}

// reportData aggregates whatever saved results exist into one renderable
// document.
type reportData struct {
	GeneratedAt string            `json:"generated_at"`
	FooterDate  string            `json:"-"`
	Sources     []string          `json:"sources"`
	Networks    []wifi.Network    `json:"networks,omitempty"`
	Risk        riskBreakdown     `json:"risk_summary"`
	Vulnerable  []wifi.Network    `json:"vulnerable_networks,omitempty"`
	Passwords   []BatchResult     `json:"passwords,omitempty"`
	Password    passwordBreakdown `json:"password_summary"`
}

// buildReportData loads whichever result files exist. At least one of the
// scan or batch outputs must be present.
func buildReportData(resultsDir string) (*reportData, error) {
	now := time.Now()
	data := &reportData{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		FooterDate:  now.Format("2006-01-02 15:04:05"),
	}

	var scanOutput ScanOutput
	scanErr := readResultsFile(resultsDir, wifiResultsFilename, &scanOutput)
	if scanErr == nil {
		data.Sources = append(data.Sources, wifiResultsFilename)
		data.Networks = scanOutput.Networks
		counts := wifi.TierCounts(scanOutput.Networks)
		data.Risk = riskBreakdown{
			Critical: counts[wifi.RiskCritical],
			High:     counts[wifi.RiskHigh],
			Medium:   counts[wifi.RiskMedium],
			Low:      counts[wifi.RiskLow],
			Unknown:  counts[wifi.RiskUnknown],
		}
		data.Vulnerable = wifi.Vulnerable(scanOutput.Networks)
	} else if !errors.Is(scanErr, sentinelErrors.ErrNoResults) {
		return nil, scanErr
	}

	var batchOutput BatchOutput
	batchErr := readResultsFile(resultsDir, passwordResultsFilename, &batchOutput)
	if batchErr == nil {
		data.Sources = append(data.Sources, passwordResultsFilename)
		data.Passwords = batchOutput.Results
		data.Password = summarizePasswords(batchOutput.Results)
	} else if !errors.Is(batchErr, sentinelErrors.ErrNoResults) {
		return nil, batchErr
	}

	if scanErr != nil && batchErr != nil {
		return nil, fmt.Errorf("%w: run scan or batch check first", sentinelErrors.ErrNoResults)
	}
	return data, nil
}

func summarizePasswords(results []BatchResult) passwordBreakdown {
	summary := passwordBreakdown{Total: len(results)}
	scoreSum := 0
	for _, r := range results {
		scoreSum += r.Score
		if r.Score < 60 {
			summary.Weak++
		}
		if r.Breached {
			summary.Breached++
		}
	}
	if summary.Total > 0 {
		summary.AverageScore = float64(scoreSum) / float64(summary.Total)
	}
	return summary
}

func renderMarkdownReport(data *reportData) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Sentinel Security Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", data.GeneratedAt},
			{"Sources", strings.Join(data.Sources, ", ")},
		},
	})
	md.PlainText("")

	if len(data.Networks) > 0 {
		md.H2("WiFi Risk Summary")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Risk", "Count"},
			Rows: [][]string{
				{"CRITICAL", strconv.Itoa(data.Risk.Critical)},
				{"HIGH", strconv.Itoa(data.Risk.High)},
				{"MEDIUM", strconv.Itoa(data.Risk.Medium)},
				{"LOW", strconv.Itoa(data.Risk.Low)},
				{"UNKNOWN", strconv.Itoa(data.Risk.Unknown)},
			},
		})
		md.PlainText("")

		switch {
		case data.Risk.Critical > 0:
			md.Cautionf("%d network(s) use WEP encryption and can be cracked in minutes.", data.Risk.Critical)
		case data.Risk.High > 0:
			md.Warningf("%d open network(s) expose all traffic to eavesdropping.", data.Risk.High)
		default:
			md.Tip("No critically exposed networks detected.")
		}
		md.PlainText("")

		md.H2("Networks")
		md.PlainText("")
		rows := make([][]string, 0, len(data.Networks))
		for _, n := range data.Networks {
			rows = append(rows, []string{n.SSID, n.Security, dashIfEmpty(n.Signal), dashIfEmpty(n.Channel), n.Risk.String()})
		}
		md.Table(markdown.TableSet{
			Header: []string{"SSID", "Security", "Signal", "Channel", "Risk"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(data.Passwords) > 0 {
		md.H2("Password Audit")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Candidates", strconv.Itoa(data.Password.Total)},
				{"Weak (score < 60)", strconv.Itoa(data.Password.Weak)},
				{"Breached", strconv.Itoa(data.Password.Breached)},
				{"Average score", fmt.Sprintf("%.1f", data.Password.AverageScore)},
			},
		})
		md.PlainText("")

		rows := make([][]string, 0, len(data.Passwords))
		for _, r := range data.Passwords {
			breached := "no"
			if r.Breached {
				breached = "yes"
			}
			rows = append(rows, []string{
				"`" + r.Password + "`",
				strconv.Itoa(r.Length),
				fmt.Sprintf("%.1f", r.EntropyBits),
				strconv.Itoa(r.Score),
				r.Strength.String(),
				r.CrackTime,
				breached,
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Password", "Length", "Entropy", "Score", "Strength", "Crack Time", "Breached"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by sentinel on %s*", data.FooterDate)

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderHTMLReport(data *reportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlReportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute html template: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDFReport(data *reportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Sentinel Security Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", data.GeneratedAt), "", 1, "", false, 0, "")
	if len(data.Sources) > 0 {
		pdf.CellFormat(0, 6, fmt.Sprintf("Result files: %s", strings.Join(data.Sources, ", ")), "", 1, "", false, 0, "")
	}
	pdf.Ln(5)

	if len(data.Networks) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "WiFi Risk Summary", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("CRITICAL: %d | HIGH: %d | MEDIUM: %d | LOW: %d | UNKNOWN: %d",
			data.Risk.Critical, data.Risk.High, data.Risk.Medium, data.Risk.Low, data.Risk.Unknown), "", 1, "", false, 0, "")
		pdf.Ln(3)

		for _, n := range data.Networks {
			if pdf.GetY() > 260 {
				pdf.AddPage()
			}
			pdf.SetFont("Arial", "B", 10)
			pdf.SetFillColor(240, 240, 240)
			pdf.CellFormat(0, 6, fmt.Sprintf("%s - %s", n.SSID, n.Risk), "", 1, "", true, 0, "")
			pdf.SetFont("Arial", "", 9)
			pdf.CellFormat(0, 5, fmt.Sprintf("Security: %s | Signal: %s | Channel: %s",
				n.Security, dashIfEmpty(n.Signal), dashIfEmpty(n.Channel)), "", 1, "", false, 0, "")
			pdf.Ln(1)
		}
		pdf.Ln(4)
	}

	if len(data.Passwords) > 0 {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Password Audit", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Candidates: %d | Weak: %d | Breached: %d | Avg score: %.1f",
			data.Password.Total, data.Password.Weak, data.Password.Breached, data.Password.AverageScore), "", 1, "", false, 0, "")
		pdf.Ln(3)

		pdf.SetFont("Arial", "", 9)
		for _, r := range data.Passwords {
			if pdf.GetY() > 270 {
				pdf.AddPage()
			}
			breached := ""
			if r.Breached {
				breached = " [breached]"
			}
			pdf.CellFormat(0, 5, fmt.Sprintf("%s  len=%d  entropy=%.1f  score=%d  %s  %s%s",
				r.Password, r.Length, r.EntropyBits, r.Score, r.Strength, r.CrackTime, breached), "", 1, "", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func addInts(a, b int) int {
	return a + b
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func riskBadgeClass(risk wifi.RiskTier) string {
	switch risk {
	case wifi.RiskCritical:
		return "badge-critical"
	case wifi.RiskHigh:
		return "badge-high"
	case wifi.RiskMedium:
		return "badge-medium"
	case wifi.RiskLow:
		return "badge-low"
	default:
		return "badge-info"
	}
}

func init() {
	reportGenerateCmd.Flags().String("format", "md", "Output format: json|md|html|pdf")
	reportCmd.AddCommand(reportGenerateCmd)
}
