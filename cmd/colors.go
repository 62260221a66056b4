package cmd

import (
	"github.com/fatih/color"
	"github.com/graexlabs/sentinel-cli/internal/password"
	"github.com/graexlabs/sentinel-cli/internal/wifi"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatRiskWithColor(tier wifi.RiskTier) string {
	switch tier {
	case wifi.RiskCritical, wifi.RiskHigh:
		return colorError(tier.String())
	case wifi.RiskMedium:
		return colorWarn(tier.String())
	case wifi.RiskLow:
		return colorSuccess(tier.String())
	default:
		return tier.String()
	}
}

func formatStrengthWithColor(s password.Strength) string {
	switch s {
	case password.StrengthExcellent, password.StrengthStrong:
		return colorSuccess(s.String())
	case password.StrengthModerate:
		return colorWarn(s.String())
	default:
		return colorError(s.String())
	}
}

func formatRequirementWithColor(met bool) string {
	if met {
		return colorSuccess("yes")
	}
	return colorError("no")
}
