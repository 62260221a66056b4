package password

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
	centuryYears     = 100
)

// FormatCrackTime renders the estimated time to exhaust the keyspace implied
// by the given entropy, assuming a fixed offline attacker rate. The largest
// unit that keeps the displayed magnitude at or above 1 is chosen. Estimates
// beyond a century render as a qualitative "centuries" so very large
// entropies never overflow into nonsense figures.
func FormatCrackTime(entropyBits float64) string {
	seconds := math.Pow(2, entropyBits) / attackerGuessRate

	switch {
	case math.IsInf(seconds, 1) || seconds/secondsPerYear >= centuryYears:
		return "centuries"
	case seconds < 1:
		return "less than a second"
	case seconds < secondsPerMinute:
		return formatUnit(seconds, "second")
	case seconds < secondsPerHour:
		return formatUnit(seconds/secondsPerMinute, "minute")
	case seconds < secondsPerDay:
		return formatUnit(seconds/secondsPerHour, "hour")
	case seconds < secondsPerYear:
		return formatUnit(seconds/secondsPerDay, "day")
	default:
		return formatUnit(seconds/secondsPerYear, "year")
	}
}

func formatUnit(value float64, unit string) string {
	rounded := math.Round(value)
	if rounded == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%.0f %ss", rounded, unit)
}
