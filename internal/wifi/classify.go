package wifi

import "strings"

// Classify maps a raw security descriptor to a risk tier. Matching is
// case-insensitive substring matching evaluated in strict precedence order:
// WEP first, then open/unencrypted, then WPA2/WPA3, then bare legacy WPA.
// The WPA2/WPA3 check runs before the bare WPA fallback so mixed
// descriptors such as "WPA/WPA2 Mixed" classify by their strongest
// protocol rather than double-matching.
func Classify(securityDescriptor string) RiskTier {
	desc := strings.ToUpper(securityDescriptor)

	switch {
	case strings.Contains(desc, "WEP"):
		return RiskCritical
	case strings.Contains(desc, "OPEN") || strings.Contains(desc, "NONE"):
		return RiskHigh
	case strings.Contains(desc, "WPA2") || strings.Contains(desc, "WPA3"):
		return RiskLow
	case strings.Contains(desc, "WPA"):
		return RiskMedium
	default:
		return RiskUnknown
	}
}

// ClassifyAll converts raw entries to classified network records. Output
// order matches input order; missing fields degrade to sentinel values.
// The empty input list yields an empty result, never an error.
func ClassifyAll(entries []RawEntry) []Network {
	networks := make([]Network, 0, len(entries))
	for _, e := range entries {
		ssid := strings.TrimSpace(e.SSID)
		if ssid == "" {
			ssid = HiddenSSID
		}
		security := strings.TrimSpace(e.Security)
		if security == "" {
			security = UnknownSecurity
		}

		networks = append(networks, Network{
			SSID:     ssid,
			Security: security,
			Signal:   e.Signal,
			Channel:  e.Channel,
			BSSID:    e.BSSID,
			Risk:     Classify(security),
		})
	}
	return networks
}

// TierCounts folds a classified list into per-tier totals.
func TierCounts(networks []Network) map[RiskTier]int {
	counts := make(map[RiskTier]int)
	for _, n := range networks {
		counts[n.Risk]++
	}
	return counts
}

// Vulnerable returns the subset of networks at tier CRITICAL or HIGH, in
// input order, for the vulnerable-networks summary.
func Vulnerable(networks []Network) []Network {
	var out []Network
	for _, n := range networks {
		if n.Risk == RiskCritical || n.Risk == RiskHigh {
			out = append(out, n)
		}
	}
	return out
}
