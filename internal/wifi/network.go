package wifi

// Sentinel values substituted for absent fields so downstream consumers
// never branch on missing-ness.
const (
	HiddenSSID      = "Hidden"
	UnknownSecurity = "Unknown"
)

// RiskTier is the coarse ordinal classification of a network's encryption
// posture.
//
// Design decision: iota-based constants rather than strings keep comparisons
// and sorting cheap; String() provides the display form.
type RiskTier int

const (
	// RiskUnknown indicates a security descriptor that matched no known
	// protocol token.
	RiskUnknown RiskTier = iota

	// RiskLow indicates modern encryption (WPA2 or WPA3).
	RiskLow

	// RiskMedium indicates legacy WPA1 without a WPA2/WPA3 upgrade path
	// advertised.
	RiskMedium

	// RiskHigh indicates an open network with no encryption at all.
	RiskHigh

	// RiskCritical indicates WEP, which is trivially crackable.
	RiskCritical
)

// String returns a human-readable representation of the risk tier.
func (r RiskTier) String() string {
	switch r {
	case RiskCritical:
		return "CRITICAL"
	case RiskHigh:
		return "HIGH"
	case RiskMedium:
		return "MEDIUM"
	case RiskLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r RiskTier) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RiskTier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "CRITICAL":
		*r = RiskCritical
	case "HIGH":
		*r = RiskHigh
	case "MEDIUM":
		*r = RiskMedium
	case "LOW":
		*r = RiskLow
	default:
		*r = RiskUnknown
	}
	return nil
}

// RawEntry is one network as reported by the platform scan command before
// classification. Any field may be empty.
type RawEntry struct {
	SSID     string `json:"ssid"`
	Security string `json:"security"`
	Signal   string `json:"signal"`
	Channel  string `json:"channel"`
	BSSID    string `json:"bssid,omitempty"`
}

// Network is one classified network record. Signal and channel are carried
// verbatim from the raw entry; the risk tier is a pure function of the
// security descriptor.
type Network struct {
	SSID     string   `json:"ssid"`
	Security string   `json:"security"`
	Signal   string   `json:"signal"`
	Channel  string   `json:"channel"`
	BSSID    string   `json:"bssid,omitempty"`
	Risk     RiskTier `json:"risk"`
}
