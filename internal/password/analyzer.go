package password

import (
	"math"
	"unicode"
)

// Requirement names reported in Analysis.Requirements.
const (
	ReqMinLength  = "min_length"
	ReqHasUpper   = "has_upper"
	ReqHasLower   = "has_lower"
	ReqHasDigit   = "has_digit"
	ReqHasSpecial = "has_special"
)

// MinLength is the length threshold for the min_length requirement.
const MinLength = 12

// Alphabet sizes per detected character class. Special characters are
// approximated by the printable ASCII punctuation set.
const (
	lowerAlphabet   = 26
	upperAlphabet   = 26
	digitAlphabet   = 10
	specialAlphabet = 32
)

// Scoring constants. Entropy saturates the entropy component at the ceiling;
// each satisfied requirement adds a fixed bonus. Both components only ever
// add points, which keeps the score monotonic in each input.
const (
	entropyCeilingBits = 80.0
	entropyWeight      = 70.0
	requirementBonus   = 6
	attackerGuessRate  = 1e9 // guesses per second
)

// Strength is the qualitative label derived from the composite score.
type Strength int

const (
	StrengthCritical Strength = iota
	StrengthWeak
	StrengthModerate
	StrengthStrong
	StrengthExcellent
)

// String returns a human-readable representation of the strength label.
func (s Strength) String() string {
	switch s {
	case StrengthExcellent:
		return "EXCELLENT"
	case StrengthStrong:
		return "STRONG"
	case StrengthModerate:
		return "MODERATE"
	case StrengthWeak:
		return "WEAK"
	default:
		return "CRITICAL"
	}
}

// MarshalText implements encoding.TextMarshaler so JSON results carry the
// label rather than the ordinal.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strength) UnmarshalText(text []byte) error {
	switch string(text) {
	case "EXCELLENT":
		*s = StrengthExcellent
	case "STRONG":
		*s = StrengthStrong
	case "MODERATE":
		*s = StrengthModerate
	case "WEAK":
		*s = StrengthWeak
	default:
		*s = StrengthCritical
	}
	return nil
}

// StrengthForScore maps a 0-100 score to its label. Boundaries are inclusive
// on the lower bound of each band.
func StrengthForScore(score int) Strength {
	switch {
	case score >= 80:
		return StrengthExcellent
	case score >= 60:
		return StrengthStrong
	case score >= 40:
		return StrengthModerate
	case score >= 20:
		return StrengthWeak
	default:
		return StrengthCritical
	}
}

// Analysis is the immutable result of analyzing a single candidate password.
type Analysis struct {
	Length       int             `json:"length"`
	EntropyBits  float64         `json:"entropy_bits"`
	Score        int             `json:"score"`
	Strength     Strength        `json:"strength"`
	Requirements map[string]bool `json:"requirements"`
	CrackTime    string          `json:"crack_time"`
}

// Analyze scores a candidate password. It never fails: the empty string
// yields score 0 and a CRITICAL label.
func Analyze(candidate string) Analysis {
	entropy := EntropyBits(candidate)
	reqs := checkRequirements(candidate)

	satisfied := 0
	for _, met := range reqs {
		if met {
			satisfied++
		}
	}

	entropyScore := entropy / entropyCeilingBits
	if entropyScore > 1 {
		entropyScore = 1
	}
	score := int(math.Round(entropyScore*entropyWeight)) + satisfied*requirementBonus
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Analysis{
		Length:       len([]rune(candidate)),
		EntropyBits:  entropy,
		Score:        score,
		Strength:     StrengthForScore(score),
		Requirements: reqs,
		CrackTime:    FormatCrackTime(entropy),
	}
}

// EntropyBits estimates the information content of a candidate password from
// the size of the character-class alphabet it actually uses. The alphabet is
// floored at 1 so the empty string has a defined entropy of 0.
func EntropyBits(candidate string) float64 {
	alphabet := alphabetSize(candidate)
	if alphabet < 1 {
		alphabet = 1
	}
	return float64(len([]rune(candidate))) * math.Log2(float64(alphabet))
}

func alphabetSize(candidate string) int {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range candidate {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	size := 0
	if hasLower {
		size += lowerAlphabet
	}
	if hasUpper {
		size += upperAlphabet
	}
	if hasDigit {
		size += digitAlphabet
	}
	if hasSpecial {
		size += specialAlphabet
	}
	return size
}

func checkRequirements(candidate string) map[string]bool {
	reqs := map[string]bool{
		ReqMinLength:  len([]rune(candidate)) >= MinLength,
		ReqHasUpper:   false,
		ReqHasLower:   false,
		ReqHasDigit:   false,
		ReqHasSpecial: false,
	}
	for _, r := range candidate {
		switch {
		case unicode.IsLower(r):
			reqs[ReqHasLower] = true
		case unicode.IsUpper(r):
			reqs[ReqHasUpper] = true
		case unicode.IsDigit(r):
			reqs[ReqHasDigit] = true
		default:
			reqs[ReqHasSpecial] = true
		}
	}
	return reqs
}
