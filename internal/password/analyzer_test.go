package password

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeEmptyPassword(t *testing.T) {
	got := Analyze("")

	if got.Score != 0 {
		t.Errorf("expected score 0 for empty password, got %d", got.Score)
	}
	if got.Strength != StrengthCritical {
		t.Errorf("expected CRITICAL for empty password, got %s", got.Strength)
	}
	if got.EntropyBits != 0 {
		t.Errorf("expected 0 entropy bits, got %f", got.EntropyBits)
	}
	for name, met := range got.Requirements {
		if met {
			t.Errorf("requirement %s should not be satisfied by empty password", name)
		}
	}
	if got.CrackTime != "less than a second" {
		t.Errorf("expected smallest-unit crack time, got %q", got.CrackTime)
	}
}

func TestAnalyzeLowercaseOnly(t *testing.T) {
	got := Analyze("aaaaaaaaaaaa") // 12 chars, lowercase only

	wantReqs := map[string]bool{
		ReqMinLength:  true,
		ReqHasLower:   true,
		ReqHasUpper:   false,
		ReqHasDigit:   false,
		ReqHasSpecial: false,
	}
	if !reflect.DeepEqual(got.Requirements, wantReqs) {
		t.Errorf("requirements mismatch: got %v, want %v", got.Requirements, wantReqs)
	}

	// An equal-length password exercising all four classes must outscore it.
	allClasses := Analyze("Aa1!Aa1!Aa1!")
	if got.Score >= allClasses.Score {
		t.Errorf("lowercase-only score %d should be below all-class score %d", got.Score, allClasses.Score)
	}
}

func TestEntropyMonotonicInLength(t *testing.T) {
	// Prefix pairs using the same character classes.
	tests := []struct {
		name   string
		prefix string
		longer string
	}{
		{name: "lowercase", prefix: "abc", longer: "abcdef"},
		{name: "mixed case", prefix: "aBcD", longer: "aBcDeFgH"},
		{name: "all classes", prefix: "aB3!", longer: "aB3!aB3!aB3!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			short := EntropyBits(tt.prefix)
			long := EntropyBits(tt.longer)
			if long < short {
				t.Errorf("entropy decreased with length: %f -> %f", short, long)
			}
		})
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	for _, candidate := range []string{"", "hunter2", "Tr0ub4dor&3", strings.Repeat("x", 500)} {
		first := Analyze(candidate)
		second := Analyze(candidate)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) not idempotent: %+v vs %+v", candidate, first, second)
		}
	}
}

func TestScoreMonotonicInSatisfiedRequirements(t *testing.T) {
	// Same length, strictly more classes satisfied: score must not drop.
	weaker := Analyze("abcdefgh")
	stronger := Analyze("abcdefG1")
	if stronger.Score < weaker.Score {
		t.Errorf("score dropped despite more satisfied requirements: %d -> %d", weaker.Score, stronger.Score)
	}
}

func TestStrengthForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Strength
	}{
		{score: 100, want: StrengthExcellent},
		{score: 80, want: StrengthExcellent},
		{score: 79, want: StrengthStrong},
		{score: 60, want: StrengthStrong},
		{score: 59, want: StrengthModerate},
		{score: 40, want: StrengthModerate},
		{score: 39, want: StrengthWeak},
		{score: 20, want: StrengthWeak},
		{score: 19, want: StrengthCritical},
		{score: 0, want: StrengthCritical},
	}

	for _, tt := range tests {
		if got := StrengthForScore(tt.score); got != tt.want {
			t.Errorf("StrengthForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestAnalyzeLongAllClassPassword(t *testing.T) {
	got := Analyze(strings.Repeat("aB3!", 8)) // 32 chars, all classes

	if got.Score != 100 {
		t.Errorf("expected max score, got %d", got.Score)
	}
	if got.Strength != StrengthExcellent {
		t.Errorf("expected EXCELLENT, got %s", got.Strength)
	}
	if got.CrackTime != "centuries" {
		t.Errorf("expected qualitative crack time, got %q", got.CrackTime)
	}
}

func TestStrengthTextRoundTrip(t *testing.T) {
	for _, s := range []Strength{StrengthCritical, StrengthWeak, StrengthModerate, StrengthStrong, StrengthExcellent} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", s, err)
		}
		var back Strength
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %s -> %s", s, back)
		}
	}
}
