package wifi

import (
	"reflect"
	"testing"
)

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       RiskTier
	}{
		{name: "wep", descriptor: "WEP", want: RiskCritical},
		{name: "wep outranks wpa2", descriptor: "WEP/WPA2 transitional", want: RiskCritical},
		{name: "open", descriptor: "OPEN", want: RiskHigh},
		{name: "none lowercase", descriptor: "none", want: RiskHigh},
		{name: "bare wpa", descriptor: "WPA", want: RiskMedium},
		{name: "wpa personal", descriptor: "WPA-Personal", want: RiskMedium},
		{name: "mixed mode classifies by strongest", descriptor: "WPA/WPA2 Mixed", want: RiskLow},
		{name: "wpa2 personal", descriptor: "WPA2-Personal", want: RiskLow},
		{name: "wpa3 sae", descriptor: "WPA3-SAE", want: RiskLow},
		{name: "case insensitive", descriptor: "wpa2-enterprise", want: RiskLow},
		{name: "empty", descriptor: "", want: RiskUnknown},
		{name: "unrecognized", descriptor: "802.1X", want: RiskUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.descriptor); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.descriptor, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	// Identical descriptors must always classify identically.
	for _, desc := range []string{"WEP", "WPA/WPA2 Mixed", "", "garbage"} {
		first := Classify(desc)
		for i := 0; i < 5; i++ {
			if got := Classify(desc); got != first {
				t.Fatalf("Classify(%q) unstable: %s vs %s", desc, first, got)
			}
		}
	}
}

func TestClassifyAllEmptyInput(t *testing.T) {
	got := ClassifyAll(nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %d records", len(got))
	}
	got = ClassifyAll([]RawEntry{})
	if len(got) != 0 {
		t.Fatalf("expected empty result for empty slice, got %d records", len(got))
	}
}

func TestClassifyAllScenario(t *testing.T) {
	entries := []RawEntry{
		{SSID: "CafeNet", Security: "OPEN"},
		{SSID: "Home", Security: "WPA2-Personal"},
		{SSID: "", Security: "WEP"},
	}

	got := ClassifyAll(entries)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}

	wantTiers := []RiskTier{RiskHigh, RiskLow, RiskCritical}
	for i, want := range wantTiers {
		if got[i].Risk != want {
			t.Errorf("record %d: tier %s, want %s", i, got[i].Risk, want)
		}
	}

	// Order preserved, hidden sentinel substituted.
	if got[0].SSID != "CafeNet" || got[1].SSID != "Home" {
		t.Errorf("input order not preserved: %+v", got)
	}
	if got[2].SSID != HiddenSSID {
		t.Errorf("expected hidden sentinel for empty SSID, got %q", got[2].SSID)
	}
}

func TestClassifyAllSentinels(t *testing.T) {
	got := ClassifyAll([]RawEntry{{Signal: "42%", Channel: "11"}})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}

	rec := got[0]
	if rec.SSID != HiddenSSID {
		t.Errorf("SSID sentinel = %q, want %q", rec.SSID, HiddenSSID)
	}
	if rec.Security != UnknownSecurity {
		t.Errorf("security sentinel = %q, want %q", rec.Security, UnknownSecurity)
	}
	if rec.Risk != RiskUnknown {
		t.Errorf("risk = %s, want UNKNOWN", rec.Risk)
	}
	// Raw fields pass through verbatim.
	if rec.Signal != "42%" || rec.Channel != "11" {
		t.Errorf("signal/channel not passed through: %+v", rec)
	}
}

func TestTierCounts(t *testing.T) {
	networks := ClassifyAll([]RawEntry{
		{SSID: "a", Security: "WEP"},
		{SSID: "b", Security: "WEP"},
		{SSID: "c", Security: "WPA2"},
		{SSID: "d", Security: "OPEN"},
	})

	got := TierCounts(networks)
	want := map[RiskTier]int{RiskCritical: 2, RiskLow: 1, RiskHigh: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TierCounts = %v, want %v", got, want)
	}
}

func TestVulnerable(t *testing.T) {
	networks := ClassifyAll([]RawEntry{
		{SSID: "safe", Security: "WPA3"},
		{SSID: "open", Security: "OPEN"},
		{SSID: "old", Security: "WEP"},
		{SSID: "legacy", Security: "WPA"},
	})

	got := Vulnerable(networks)
	if len(got) != 2 {
		t.Fatalf("expected 2 vulnerable networks, got %d", len(got))
	}
	if got[0].SSID != "open" || got[1].SSID != "old" {
		t.Errorf("vulnerable subset out of order: %+v", got)
	}
}
