package timeutil

import (
	"testing"
	"time"
)

func TestParseSitting(t *testing.T) {
	cases := []struct {
		in        string
		want      time.Duration
		canonical string
	}{
		{"", 25 * time.Minute, "25m"},
		{"25m", 25 * time.Minute, "25m"},
		{"90 minutes", 90 * time.Minute, "1h30m"},
		{"1h30m", 90 * time.Minute, "1h30m"},
		{"45s", 45 * time.Second, "45s"},
	}
	for _, tc := range cases {
		got, canonical, err := ParseSitting(tc.in)
		if err != nil {
			t.Fatalf("ParseSitting(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseSitting(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if canonical != tc.canonical {
			t.Errorf("ParseSitting(%q) canonical = %q, want %q", tc.in, canonical, tc.canonical)
		}
	}
}

func TestParseSittingRejectsGarbage(t *testing.T) {
	for _, in := range []string{"soon", "25x", "-5m", "0m"} {
		if _, _, err := ParseSitting(in); err == nil {
			t.Errorf("ParseSitting(%q): expected error", in)
		}
	}
}

func TestWholeMinutes(t *testing.T) {
	if got := WholeMinutes(25*time.Minute + 59*time.Second); got != 25 {
		t.Fatalf("WholeMinutes = %d, want 25", got)
	}
	if got := WholeMinutes(-time.Minute); got != 0 {
		t.Fatalf("WholeMinutes of negative = %d, want 0", got)
	}
}
