package timer

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00.00"},
		{"hundredths", 0.1, "00:00:00.10"},
		{"seconds", 7.25, "00:00:07.25"},
		{"minute boundary", 60, "00:01:00.00"},
		{"minutes and seconds", 125.5, "00:02:05.50"},
		{"hour", 3600, "01:00:00.00"},
		{"hour minute second", 3661.5, "01:01:01.50"},
		{"three digit hours", 100 * 3600, "100:00:00.00"},
		{"thousands separator", 1000 * 3600, "1,000:00:00.00"},
		{"millions of hours", 1234567 * 3600, "1,234,567:00:00.00"},
		{"negative clamps", -3, "00:00:00.00"},
		{"nan clamps", math.NaN(), "00:00:00.00"},
		{"+inf clamps", math.Inf(1), "00:00:00.00"},
		{"-inf clamps", math.Inf(-1), "00:00:00.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
