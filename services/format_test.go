package services

import (
	"testing"
	"time"
)

func TestFormatUSD_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "$0.00"},
		{"small integer", 5, "$5.00"},
		{"with decimals", 42.50, "$42.50"},
		{"hundreds", 999.99, "$999.99"},
		{"thousands", 1234.56, "$1,234.56"},
		{"exact thousand", 1000, "$1,000.00"},
		{"tens of thousands", 52417.80, "$52,417.80"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"negative", -25.39, "-$25.39"},
		{"negative thousands", -1286.81, "-$1,286.81"},
		{"rounds to cents", 25.218425, "$25.22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUSD(tt.input)
			if got != tt.expect {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.input); got != tt.expect {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	ts := time.Date(2025, 6, 3, 21, 14, 5, 0, time.UTC)

	got := FormatTimestamp(ts, loc)
	want := "06/03/2025 02:14:05 PM"
	if got != want {
		t.Errorf("FormatTimestamp = %q, want %q", got, want)
	}

	// nil location leaves the time zone alone
	got = FormatTimestamp(ts, nil)
	want = "06/03/2025 09:14:05 PM"
	if got != want {
		t.Errorf("FormatTimestamp(nil loc) = %q, want %q", got, want)
	}
}

func TestFormatReportDate(t *testing.T) {
	ts := time.Date(2025, 12, 9, 10, 0, 0, 0, time.UTC)
	if got := FormatReportDate(ts, time.UTC); got != "12/09/2025" {
		t.Errorf("FormatReportDate = %q, want 12/09/2025", got)
	}
}
