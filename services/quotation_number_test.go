package services

import "testing"

func TestFormatQuotationID(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		sequence int
		expect   string
	}{
		{"first of year", 2026, 1, "Q-2026-001"},
		{"two digits padded", 2026, 14, "Q-2026-014"},
		{"three digits", 2026, 123, "Q-2026-123"},
		{"overflow keeps digits", 2026, 1234, "Q-2026-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatQuotationID(tt.year, tt.sequence)
			if got != tt.expect {
				t.Errorf("formatQuotationID(%d, %d) = %q, want %q",
					tt.year, tt.sequence, got, tt.expect)
			}
		})
	}
}
