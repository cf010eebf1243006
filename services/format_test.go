package services

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"under a thousand", 999, "₹999.00"},
		{"thousands", 1234, "₹1,234.00"},
		{"lakhs", 123456, "₹1,23,456.00"},
		{"ten lakhs", 1234567, "₹12,34,567.00"},
		{"crores", 12345678, "₹1,23,45,678.00"},
		{"decimals kept", 1234.5, "₹1,234.50"},
		{"rounding to two places", 999.999, "₹1,000.00"},
		{"negative", -1234.56, "-₹1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}
