package services

import (
	"math"
	"testing"
)

func TestEffectiveGSTRate(t *testing.T) {
	tests := []struct {
		name     string
		override PriceOverride
		expect   float64
	}{
		{"amount converted to rate", PriceOverride{Price: 1000, GST: 50}, 5},
		{"small amount still converted", PriceOverride{Price: 1000, GST: 18}, 1.8},
		{"rate equal to price passes through", PriceOverride{Price: 18, GST: 18}, 18},
		{"rate above price passes through", PriceOverride{Price: 10, GST: 28}, 28},
		{"zero price zero gst", PriceOverride{Price: 0, GST: 0}, 0},
		{"total price fallback for base", PriceOverride{TotalPrice: 2000, GST: 360}, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.override.EffectiveGSTRate()
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("EffectiveGSTRate() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		override PriceOverride
		expect   float64
	}{
		{"price wins", PriceOverride{Price: 1500, TotalPrice: 2000}, 1500},
		{"total price fallback", PriceOverride{Price: 0, TotalPrice: 2000}, 2000},
		{"both zero", PriceOverride{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.override.EffectivePrice()
			if got != tt.expect {
				t.Errorf("EffectivePrice() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestResolveOverrides(t *testing.T) {
	items := []LineItem{
		{ProductID: "cpu-1", ProductName: "Old CPU", Type: "processor", Price: 15000, Quantity: 2, GSTRate: 18, Description: "customer note"},
		{ProductID: "ram-1", ProductName: "16GB DDR5", Type: "ram", Price: 4500, Quantity: 1, GSTRate: 18},
	}
	overrides := map[string]PriceOverride{
		"cpu-1": {
			ProductID:   "cpu-1",
			ProductName: "Ryzen 5 7600",
			Type:        "processor",
			Price:       18000,
			GST:         18,
		},
	}

	got := ResolveOverrides(items, overrides)

	t.Run("override replaces price and name", func(t *testing.T) {
		if got[0].ProductName != "Ryzen 5 7600" {
			t.Errorf("ProductName = %q, want %q", got[0].ProductName, "Ryzen 5 7600")
		}
		if got[0].Price != 18000 {
			t.Errorf("Price = %v, want 18000", got[0].Price)
		}
		// 18 < 18000, so it is an absolute amount: 18/18000*100 = 0.1%.
		if math.Abs(got[0].GSTRate-0.1) > 1e-9 {
			t.Errorf("GSTRate = %v, want 0.1", got[0].GSTRate)
		}
	})

	t.Run("quantity and description kept from quotation", func(t *testing.T) {
		if got[0].Quantity != 2 {
			t.Errorf("Quantity = %v, want 2", got[0].Quantity)
		}
		if got[0].Description != "customer note" {
			t.Errorf("Description = %q, want %q", got[0].Description, "customer note")
		}
	})

	t.Run("unmatched item passes through", func(t *testing.T) {
		if got[1] != items[1] {
			t.Errorf("unmatched item changed: got %+v, want %+v", got[1], items[1])
		}
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		if items[0].Price != 15000 {
			t.Errorf("input mutated: Price = %v, want 15000", items[0].Price)
		}
	})
}

func TestOverrideMap(t *testing.T) {
	t.Run("later entry wins", func(t *testing.T) {
		m := OverrideMap([]PriceOverride{
			{ProductID: "cpu-1", Price: 100},
			{ProductID: "cpu-1", Price: 200},
		})
		if m["cpu-1"].Price != 200 {
			t.Errorf("Price = %v, want 200", m["cpu-1"].Price)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if m := OverrideMap(nil); m != nil {
			t.Errorf("OverrideMap(nil) = %v, want nil", m)
		}
	})
}
