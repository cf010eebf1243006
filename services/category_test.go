package services

import (
	"testing"
)

func TestSortIndex(t *testing.T) {
	order := DefaultTypeOrder

	tests := []struct {
		name     string
		itemType string
		expect   int
	}{
		{"exact match", "processor", 0},
		{"case insensitive", "Processor", 0},
		{"whitespace trimmed", "  ram  ", 2},
		{"substring in type", "NVIDIA graphic card", 3},
		{"type inside category", "graphic", 3},
		{"synonym gpu", "gpu", 3},
		{"synonym ssd", "ssd", 4},
		{"synonym cabinet", "cabinet", 7},
		{"synonym display", "display", 8},
		{"synonym cooler", "cooler", 6},
		{"unknown type sorts last", "warranty pack", len(order) + 1},
		{"empty type sorts last", "", len(order) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortIndex(tt.itemType, order)
			if got != tt.expect {
				t.Errorf("SortIndex(%q) = %d, want %d", tt.itemType, got, tt.expect)
			}
		})
	}
}

func TestSortItemsByCategory(t *testing.T) {
	items := []LineItem{
		{ProductID: "1", Type: "monitor"},
		{ProductID: "2", Type: "gpu"},
		{ProductID: "3", Type: "processor"},
		{ProductID: "4", Type: "unknown gadget"},
		{ProductID: "5", Type: "ram"},
	}

	got := SortItemsByCategory(items, DefaultTypeOrder)

	wantOrder := []string{"3", "5", "2", "1", "4"}
	for i, id := range wantOrder {
		if got[i].ProductID != id {
			t.Errorf("position %d: got product %s, want %s", i, got[i].ProductID, id)
		}
	}

	t.Run("input not mutated", func(t *testing.T) {
		if items[0].ProductID != "1" {
			t.Errorf("input slice reordered")
		}
	})

	t.Run("stable within category", func(t *testing.T) {
		same := []LineItem{
			{ProductID: "a", Type: "ram", Price: 5000},
			{ProductID: "b", Type: "ram", Price: 3000},
			{ProductID: "c", Type: "ram", Price: 7000},
		}
		sorted := SortItemsByCategory(same, DefaultTypeOrder)
		for i, id := range []string{"a", "b", "c"} {
			if sorted[i].ProductID != id {
				t.Errorf("position %d: got %s, want %s (entry order)", i, sorted[i].ProductID, id)
			}
		}
	})
}

func TestSortPickerItems(t *testing.T) {
	items := []LineItem{
		{ProductID: "a", Type: "ram", Price: 5000},
		{ProductID: "b", Type: "ram", Price: 3000},
		{ProductID: "c", Type: "processor", Price: 20000},
	}

	tests := []struct {
		name      string
		priceSort PriceSort
		want      []string
	}{
		{"no price sort keeps entry order", PriceSortNone, []string{"c", "a", "b"}},
		{"low to high within category", PriceSortLowToHigh, []string{"c", "b", "a"}},
		{"high to low within category", PriceSortHighToLow, []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortPickerItems(items, DefaultTypeOrder, tt.priceSort)
			for i, id := range tt.want {
				if got[i].ProductID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].ProductID, id)
				}
			}
		})
	}
}
