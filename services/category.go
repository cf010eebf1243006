package services

import (
	"sort"
	"strings"
)

// DefaultTypeOrder is the display order for item categories when the
// settings record does not define one.
var DefaultTypeOrder = []string{
	"processor",
	"motherboard",
	"ram",
	"graphic card",
	"storage",
	"power supply",
	"cpu cooler",
	"case",
	"monitor",
	"keyboard",
	"mouse",
	"accessories",
}

// PriceSort is the optional secondary ordering within a category.
type PriceSort int

const (
	PriceSortNone PriceSort = iota
	PriceSortLowToHigh
	PriceSortHighToLow
)

// categorySynonyms maps order keywords to alternative spellings seen in
// stored item types.
var categorySynonyms = map[string][]string{
	"graphic card": {"gpu", "graphics card", "video card"},
	"cpu cooler":   {"cooler", "cpu fan"},
	"storage":      {"hdd", "ssd", "hard disk", "nvme"},
	"case":         {"cabinet", "chassis"},
	"monitor":      {"display"},
}

// SortIndex returns the position of an item type in the category order.
// Matching is case-insensitive and tolerant: exact match first, then
// substring containment in both directions, then the synonym table. Unknown
// and empty types sort after every known category.
func SortIndex(itemType string, order []string) int {
	t := strings.ToLower(strings.TrimSpace(itemType))
	if t == "" {
		return len(order) + 1
	}
	for i, cat := range order {
		c := strings.ToLower(strings.TrimSpace(cat))
		if t == c {
			return i
		}
	}
	for i, cat := range order {
		c := strings.ToLower(strings.TrimSpace(cat))
		if strings.Contains(t, c) || strings.Contains(c, t) {
			return i
		}
		if matchesSynonym(t, c) {
			return i
		}
	}
	return len(order) + 1
}

// matchesSynonym reports whether an item type matches a category through the
// synonym table.
func matchesSynonym(itemType, category string) bool {
	for _, syn := range categorySynonyms[category] {
		if itemType == syn || strings.Contains(itemType, syn) {
			return true
		}
	}
	return false
}

// SortItemsByCategory orders items by their category index. The sort is
// stable so items within the same category keep their entry order.
func SortItemsByCategory(items []LineItem, order []string) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return SortIndex(out[i].Type, order) < SortIndex(out[j].Type, order)
	})
	return out
}

// SortPickerItems orders items by category first, then by price within a
// category when a price sort is selected. Used by the product picker list;
// the printed document always uses the plain category order.
func SortPickerItems(items []LineItem, order []string, priceSort PriceSort) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := SortIndex(out[i].Type, order), SortIndex(out[j].Type, order)
		if ci != cj {
			return ci < cj
		}
		switch priceSort {
		case PriceSortLowToHigh:
			return out[i].Price < out[j].Price
		case PriceSortHighToLow:
			return out[i].Price > out[j].Price
		default:
			return false
		}
	})
	return out
}
