package services

// PriceOverride is a stored per-product price entry that takes precedence
// over the price captured on the quotation. The gst field is ambiguous by
// construction: it may hold either a percentage rate or an absolute GST
// amount, disambiguated by magnitude at resolution time.
type PriceOverride struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	GST         float64 `json:"gst"`
	TotalPrice  float64 `json:"totalPrice"`
	Description string  `json:"description,omitempty"`
	AddedBy     string  `json:"addedBy,omitempty"`
}

// EffectivePrice returns the override's unit price, falling back to
// totalPrice when price is unset.
func (o PriceOverride) EffectivePrice() float64 {
	if o.Price > 0 {
		return o.Price
	}
	return o.TotalPrice
}

// EffectiveGSTRate normalizes the ambiguous gst field to a percentage rate.
// A gst value smaller than the unit price is treated as an absolute GST
// amount and converted to a rate; otherwise it is already a percentage.
// Typical GST rates (5, 12, 18, 28) are far below typical component prices,
// which is what makes the magnitude test reliable.
func (o PriceOverride) EffectiveGSTRate() float64 {
	price := o.EffectivePrice()
	if o.GST < price {
		if price <= 0 {
			return 0
		}
		return o.GST / price * 100
	}
	return o.GST
}

// ResolveOverrides applies price overrides to a list of line items, matched
// by product id. An override replaces the item's name, type, price and GST
// rate; quantity and free-text description stay from the quotation. Items
// without an override pass through unchanged.
func ResolveOverrides(items []LineItem, overrides map[string]PriceOverride) []LineItem {
	if len(overrides) == 0 {
		return items
	}
	out := make([]LineItem, len(items))
	for i, item := range items {
		o, ok := overrides[item.ProductID]
		if !ok {
			out[i] = item
			continue
		}
		resolved := item
		if o.ProductName != "" {
			resolved.ProductName = o.ProductName
		}
		if o.Type != "" {
			resolved.Type = o.Type
		}
		resolved.Price = o.EffectivePrice()
		resolved.GSTRate = o.EffectiveGSTRate()
		out[i] = resolved
	}
	return out
}

// OverrideMap keys a list of overrides by product id. When the list holds
// multiple entries for one product, the later entry wins, so callers should
// pass the list in oldest-first order.
func OverrideMap(list []PriceOverride) map[string]PriceOverride {
	if len(list) == 0 {
		return nil
	}
	m := make(map[string]PriceOverride, len(list))
	for _, o := range list {
		m[o.ProductID] = o
	}
	return m
}
