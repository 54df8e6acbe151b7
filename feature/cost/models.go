package cost

import (
	"math"

	"craft-planner/core/procurement"
)

// ItemRef names an item.
type ItemRef struct {
	ID   procurement.ItemID `json:"id"`
	Name string             `json:"name"`
}

// ClosureReport lists every item reachable from a root, root first.
type ClosureReport struct {
	Root  ItemRef   `json:"root"`
	Items []ItemRef `json:"items"`
}

// NeedRow is the total quantity of one ingredient for one unit of the root.
type NeedRow struct {
	ID       procurement.ItemID `json:"id"`
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
}

// NeedsReport is the fully expanded bill of materials of a root.
type NeedsReport struct {
	Root ItemRef   `json:"root"`
	Rows []NeedRow `json:"rows"`
}

// DecisionReport is the cheapest way to obtain one unit of an item.
// Unknown costs are null.
type DecisionReport struct {
	Item     ItemRef          `json:"item"`
	Snapshot string           `json:"snapshot"`
	Mode     procurement.Mode `json:"mode"`
	UnitCost *float64         `json:"unit_cost"`
	BuyPrice *float64         `json:"buy_price"`
	Origin   string           `json:"origin,omitempty"`
}

// BuyRow is one line of the cheapest buy list.
type BuyRow struct {
	ID        procurement.ItemID `json:"id"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	UnitPrice *float64           `json:"unit_price"`
	Origin    string             `json:"origin,omitempty"`
	Total     *float64           `json:"total"`
}

// CostEstimate compares buying a root outright with crafting it from the cheapest inputs.
type CostEstimate struct {
	Root     ItemRef `json:"root"`
	Snapshot string  `json:"snapshot"`
	// MarketPrice is the root's own best listing.
	MarketPrice  *float64 `json:"market_price"`
	MarketOrigin string   `json:"market_origin,omitempty"`
	// CraftCost crafts the root from its ingredients, each bought or crafted as is cheaper.
	CraftCost *float64 `json:"craft_cost"`
	Rows      []BuyRow `json:"rows"`
	// KnownTotal sums rows with a known price.
	KnownTotal float64              `json:"known_total"`
	Unpriced   []procurement.ItemID `json:"unpriced"`
}

// finite returns nil for infinite or NaN values so they encode as JSON null.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}
