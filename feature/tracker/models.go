package tracker

import (
	"math"

	"craft-planner/core/procurement"
)

// MaterialRow tracks one ingredient of a root: how many are needed, owned and still missing.
type MaterialRow struct {
	ID        procurement.ItemID `json:"id"`
	Name      string             `json:"name"`
	Need      int                `json:"need"`
	Have      int                `json:"have"`
	Remain    int                `json:"remain"`
	UnitPrice *float64           `json:"unit_price"`
	Origin    string             `json:"origin,omitempty"`
}

// PurchaseRow is one line of the remaining shopping list.
type PurchaseRow struct {
	ID        procurement.ItemID `json:"id"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	UnitPrice *float64           `json:"unit_price"`
	Origin    string             `json:"origin,omitempty"`
	Total     *float64           `json:"total"`
}

// PlanReport is the owned-aware shopping list for crafting a quantity of a root.
type PlanReport struct {
	Root     procurement.ItemID `json:"root"`
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
	Snapshot string             `json:"snapshot"`
	// OwnedUsed is false when owned stock was ignored or could not be loaded.
	OwnedUsed  bool                 `json:"owned_used"`
	Purchases  []PurchaseRow        `json:"purchases"`
	KnownTotal float64              `json:"known_total"`
	Unpriced   []procurement.ItemID `json:"unpriced"`
	Cycles     []procurement.ItemID `json:"cycles"`
	Truncated  bool                 `json:"truncated"`
	Complete   bool                 `json:"complete"`
}

// TrackerReport combines the material table with the remaining purchases for one unit.
type TrackerReport struct {
	PlanReport
	Materials []MaterialRow `json:"materials"`
}

func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}
