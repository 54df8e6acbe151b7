package procurement

import (
	"math"
	"sort"
)

// ItemID identifies an item. Valid ids are positive.
type ItemID int

// Ingredient is one (item, quantity) pair of a variant.
type Ingredient struct {
	ItemID   ItemID `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Variant is the ordered ingredient list producing one unit of its owner.
type Variant []Ingredient

// Mode is the acquisition mode chosen for an item.
type Mode string

const (
	// ModeBuy purchases the item on the market.
	ModeBuy Mode = "BUY"
	// ModeCraft crafts the item from its ingredients.
	ModeCraft Mode = "CRAFT"
)

// PriceQuote is the best known market listing for an item.
type PriceQuote struct {
	// UnitPrice is the lowest price per unit. Always > 0.
	UnitPrice float64 `json:"unit_price"`
	// Origin names the market world the listing was found on.
	Origin string `json:"origin"`
}

// PriceSource provides quotes from one consistent price snapshot.
type PriceSource interface {
	// Quote returns the best quote for an item, or false when the price is unknown.
	Quote(id ItemID) (PriceQuote, bool)
}

// Prices is an in-memory PriceSource.
type Prices map[ItemID]PriceQuote

// Quote implements PriceSource.
func (p Prices) Quote(id ItemID) (PriceQuote, bool) {
	q, ok := p[id]
	if !ok || !validPrice(q.UnitPrice) {
		return PriceQuote{}, false
	}
	return q, true
}

// buyPrice returns the best known unit price of id, +Inf when unknown.
func buyPrice(prices PriceSource, id ItemID) float64 {
	if prices == nil {
		return math.Inf(1)
	}
	q, ok := prices.Quote(id)
	if !ok || !validPrice(q.UnitPrice) {
		return math.Inf(1)
	}
	return q.UnitPrice
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

// UnitDecision is the cheapest way to obtain one unit of an item.
type UnitDecision struct {
	Mode Mode `json:"mode"`
	// UnitCost may be +Inf when neither buying nor crafting can be priced.
	UnitCost float64 `json:"unit_cost"`
	// BuyPrice is the market price when known.
	BuyPrice *float64 `json:"buy_price,omitempty"`
	Origin   string   `json:"origin,omitempty"`
}

// Known reports whether UnitCost is finite.
func (d UnitDecision) Known() bool {
	return !math.IsInf(d.UnitCost, 0)
}

// NeedsMap holds total quantities per item for one unit of a root.
type NeedsMap map[ItemID]int

// IDs returns the keys sorted by descending quantity, then ascending id.
func (n NeedsMap) IDs() []ItemID {
	ids := make([]ItemID, 0, len(n))
	for id := range n {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if n[ids[i]] != n[ids[j]] {
			return n[ids[i]] > n[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Inventory is the mutable owned stock consumed while planning.
// It is not safe for concurrent use.
type Inventory map[ItemID]int

// NewInventory builds an inventory, dropping invalid ids and non-positive quantities.
func NewInventory(owned map[ItemID]int) Inventory {
	inv := make(Inventory, len(owned))
	for id, qty := range owned {
		if id > 0 && qty > 0 {
			inv[id] = qty
		}
	}
	return inv
}

// Have returns the owned quantity of id.
func (inv Inventory) Have(id ItemID) int {
	return inv[id]
}

// Take consumes one unit of id and reports whether stock was available.
func (inv Inventory) Take(id ItemID) bool {
	have := inv[id]
	if have <= 0 {
		return false
	}
	if have == 1 {
		delete(inv, id)
	} else {
		inv[id] = have - 1
	}
	return true
}

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for id, qty := range inv {
		out[id] = qty
	}
	return out
}

// PurchasePlan is the shopping list produced by Planner.Plan.
type PurchasePlan struct {
	Root     ItemID `json:"root"`
	Quantity int    `json:"quantity"`
	// Purchases never contains Root.
	Purchases map[ItemID]int `json:"purchases"`
	// Cost is the accumulated decision cost, +Inf when any bought unit is unpriced.
	Cost float64 `json:"-"`
	// KnownCost sums unit price times quantity over purchases with a known price.
	KnownCost float64 `json:"known_cost"`
	// Unpriced lists purchased items without a known price, sorted.
	Unpriced []ItemID `json:"unpriced"`
	// Cycles lists items whose production was forced to BUY by a cyclic reference, sorted.
	Cycles []ItemID `json:"cycles"`
	// Truncated is set when the step ceiling cut expansion short.
	Truncated bool `json:"truncated"`
	// Steps counts unit productions performed.
	Steps int `json:"steps"`
}

// Complete reports whether the plan is fully priced and was not truncated.
func (p *PurchasePlan) Complete() bool {
	return len(p.Unpriced) == 0 && !p.Truncated
}

// IDs returns purchased item ids in ascending order.
func (p *PurchasePlan) IDs() []ItemID {
	return sortedIDs(p.Purchases)
}

func sortedIDs[V any](m map[ItemID]V) []ItemID {
	ids := make([]ItemID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
