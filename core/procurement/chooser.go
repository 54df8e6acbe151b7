package procurement

import "math"

type memoState uint8

const (
	notStarted memoState = iota
	inProgress
	done
)

type memoEntry struct {
	state    memoState
	decision UnitDecision
}

// CostChooser computes the cheapest way to obtain one unit of an item for a single price
// snapshot. Results are memoized; build a new chooser when prices are refreshed.
// A CostChooser is not safe for concurrent use.
type CostChooser struct {
	graph  Graph
	prices PriceSource
	memo   map[ItemID]*memoEntry
}

// NewCostChooser creates a chooser bound to one graph and one price snapshot.
func NewCostChooser(g Graph, prices PriceSource) *CostChooser {
	return &CostChooser{
		graph:  g,
		prices: prices,
		memo:   make(map[ItemID]*memoEntry),
	}
}

// UnitCost returns the decision for one unit of id.
//
// Terminal items are bought at the best known price (+Inf when unpriced). Craftable items compare
// the market price with the summed unit costs of variant #0; buying wins ties. A re-entrant call
// for an item still being computed resolves to {BUY, +Inf}, which breaks cycles.
func (c *CostChooser) UnitCost(id ItemID) UnitDecision {
	entry, ok := c.memo[id]
	if ok {
		switch entry.state {
		case done:
			return entry.decision
		case inProgress:
			return UnitDecision{Mode: ModeBuy, UnitCost: math.Inf(1)}
		}
	} else {
		entry = &memoEntry{}
		c.memo[id] = entry
	}

	entry.state = inProgress
	decision := c.decide(id)
	entry.state = done
	entry.decision = decision
	return decision
}

func (c *CostChooser) decide(id ItemID) UnitDecision {
	buy := buyPrice(c.prices, id)
	decision := UnitDecision{Mode: ModeBuy, UnitCost: buy}
	if validPrice(buy) {
		price := buy
		decision.BuyPrice = &price
		if q, ok := c.prices.Quote(id); ok {
			decision.Origin = q.Origin
		}
	}

	variant, ok := c.graph.Variant(id)
	if !ok {
		return decision
	}

	craft := c.variantCost(variant)
	if validPrice(buy) && (buy <= craft || math.IsInf(craft, 1)) {
		return decision
	}
	decision.Mode = ModeCraft
	decision.UnitCost = craft
	return decision
}

func (c *CostChooser) variantCost(v Variant) float64 {
	total := 0.0
	for _, ing := range v {
		total += c.UnitCost(ing.ItemID).UnitCost * float64(ing.Quantity)
	}
	return total
}

// RootCraftCost is the cost of making one unit of root yourself: the sum of its ingredients'
// unit costs, ignoring root's own market price. It is +Inf when root has no recipe.
func (c *CostChooser) RootCraftCost(root ItemID) float64 {
	variant, ok := c.graph.Variant(root)
	if !ok {
		return math.Inf(1)
	}
	return c.variantCost(variant)
}

// Reset drops every memoized decision.
func (c *CostChooser) Reset() {
	c.memo = make(map[ItemID]*memoEntry)
}
