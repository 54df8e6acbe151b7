package procurement

import "math"

// Planner builds owned-aware shopping lists. It holds no per-plan state and may be reused, but a
// single Inventory must not be planned against concurrently.
type Planner struct {
	graph    Graph
	prices   PriceSource
	maxSteps int
}

// NewPlanner creates a planner. maxSteps <= 0 selects DefaultMaxSteps.
func NewPlanner(g Graph, prices PriceSource, maxSteps int) *Planner {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Planner{graph: g, prices: prices, maxSteps: maxSteps}
}

// unit is the outcome of producing one unit of an item.
type unit struct {
	cost float64
	buys map[ItemID]int
}

type planRun struct {
	*Planner
	inv       Inventory
	steps     int
	truncated bool
	cycles    map[ItemID]struct{}
	path      map[ItemID]struct{}
}

// Plan returns what to buy to craft qty units of root, consuming inv along the way.
//
// Owned stock is used before anything is decided. Every other unit is bought or crafted,
// whichever is cheaper at that moment, one unit at a time and left to right through variant #0.
// The root itself is always crafted and never appears in the result. When buying wins, only the
// craft's purchases are dropped; owned units it consumed stay consumed.
func (p *Planner) Plan(root ItemID, qty int, inv Inventory) *PurchasePlan {
	if inv == nil {
		inv = make(Inventory)
	}
	plan := &PurchasePlan{
		Root:      root,
		Quantity:  qty,
		Purchases: make(map[ItemID]int),
		Unpriced:  []ItemID{},
		Cycles:    []ItemID{},
	}
	if root <= 0 || qty <= 0 {
		return plan
	}

	run := &planRun{
		Planner: p,
		inv:     inv,
		cycles:  make(map[ItemID]struct{}),
	}
	for i := 0; i < qty; i++ {
		run.path = make(map[ItemID]struct{})
		u := run.produceOne(root, true)
		plan.Cost += u.cost
		mergeBuys(plan.Purchases, u.buys)
	}

	delete(plan.Purchases, root)
	plan.Steps = run.steps
	plan.Truncated = run.truncated
	plan.Cycles = sortedIDs(run.cycles)
	for _, id := range plan.IDs() {
		price := buyPrice(p.prices, id)
		if math.IsInf(price, 1) {
			plan.Unpriced = append(plan.Unpriced, id)
			continue
		}
		plan.KnownCost += price * float64(plan.Purchases[id])
	}
	return plan
}

func (r *planRun) produceOne(id ItemID, isRoot bool) unit {
	r.steps++
	if r.steps > r.maxSteps {
		r.truncated = true
		return unit{}
	}

	if !isRoot && r.inv.Take(id) {
		return unit{}
	}

	if _, onPath := r.path[id]; onPath {
		r.cycles[id] = struct{}{}
		return r.buyOne(id)
	}

	variant, ok := r.graph.Variant(id)
	if !ok {
		if isRoot {
			return unit{}
		}
		return r.buyOne(id)
	}

	craft := unit{buys: make(map[ItemID]int)}
	r.path[id] = struct{}{}
	for _, ing := range variant {
		for k := 0; k < ing.Quantity; k++ {
			sub := r.produceOne(ing.ItemID, false)
			craft.cost += sub.cost
			mergeBuys(craft.buys, sub.buys)
		}
	}
	delete(r.path, id)

	if isRoot {
		return craft
	}

	buy := buyPrice(r.prices, id)
	if buy <= craft.cost {
		return r.buyOne(id)
	}
	return craft
}

func (r *planRun) buyOne(id ItemID) unit {
	return unit{
		cost: buyPrice(r.prices, id),
		buys: map[ItemID]int{id: 1},
	}
}

func mergeBuys(dst, src map[ItemID]int) {
	for id, qty := range src {
		if qty > 0 {
			dst[id] += qty
		}
	}
}
