// Package procurement resolves what it costs to obtain craftable items and what has to be bought.
//
// Given a recipe graph, a price snapshot and (optionally) the stock a player already owns, it
// decides at every node whether buying on the market or crafting from ingredients is cheaper.
//
// # Components
//
//   - Graph: canonical access to recipes. Only variant #0 of an item is ever consulted.
//   - Closure: every item reachable from a root, used to batch price lookups.
//   - CostChooser: memoized per-item unit cost and buy/craft decision for one price snapshot.
//   - TotalNeeds: fully expanded raw demand for one unit of a root, ignoring prices and stock.
//   - Planner: owned-aware shopping list, consuming owned stock before deciding anything.
//
// # Unknown prices and cycles
//
// A missing price is +Inf, never zero, and propagates arithmetically. Cycles in the graph are
// broken locally (in-progress memo entries in the chooser, an active path in the planner) and
// expansion is bounded by visit and step ceilings, so every call returns a result, possibly
// partial. Plans expose Complete, Unpriced, Cycles and Truncated so callers can tell.
//
// # Usage
//
//	chooser := procurement.NewCostChooser(graph, snapshot)
//	d := chooser.UnitCost(5057)
//
//	planner := procurement.NewPlanner(graph, snapshot, procurement.DefaultMaxSteps)
//	plan := planner.Plan(11975, 1, owned.Clone())
package procurement
