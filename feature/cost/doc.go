// Package cost answers per-item cost questions over the recipe graph and a market snapshot.
//
// # Endpoints
//
//   - GET /items/:id/closure : Items reachable from the item, root first.
//   - GET /items/:id/needs : Total quantity of every ingredient for one unit.
//   - GET /items/:id/decision : Buy or craft, and the unit cost of the cheaper option.
//   - GET /items/:id/cost : Market price against craft cost, plus the cheapest buy list.
//
// Every request prices the item's closure as one snapshot and builds a fresh cost chooser
// for it. Unknown prices encode as null and are excluded from known totals.
package cost
