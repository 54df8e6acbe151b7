// Package market provides market price snapshots for the procurement engine.
//
// # Components
//
//   - PriceOracle: Fetches the best quote (lowest unit price and its world) for a set of items.
//   - UniversalisClient: PriceOracle over the Universalis API. Ids are sent in chunks
//     (80 by default), chunks run concurrently under an errgroup and a rate.Limiter, and
//     responses are read with gjson in both the batch and single-item shapes.
//   - StaticOracle: Fixed prices for offline runs and tests.
//   - Snapshot: Immutable quotes tagged with an id and fetch time. It implements
//     procurement.PriceSource.
//   - SnapshotCache: TTL cache keyed by the item set with singleflight stampede protection.
//
// A cost chooser must never outlive its snapshot: callers build a new
// procurement.CostChooser for every snapshot they receive.
package market
