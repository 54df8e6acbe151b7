package market

import (
	"context"
	"slices"

	"craft-planner/core/procurement"
)

// PriceOracle fetches best market quotes for a set of items.
// Items without any listing are simply absent from the snapshot.
type PriceOracle interface {
	Quotes(ctx context.Context, ids []procurement.ItemID) (*Snapshot, error)
}

// StaticOracle serves fixed prices. It backs offline runs and tests.
type StaticOracle struct {
	DataCenter string
	Prices     procurement.Prices
}

// Quotes implements PriceOracle.
func (o *StaticOracle) Quotes(ctx context.Context, ids []procurement.ItemID) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	quotes := make(map[procurement.ItemID]procurement.PriceQuote)
	for _, id := range ids {
		if q, ok := o.Prices.Quote(id); ok {
			quotes[id] = q
		}
	}
	return NewSnapshot(o.DataCenter, quotes), nil
}

// normalizeIDs drops invalid ids and duplicates, returning the rest in ascending order.
func normalizeIDs(ids []procurement.ItemID) []procurement.ItemID {
	seen := make(map[procurement.ItemID]struct{}, len(ids))
	for _, id := range ids {
		if id > 0 {
			seen[id] = struct{}{}
		}
	}
	out := make([]procurement.ItemID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
