package market

import (
	"time"

	"craft-planner/core/procurement"

	"github.com/google/uuid"
)

// Snapshot is an immutable set of best quotes fetched together.
// Every cost decision derived from one snapshot is consistent; a new snapshot needs a new
// procurement.CostChooser.
type Snapshot struct {
	// ID distinguishes snapshots in logs and responses.
	ID         string    `json:"id"`
	DataCenter string    `json:"data_center"`
	FetchedAt  time.Time `json:"fetched_at"`
	quotes     map[procurement.ItemID]procurement.PriceQuote
}

// NewSnapshot copies quotes into a new snapshot, dropping non-positive prices.
func NewSnapshot(dataCenter string, quotes map[procurement.ItemID]procurement.PriceQuote) *Snapshot {
	s := &Snapshot{
		ID:         uuid.NewString(),
		DataCenter: dataCenter,
		FetchedAt:  time.Now(),
		quotes:     make(map[procurement.ItemID]procurement.PriceQuote, len(quotes)),
	}
	for id, q := range quotes {
		if _, ok := (procurement.Prices{id: q}).Quote(id); ok {
			s.quotes[id] = q
		}
	}
	return s
}

// Quote implements procurement.PriceSource.
func (s *Snapshot) Quote(id procurement.ItemID) (procurement.PriceQuote, bool) {
	if s == nil {
		return procurement.PriceQuote{}, false
	}
	q, ok := s.quotes[id]
	return q, ok
}

// Len returns the number of priced items.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.quotes)
}

// Prices returns a copy of the quotes.
func (s *Snapshot) Prices() procurement.Prices {
	out := make(procurement.Prices, s.Len())
	if s == nil {
		return out
	}
	for id, q := range s.quotes {
		out[id] = q
	}
	return out
}
