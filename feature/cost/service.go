package cost

import (
	"context"
	"errors"

	"craft-planner/core/gamedata"
	"craft-planner/core/market"
	"craft-planner/core/procurement"

	"go.uber.org/zap"
)

var (
	// ErrInvalidItem is returned for non-positive item ids.
	ErrInvalidItem = errors.New("item id must be a positive integer")
	// ErrItemNotFound is returned for ids that are neither craftable nor catalogued.
	ErrItemNotFound = errors.New("item not found")
)

// Service answers cost questions about single items.
type Service struct {
	source *gamedata.Source
	prices market.PriceOracle
	cfg    procurement.Config
	logger *zap.Logger
}

// NewService creates a new cost service.
func NewService(source *gamedata.Source, prices market.PriceOracle, cfg procurement.Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		prices: prices,
		cfg:    cfg,
		logger: logger,
	}
}

// pricedView is the gamedata and the price snapshot covering one root's closure.
type pricedView struct {
	data    *gamedata.Data
	closure []procurement.ItemID
	snap    *market.Snapshot
	chooser *procurement.CostChooser
}

func (s *Service) load(ctx context.Context, id procurement.ItemID) (*gamedata.Data, error) {
	if id <= 0 {
		return nil, ErrInvalidItem
	}
	data, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, known := data.Catalog.Metadata(id); !known && !data.Graph.Craftable(id) {
		return nil, ErrItemNotFound
	}
	return data, nil
}

func (s *Service) priced(ctx context.Context, id procurement.ItemID) (*pricedView, error) {
	data, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	closure := procurement.Closure(data.Graph, id)
	snap, err := s.prices.Quotes(ctx, closure)
	if err != nil {
		return nil, err
	}
	return &pricedView{
		data:    data,
		closure: closure,
		snap:    snap,
		// One chooser per snapshot; its memo must not see another snapshot's prices.
		chooser: procurement.NewCostChooser(data.Graph, snap),
	}, nil
}

func ref(c *gamedata.Catalog, id procurement.ItemID) ItemRef {
	return ItemRef{ID: id, Name: c.Name(id)}
}

// Closure lists every item reachable from id.
func (s *Service) Closure(ctx context.Context, id procurement.ItemID) (*ClosureReport, error) {
	data, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := procurement.Closure(data.Graph, id)
	report := &ClosureReport{Root: ref(data.Catalog, id), Items: make([]ItemRef, 0, len(ids))}
	for _, item := range ids {
		report.Items = append(report.Items, ref(data.Catalog, item))
	}
	return report, nil
}

// Needs returns the full bill of materials for one unit of id.
func (s *Service) Needs(ctx context.Context, id procurement.ItemID) (*NeedsReport, error) {
	data, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	needs := procurement.TotalNeeds(data.Graph, id, s.cfg.Visits())
	report := &NeedsReport{Root: ref(data.Catalog, id), Rows: make([]NeedRow, 0, len(needs))}
	for _, item := range needs.IDs() {
		report.Rows = append(report.Rows, NeedRow{ID: item, Name: data.Catalog.Name(item), Quantity: needs[item]})
	}
	return report, nil
}

// Decision returns whether one unit of id is cheaper bought or crafted.
func (s *Service) Decision(ctx context.Context, id procurement.ItemID) (*DecisionReport, error) {
	view, err := s.priced(ctx, id)
	if err != nil {
		return nil, err
	}
	d := view.chooser.UnitCost(id)
	report := &DecisionReport{
		Item:     ref(view.data.Catalog, id),
		Snapshot: view.snap.ID,
		Mode:     d.Mode,
		UnitCost: finite(d.UnitCost),
		Origin:   d.Origin,
	}
	if d.BuyPrice != nil {
		report.BuyPrice = finite(*d.BuyPrice)
	}
	return report, nil
}

// Estimate compares the root's market price with its craft cost and lists what to buy to
// craft it. The buy list follows the per-unit decisions and ignores owned stock.
func (s *Service) Estimate(ctx context.Context, id procurement.ItemID) (*CostEstimate, error) {
	view, err := s.priced(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog := view.data.Catalog

	est := &CostEstimate{
		Root:      ref(catalog, id),
		Snapshot:  view.snap.ID,
		CraftCost: finite(view.chooser.RootCraftCost(id)),
		Rows:      []BuyRow{},
		Unpriced:  []procurement.ItemID{},
	}
	if q, ok := view.snap.Quote(id); ok {
		est.MarketPrice = finite(q.UnitPrice)
		est.MarketOrigin = q.Origin
	}

	items, known := procurement.LineItems(view.chooser.CheapestBuyList(id), view.snap)
	for _, it := range items {
		est.Rows = append(est.Rows, BuyRow{
			ID:        it.ItemID,
			Name:      catalog.Name(it.ItemID),
			Quantity:  it.Quantity,
			UnitPrice: finite(it.UnitPrice),
			Origin:    it.Origin,
			Total:     finite(it.Total),
		})
		if !it.Priced() {
			est.Unpriced = append(est.Unpriced, it.ItemID)
		}
	}
	est.KnownTotal = known

	s.logger.Debug("Cost estimated",
		zap.Int("item", int(id)),
		zap.String("snapshot", view.snap.ID),
		zap.Int("closure", len(view.closure)),
		zap.Int("rows", len(est.Rows)),
	)
	return est, nil
}
