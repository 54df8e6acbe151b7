package tracker

import (
	"context"
	"errors"
	"math"
	"sync"

	"craft-planner/core/gamedata"
	"craft-planner/core/inventory"
	"craft-planner/core/market"
	"craft-planner/core/procurement"

	"go.uber.org/zap"
)

var (
	// ErrInvalidItem is returned for non-positive ids.
	ErrInvalidItem = errors.New("item id must be a positive integer")
	// ErrNotCraftable is returned when the root has no recipe.
	ErrNotCraftable = errors.New("item has no recipe")
	// ErrNotMaterial is returned when owned stock is set for an item outside the root's recipe tree.
	ErrNotMaterial = errors.New("item is not a material of this root")
	// ErrInvalidQuantity is returned for non-finite owned quantities and non-positive plan sizes.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Service tracks owned materials per root and plans what is left to buy.
type Service struct {
	source *gamedata.Source
	prices market.PriceOracle
	store  *inventory.Store
	cfg    procurement.Config
	logger *zap.Logger

	mu    sync.Mutex
	locks map[procurement.ItemID]*sync.Mutex
}

// NewService creates a new tracker service.
func NewService(source *gamedata.Source, prices market.PriceOracle, store *inventory.Store, cfg procurement.Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		prices: prices,
		store:  store,
		cfg:    cfg,
		logger: logger,
		locks:  make(map[procurement.ItemID]*sync.Mutex),
	}
}

// lock serializes work on one root so a plan never reads stock mid-update.
func (s *Service) lock(root procurement.ItemID) func() {
	s.mu.Lock()
	l, ok := s.locks[root]
	if !ok {
		l = &sync.Mutex{}
		s.locks[root] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Service) graphFor(ctx context.Context, root procurement.ItemID) (*gamedata.Data, error) {
	if root <= 0 {
		return nil, ErrInvalidItem
	}
	data, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !data.Graph.Craftable(root) {
		return nil, ErrNotCraftable
	}
	return data, nil
}

// owned loads the persisted stock of root. Without a database every root owns nothing.
func (s *Service) owned(ctx context.Context, root procurement.ItemID) (procurement.Inventory, bool, error) {
	if !s.store.Available() {
		return procurement.Inventory{}, false, nil
	}
	inv, err := s.store.Get(ctx, root)
	if err != nil {
		return nil, false, err
	}
	return inv, true, nil
}

// Plan returns what to buy to craft qty units of root, using owned stock unless ignoreOwned.
// The persisted stock is never modified.
func (s *Service) Plan(ctx context.Context, root procurement.ItemID, qty int, ignoreOwned bool) (*PlanReport, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	data, err := s.graphFor(ctx, root)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(root)
	defer unlock()

	inv := procurement.Inventory{}
	used := false
	if !ignoreOwned {
		if inv, used, err = s.owned(ctx, root); err != nil {
			return nil, err
		}
	}

	snap, err := s.prices.Quotes(ctx, procurement.Closure(data.Graph, root))
	if err != nil {
		return nil, err
	}
	return s.plan(data, snap, root, qty, inv.Clone(), used), nil
}

func (s *Service) plan(data *gamedata.Data, snap *market.Snapshot, root procurement.ItemID, qty int, inv procurement.Inventory, used bool) *PlanReport {
	plan := procurement.NewPlanner(data.Graph, snap, s.cfg.Steps()).Plan(root, qty, inv)
	if plan.Truncated {
		s.logger.Warn("Plan truncated by the step ceiling",
			zap.Int("root", int(root)),
			zap.Int("steps", plan.Steps),
		)
	}

	report := &PlanReport{
		Root:      root,
		Name:      data.Catalog.Name(root),
		Quantity:  qty,
		Snapshot:  snap.ID,
		OwnedUsed: used,
		Purchases: []PurchaseRow{},
		Unpriced:  plan.Unpriced,
		Cycles:    plan.Cycles,
		Truncated: plan.Truncated,
		Complete:  plan.Complete(),
	}

	items, known := procurement.LineItems(plan.Purchases, snap)
	for _, it := range items {
		report.Purchases = append(report.Purchases, PurchaseRow{
			ID:        it.ItemID,
			Name:      data.Catalog.Name(it.ItemID),
			Quantity:  it.Quantity,
			UnitPrice: finite(it.UnitPrice),
			Origin:    it.Origin,
			Total:     finite(it.Total),
		})
	}
	report.KnownTotal = known
	return report
}

// Tracker returns the material table of root against its owned stock, and the remaining
// purchases for one unit.
func (s *Service) Tracker(ctx context.Context, root procurement.ItemID) (*TrackerReport, error) {
	data, err := s.graphFor(ctx, root)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(root)
	defer unlock()

	inv, used, err := s.owned(ctx, root)
	if err != nil {
		return nil, err
	}
	snap, err := s.prices.Quotes(ctx, procurement.Closure(data.Graph, root))
	if err != nil {
		return nil, err
	}

	needs := procurement.TotalNeeds(data.Graph, root, s.cfg.Visits())
	report := &TrackerReport{Materials: make([]MaterialRow, 0, len(needs))}
	for _, id := range needs.IDs() {
		row := MaterialRow{
			ID:     id,
			Name:   data.Catalog.Name(id),
			Need:   needs[id],
			Have:   inv.Have(id),
			Remain: max(0, needs[id]-inv.Have(id)),
		}
		if q, ok := snap.Quote(id); ok {
			row.UnitPrice = finite(q.UnitPrice)
			row.Origin = q.Origin
		}
		report.Materials = append(report.Materials, row)
	}

	report.PlanReport = *s.plan(data, snap, root, 1, inv.Clone(), used)
	return report, nil
}

// SetOwned records the owned quantity of item for root. Fractions are floored and negative
// values clamp to zero, which removes the entry.
func (s *Service) SetOwned(ctx context.Context, root, item procurement.ItemID, qty float64) (int, error) {
	if item <= 0 {
		return 0, ErrInvalidItem
	}
	if math.IsNaN(qty) || math.IsInf(qty, 0) {
		return 0, ErrInvalidQuantity
	}
	data, err := s.graphFor(ctx, root)
	if err != nil {
		return 0, err
	}
	if _, ok := procurement.ClosureSet(data.Graph, root)[item]; !ok || item == root {
		return 0, ErrNotMaterial
	}

	n := 0
	if qty > 0 {
		n = int(math.Min(math.Floor(qty), math.MaxInt32))
	}

	unlock := s.lock(root)
	defer unlock()

	if err := s.store.Set(ctx, root, item, n); err != nil {
		return 0, err
	}
	s.logger.Info("Owned stock updated",
		zap.Int("root", int(root)),
		zap.Int("item", int(item)),
		zap.Int("quantity", n),
	)
	return n, nil
}

// ClearOwned forgets all owned stock of root.
func (s *Service) ClearOwned(ctx context.Context, root procurement.ItemID) error {
	if root <= 0 {
		return ErrInvalidItem
	}
	unlock := s.lock(root)
	defer unlock()

	if err := s.store.Clear(ctx, root); err != nil {
		return err
	}
	s.logger.Info("Owned stock cleared", zap.Int("root", int(root)))
	return nil
}

// Owned returns the persisted owned stock of root.
func (s *Service) Owned(ctx context.Context, root procurement.ItemID) (procurement.Inventory, error) {
	if root <= 0 {
		return nil, ErrInvalidItem
	}
	return s.store.Get(ctx, root)
}
