package cost

import (
	"context"

	"craft-planner/core/gamedata"
	"craft-planner/core/market"
	"craft-planner/core/procurement"

	"go.uber.org/zap"
)

const (
	potion procurement.ItemID = 1
	herb   procurement.ItemID = 2
	elixir procurement.ItemID = 3
	water  procurement.ItemID = 4
)

func testSource() *gamedata.Source {
	g := procurement.NewGraph(map[procurement.ItemID][]procurement.Variant{
		potion: {{{ItemID: herb, Quantity: 3}}},
		elixir: {{{ItemID: potion, Quantity: 1}, {ItemID: water, Quantity: 2}}},
	})
	catalog := gamedata.NewCatalog(
		gamedata.ItemMeta{ID: potion, Name: "Potion"},
		gamedata.ItemMeta{ID: herb, Name: "Herb"},
		gamedata.ItemMeta{ID: elixir, Name: "Elixir"},
		gamedata.ItemMeta{ID: water, Name: "Water"},
	)
	return gamedata.NewStaticSource(g, catalog)
}

func testPrices() *market.StaticOracle {
	return &market.StaticOracle{DataCenter: "Light", Prices: procurement.Prices{
		herb:   {UnitPrice: 10, Origin: "Odin"},
		water:  {UnitPrice: 1, Origin: "Lich"},
		potion: {UnitPrice: 25, Origin: "Zodiark"},
	}}
}

func newTestService(prices market.PriceOracle) *Service {
	return NewService(testSource(), prices, procurement.Config{}, zap.NewNop())
}

type failingOracle struct{}

func (failingOracle) Quotes(context.Context, []procurement.ItemID) (*market.Snapshot, error) {
	return nil, context.DeadlineExceeded
}

type staticNoPrices struct{}

func (staticNoPrices) Quotes(ctx context.Context, ids []procurement.ItemID) (*market.Snapshot, error) {
	return market.NewSnapshot("Light", nil), nil
}
