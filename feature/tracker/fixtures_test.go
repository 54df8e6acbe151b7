package tracker

import (
	"testing"

	"craft-planner/core/database"
	"craft-planner/core/gamedata"
	"craft-planner/core/inventory"
	"craft-planner/core/market"
	"craft-planner/core/procurement"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	potion procurement.ItemID = 1
	herb   procurement.ItemID = 2
	elixir procurement.ItemID = 3
	water  procurement.ItemID = 4
	rock   procurement.ItemID = 9
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
		gamedata.ItemMeta{ID: rock, Name: "Rock"},
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

func newTestStore(t *testing.T) *inventory.Store {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store := inventory.NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func newTestService(t *testing.T) *Service {
	return NewService(testSource(), testPrices(), newTestStore(t), procurement.Config{}, zap.NewNop())
}
