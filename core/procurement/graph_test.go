package procurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Variant(t *testing.T) {
	g := NewGraph(map[ItemID][]Variant{
		1: {
			{{ItemID: 2, Quantity: 1}},
			{{ItemID: 3, Quantity: 4}},
		},
		5: {{{ItemID: 6, Quantity: 2}}},
	})

	t.Run("Many variants resolve to the first", func(t *testing.T) {
		v, ok := g.Variant(1)
		assert.True(t, ok)
		assert.Equal(t, Variant{{ItemID: 2, Quantity: 1}}, v)
		assert.IsType(t, ManyVariants{}, g[1])
		assert.Len(t, g.Variants(1), 2)
	})

	t.Run("Single variant is stored flat", func(t *testing.T) {
		assert.IsType(t, OneVariant{}, g[5])
		v, ok := g.Variant(5)
		assert.True(t, ok)
		assert.Equal(t, 6, int(v[0].ItemID))
	})

	t.Run("Terminal item has no variant", func(t *testing.T) {
		_, ok := g.Variant(6)
		assert.False(t, ok)
		assert.False(t, g.Craftable(6))
		assert.Nil(t, g.Variants(6))
	})
}

func TestGraph_AddFiltersInvalidPairs(t *testing.T) {
	g := make(Graph)
	g.Add(1, Variant{
		{ItemID: 0, Quantity: 2},
		{ItemID: 2, Quantity: 0},
		{ItemID: 3, Quantity: -1},
		{ItemID: 4, Quantity: 2},
	})
	g.Add(7, Variant{{ItemID: -1, Quantity: 1}})
	g.Add(-5, Variant{{ItemID: 4, Quantity: 1}})

	v, ok := g.Variant(1)
	assert.True(t, ok)
	assert.Equal(t, Variant{{ItemID: 4, Quantity: 2}}, v)
	assert.False(t, g.Craftable(7), "variant without valid pairs is dropped")
	assert.NotContains(t, g, ItemID(7))
	assert.NotContains(t, g, ItemID(-5))
}

func TestGraph_EmptyFirstVariantIsTerminal(t *testing.T) {
	g := make(Graph)
	g.Add(100,
		Variant{{ItemID: 0, Quantity: 1}, {ItemID: 5, Quantity: 0}},
		Variant{{ItemID: 7, Quantity: 4}},
	)

	_, ok := g.Variant(100)
	assert.False(t, ok)
	assert.False(t, g.Craftable(100))
	assert.Equal(t, []Variant{{}, {{ItemID: 7, Quantity: 4}}}, g.Variants(100))
}

func TestInventory_TakeAndClone(t *testing.T) {
	inv := NewInventory(map[ItemID]int{1: 2, 2: 0, 3: -4, 0: 5})
	assert.Equal(t, Inventory{1: 2}, inv)

	assert.True(t, inv.Take(1))
	assert.True(t, inv.Take(1))
	assert.False(t, inv.Take(1))
	assert.NotContains(t, inv, ItemID(1))

	inv[1] = 1
	clone := inv.Clone()
	clone.Take(1)
	assert.Equal(t, 1, inv.Have(1), "clone must not share storage")
}
