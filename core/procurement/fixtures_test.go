package procurement

const (
	potion ItemID = 1
	herb   ItemID = 2
	elixir ItemID = 3
	water  ItemID = 4
)

// potionGraph is Potion <- 3x Herb, Elixir <- Potion + 2x Water.
func potionGraph() Graph {
	return NewGraph(map[ItemID][]Variant{
		potion: {{{ItemID: herb, Quantity: 3}}},
		elixir: {{{ItemID: potion, Quantity: 1}, {ItemID: water, Quantity: 2}}},
	})
}

// cycleGraph is X <- Y, Y <- X.
func cycleGraph() Graph {
	return NewGraph(map[ItemID][]Variant{
		10: {{{ItemID: 11, Quantity: 1}}},
		11: {{{ItemID: 10, Quantity: 1}}},
	})
}
