package procurement

// CheapestBuyList expands one unit of root through the chooser's decisions and returns the items
// to buy, ignoring owned stock. Root is always crafted; ingredients decided as CRAFT are expanded
// further, everything else is bought. An item met again on its own expansion path is bought.
func (c *CostChooser) CheapestBuyList(root ItemID) map[ItemID]int {
	out := make(map[ItemID]int)
	variant, ok := c.graph.Variant(root)
	if !ok {
		return out
	}
	path := map[ItemID]struct{}{root: {}}
	for _, ing := range variant {
		c.expandBuys(ing.ItemID, ing.Quantity, path, out)
	}
	delete(out, root)
	return out
}

func (c *CostChooser) expandBuys(id ItemID, mult int, path map[ItemID]struct{}, out map[ItemID]int) {
	if mult <= 0 {
		return
	}
	decision := c.UnitCost(id)
	_, onPath := path[id]
	variant, craftable := c.graph.Variant(id)
	if decision.Mode == ModeBuy || onPath || !craftable {
		out[id] = satAdd(out[id], mult)
		return
	}

	path[id] = struct{}{}
	for _, ing := range variant {
		c.expandBuys(ing.ItemID, satMul(mult, ing.Quantity), path, out)
	}
	delete(path, id)
}
