package procurement

// Recipe is the stored recipe of one item. It is either OneVariant or ManyVariants; the shape is
// decided once when the graph is loaded.
type Recipe interface {
	// Variants returns every variant in stored order.
	Variants() []Variant
	isRecipe()
}

// OneVariant is an item craftable in exactly one way.
type OneVariant struct {
	Variant Variant
}

// Variants implements Recipe.
func (r OneVariant) Variants() []Variant {
	if len(r.Variant) == 0 {
		return nil
	}
	return []Variant{r.Variant}
}

func (OneVariant) isRecipe() {}

// ManyVariants is an item with several alternative ingredient lists.
type ManyVariants struct {
	List []Variant
}

// Variants implements Recipe.
func (r ManyVariants) Variants() []Variant {
	return r.List
}

func (ManyVariants) isRecipe() {}

// Graph maps result items to their recipe. Items without an entry are terminal.
type Graph map[ItemID]Recipe

// NewGraph builds a graph from variant lists, dropping invalid pairs.
// A single variant is stored as OneVariant, several as ManyVariants.
func NewGraph(recipes map[ItemID][]Variant) Graph {
	g := make(Graph, len(recipes))
	for id, variants := range recipes {
		g.Add(id, variants...)
	}
	return g
}

// Add appends variants to id's recipe, promoting OneVariant to ManyVariants when needed.
// Variants keep their position even when cleaning empties them, so an empty variant #0 leaves the
// item terminal. A new entry whose variants are all empty is not stored.
func (g Graph) Add(id ItemID, variants ...Variant) {
	if id <= 0 {
		return
	}
	cleaned := make([]Variant, 0, len(variants))
	usable := false
	for _, v := range variants {
		v = cleanVariant(v)
		usable = usable || len(v) > 0
		cleaned = append(cleaned, v)
	}
	if _, exists := g[id]; !exists && !usable {
		return
	}
	for _, v := range cleaned {
		switch prev := g[id].(type) {
		case nil:
			g[id] = OneVariant{Variant: v}
		case OneVariant:
			g[id] = ManyVariants{List: []Variant{prev.Variant, v}}
		case ManyVariants:
			g[id] = ManyVariants{List: append(prev.List, v)}
		}
	}
}

// Variant returns variant #0 of id, or false when the item is terminal.
func (g Graph) Variant(id ItemID) (Variant, bool) {
	r, ok := g[id]
	if !ok || r == nil {
		return nil, false
	}
	variants := r.Variants()
	if len(variants) == 0 || len(variants[0]) == 0 {
		return nil, false
	}
	return variants[0], true
}

// Variants returns every stored variant of id.
func (g Graph) Variants(id ItemID) []Variant {
	r, ok := g[id]
	if !ok || r == nil {
		return nil
	}
	return r.Variants()
}

// Craftable reports whether id has a usable variant.
func (g Graph) Craftable(id ItemID) bool {
	_, ok := g.Variant(id)
	return ok
}

func cleanVariant(v Variant) Variant {
	out := make(Variant, 0, len(v))
	for _, ing := range v {
		if ing.ItemID <= 0 || ing.Quantity <= 0 {
			continue
		}
		out = append(out, ing)
	}
	return out
}
