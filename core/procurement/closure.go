package procurement

// Closure returns root and every item reachable from it through variant #0, root first, in
// depth-first discovery order. Each id appears once.
//
// A node already on the active path is recorded but not expanded again, which bounds the walk on
// cyclic graphs; a node already expanded through another branch is not revisited either.
func Closure(g Graph, root ItemID) []ItemID {
	if root <= 0 {
		return nil
	}
	w := closureWalk{
		graph:    g,
		visiting: make(map[ItemID]struct{}),
		seen:     make(map[ItemID]struct{}),
	}
	w.visit(root)
	return w.out
}

type closureWalk struct {
	graph    Graph
	visiting map[ItemID]struct{}
	seen     map[ItemID]struct{}
	out      []ItemID
}

func (w *closureWalk) visit(id ItemID) {
	if _, onPath := w.visiting[id]; onPath {
		return
	}
	if _, done := w.seen[id]; done {
		return
	}
	w.seen[id] = struct{}{}
	w.out = append(w.out, id)

	variant, ok := w.graph.Variant(id)
	if !ok {
		return
	}
	w.visiting[id] = struct{}{}
	for _, ing := range variant {
		w.visit(ing.ItemID)
	}
	delete(w.visiting, id)
}

// ClosureSet returns Closure as a set.
func ClosureSet(g Graph, root ItemID) map[ItemID]struct{} {
	ids := Closure(g, root)
	set := make(map[ItemID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
