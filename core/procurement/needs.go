package procurement

import "math"

type needsWork struct {
	id   ItemID
	mult int
}

// TotalNeeds expands one unit of root into the total quantity of every ingredient at every depth,
// ignoring prices and owned stock. Intermediate items are counted as well as the raw goods they
// expand into.
//
// The walk uses an explicit work list. Each item is expanded at most maxVisits times
// (DefaultMaxVisits when maxVisits <= 0), which bounds the walk on cyclic graphs. Quantities
// saturate at math.MaxInt. Root never appears in the result.
func TotalNeeds(g Graph, root ItemID, maxVisits int) NeedsMap {
	if maxVisits <= 0 {
		maxVisits = DefaultMaxVisits
	}
	out := make(NeedsMap)
	if root <= 0 {
		return out
	}

	visits := make(map[ItemID]int)
	stack := []needsWork{{id: root, mult: 1}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visits[w.id]++
		if visits[w.id] > maxVisits {
			continue
		}

		variant, ok := g.Variant(w.id)
		if !ok {
			continue
		}
		for _, ing := range variant {
			q := satMul(w.mult, ing.Quantity)
			out[ing.ItemID] = satAdd(out[ing.ItemID], q)
			if g.Craftable(ing.ItemID) {
				stack = append(stack, needsWork{id: ing.ItemID, mult: q})
			}
		}
	}

	delete(out, root)
	return out
}

func satMul(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
