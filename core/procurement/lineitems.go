package procurement

import (
	"math"
	"sort"
)

// LineItem is one row of a shopping list priced against a snapshot.
type LineItem struct {
	ItemID   ItemID
	Quantity int
	// UnitPrice and Total are +Inf when the item has no known price.
	UnitPrice float64
	Total     float64
	Origin    string
}

// Priced reports whether the row has a known price.
func (l LineItem) Priced() bool {
	return !math.IsInf(l.UnitPrice, 1)
}

// LineItems prices quantities and orders them by ascending total, unpriced rows last,
// ties by ascending id. The second result sums the priced totals only.
func LineItems(quantities map[ItemID]int, prices PriceSource) ([]LineItem, float64) {
	rows := make([]LineItem, 0, len(quantities))
	known := 0.0
	for id, qty := range quantities {
		if qty <= 0 {
			continue
		}
		row := LineItem{ItemID: id, Quantity: qty, UnitPrice: math.Inf(1), Total: math.Inf(1)}
		if prices != nil {
			if q, ok := prices.Quote(id); ok && validPrice(q.UnitPrice) {
				row.UnitPrice = q.UnitPrice
				row.Total = q.UnitPrice * float64(qty)
				row.Origin = q.Origin
				known += row.Total
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total < rows[j].Total
		}
		return rows[i].ItemID < rows[j].ItemID
	})
	return rows, known
}
