package procurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItems(t *testing.T) {
	prices := Prices{
		2: {UnitPrice: 10, Origin: "Odin"},
		3: {UnitPrice: 1, Origin: "Ultros"},
		4: {UnitPrice: 5},
	}
	rows, known := LineItems(map[ItemID]int{2: 1, 3: 4, 4: 2, 9: 1, 8: 3, 5: 0}, prices)

	require.Len(t, rows, 5)
	ids := make([]ItemID, len(rows))
	for i, r := range rows {
		ids[i] = r.ItemID
	}
	// totals: 3 -> 4, 2 -> 10, 4 -> 10, then unpriced 8 and 9
	assert.Equal(t, []ItemID{3, 2, 4, 8, 9}, ids)
	assert.Equal(t, 24.0, known)

	assert.True(t, rows[0].Priced())
	assert.Equal(t, "Ultros", rows[0].Origin)
	assert.False(t, rows[3].Priced())

	empty, total := LineItems(nil, nil)
	assert.Empty(t, empty)
	assert.Zero(t, total)
}
