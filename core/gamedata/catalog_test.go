package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	doc := `{"items":[[5057,"Iron Ore",21201],["5058","Iron Ingot"],[0,"Zero"],[],[7]]}`

	c, err := ParseCatalog([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	meta, ok := c.Metadata(5057)
	require.True(t, ok)
	assert.Equal(t, ItemMeta{ID: 5057, Name: "Iron Ore", IconID: 21201}, meta)

	assert.Equal(t, "Iron Ingot", c.Name(5058))
	assert.Equal(t, "Item#7", c.Name(7), "unnamed row")
	assert.Equal(t, "Item#99", c.Name(99), "unknown id")
}

func TestCatalog_Nil(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "Item#1", c.Name(1))
}
