package gamedata

import (
	"context"
	"fmt"
	"strconv"

	"craft-planner/core/procurement"
	"craft-planner/core/storage"
	"craft-planner/core/utils"

	"github.com/goccy/go-json"
)

// ItemMeta is the display metadata of an item.
type ItemMeta struct {
	ID     procurement.ItemID `json:"id"`
	Name   string             `json:"name"`
	IconID int                `json:"icon_id,omitempty"`
}

// Catalog maps item ids to display metadata. It never influences cost decisions.
type Catalog struct {
	items map[procurement.ItemID]ItemMeta
}

// NewCatalog builds a catalog from metadata rows.
func NewCatalog(items ...ItemMeta) *Catalog {
	c := &Catalog{items: make(map[procurement.ItemID]ItemMeta, len(items))}
	for _, it := range items {
		if it.ID > 0 {
			c.items[it.ID] = it
		}
	}
	return c
}

// Metadata returns the metadata of id.
func (c *Catalog) Metadata(id procurement.ItemID) (ItemMeta, bool) {
	if c == nil {
		return ItemMeta{}, false
	}
	m, ok := c.items[id]
	return m, ok
}

// Name returns the item name, or "Item#<id>" for unknown or unnamed items.
func (c *Catalog) Name(id procurement.ItemID) string {
	if m, ok := c.Metadata(id); ok && m.Name != "" {
		return m.Name
	}
	return "Item#" + strconv.Itoa(int(id))
}

// Len returns the number of catalogued items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// itemIndexFile is the document layout of item_index.json: {"items": [[id, name, iconId], ...]}.
type itemIndexFile struct {
	Items [][]any `json:"items"`
}

// LoadCatalog downloads and decodes the item index.
func LoadCatalog(ctx context.Context, client storage.Client, bucket, objectName string) (*Catalog, error) {
	data, err := storage.ReadObject(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes an item index document, skipping rows without a valid id.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file itemIndexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode item index: %w", err)
	}

	items := make([]ItemMeta, 0, len(file.Items))
	for _, row := range file.Items {
		if len(row) == 0 {
			continue
		}
		id, ok := utils.ToPositiveInt(row[0])
		if !ok {
			continue
		}
		meta := ItemMeta{ID: procurement.ItemID(id)}
		if len(row) > 1 {
			meta.Name = utils.ToString(row[1])
		}
		if len(row) > 2 {
			meta.IconID = utils.ToInt(row[2])
		}
		items = append(items, meta)
	}
	return NewCatalog(items...), nil
}
