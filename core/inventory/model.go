package inventory

import "time"

// TableName is the table holding owned stock.
const TableName = "owned_materials"

// OwnedMaterial is the owned quantity of one item, tracked for one crafting root.
// Each root keeps its own stock; the same item owned for two roots is two rows.
type OwnedMaterial struct {
	RootID    int       `gorm:"column:root_id;type:int;primaryKey;autoIncrement:false"`
	ItemID    int       `gorm:"column:item_id;type:int;primaryKey;autoIncrement:false"`
	Quantity  int       `gorm:"column:quantity;type:int;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:datetime"`
}

// TableName implements gorm's tabler interface.
func (OwnedMaterial) TableName() string {
	return TableName
}
