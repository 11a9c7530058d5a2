package models

// LowStockThreshold marks the inventory level below which a medication is
// flagged on the dashboard and in list filters.
const LowStockThreshold = 10

// Medication is an inventory item. Stock may reach zero but never below;
// the unit price must be strictly positive.
type Medication struct {
	BaseModel
	Name       string  `gorm:"type:varchar(100);not null;index" json:"name" form:"name"`
	Laboratory string  `gorm:"type:varchar(100);not null" json:"laboratory" form:"laboratory"`
	Stock      int     `gorm:"default:0;not null" json:"stock" form:"stock"`
	UnitPrice  float64 `gorm:"type:numeric(10,2);not null" json:"unit_price" form:"unit_price"`
	Active     bool    `gorm:"default:true;index" json:"active" form:"active"`
}

// LowStock reports whether the item is below the reorder threshold.
func (m Medication) LowStock() bool {
	return m.Stock < LowStockThreshold
}
