package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockItem represents one inventory line, keyed by (item name, category).
// Quantity accumulates on receipt and is decremented on every sale.
// Lines delete hard, not soft: the unique (item_name, category) index
// would otherwise block re-receiving a deleted pair.
type StockItem struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName         string          `gorm:"size:255" json:"company_name"`
	ItemName            string          `gorm:"size:255;not null;uniqueIndex:idx_item_category" json:"item_name"`
	Category            string          `gorm:"size:255;not null;uniqueIndex:idx_item_category" json:"category"`
	Generic             string          `gorm:"size:255" json:"generic,omitempty"`
	Quantity            int             `gorm:"not null;default:0" json:"quantity"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	PurchaseDiscount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"purchase_discount"`
	NetPurchasePrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"net_purchase_price"`
	SellPrice           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sell_price"`
	TotalInventoryValue decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_inventory_value"`
	ReceivedDate        time.Time       `gorm:"type:date" json:"received_date"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new stock item
func (s *StockItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockItem model
func (StockItem) TableName() string {
	return "stock_items"
}
