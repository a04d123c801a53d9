package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceItem represents one sold line within a sale batch. All lines of
// a batch share the same invoice number; the number itself is generated
// once per batch, never per line.
type InvoiceItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo      string          `gorm:"size:100;not null;index" json:"invoice_no"`
	CustomerName   string          `gorm:"size:255" json:"customer_name"`
	ContactNumber  string          `gorm:"size:50" json:"contact_number"`
	ItemName       string          `gorm:"size:255;not null" json:"item_name"`
	Category       string          `gorm:"size:255;not null" json:"category"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	SubTotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"sub_total"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Discount       decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	NetPayable     decimal.Decimal `gorm:"type:decimal(10,2)" json:"net_payable"`
	Date           time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
