package request

import "github.com/shopspring/decimal"

// ReceiveStockRequest represents one stock receipt submission
type ReceiveStockRequest struct {
	CompanyName         string          `json:"company_name" binding:"required"`
	ItemName            string          `json:"item_name" binding:"required"`
	Category            string          `json:"category" binding:"required"`
	Generic             string          `json:"generic"`
	Quantity            int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice           decimal.Decimal `json:"unit_price" binding:"required"`
	PurchaseDiscount    decimal.Decimal `json:"purchase_discount"`
	NetPurchasePrice    decimal.Decimal `json:"net_purchase_price"`
	SellPrice           decimal.Decimal `json:"sell_price" binding:"required"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

// UpdateStockRequest carries optional overwrites for a stock line.
// Quantity is not updatable here; it moves through receipts and sales.
type UpdateStockRequest struct {
	CompanyName      *string          `json:"company_name"`
	Generic          *string          `json:"generic"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	PurchaseDiscount *decimal.Decimal `json:"purchase_discount"`
	NetPurchasePrice *decimal.Decimal `json:"net_purchase_price"`
	SellPrice        *decimal.Decimal `json:"sell_price"`
}

// StockFilterRequest represents stock list query parameters
type StockFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
