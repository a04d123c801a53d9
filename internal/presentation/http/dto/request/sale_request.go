package request

import "github.com/shopspring/decimal"

// SaleLineRequest represents one sold item within a sale batch
type SaleLineRequest struct {
	ItemName       string          `json:"item_name" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	Quantity       int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice      decimal.Decimal `json:"unit_price" binding:"required"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	Amount         decimal.Decimal `json:"amount"`
	Discount       decimal.Decimal `json:"discount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	NetPayable     decimal.Decimal `json:"net_payable"`
}

// RecordSaleRequest represents a sale batch submission
type RecordSaleRequest struct {
	CustomerName  string            `json:"customer_name"`
	ContactNumber string            `json:"contact_number"`
	Items         []SaleLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest carries optional overwrites applied to every
// line of an invoice
type UpdateInvoiceRequest struct {
	CustomerName  *string          `json:"customer_name"`
	ContactNumber *string          `json:"contact_number"`
	Discount      *decimal.Decimal `json:"discount"`
	NetPayable    *decimal.Decimal `json:"net_payable"`
}

// InvoiceFilterRequest represents invoice list query parameters
type InvoiceFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
