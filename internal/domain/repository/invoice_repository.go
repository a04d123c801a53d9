package repository

import (
	"context"
	"time"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	"github.com/pharmacore/pms-api/pkg/pagination"
	"gorm.io/gorm"
)

// InvoiceRepository defines the interface for invoice record operations.
type InvoiceRepository interface {
	// NextInvoiceNoTx reserves the next INV-<YYYYMMDD>-<NNNN> number.
	// It must be called inside the transaction that inserts the rows;
	// the implementation serializes concurrent reservations for the
	// same day prefix.
	NextInvoiceNoTx(tx *gorm.DB, now time.Time) (string, error)
	CreateBatchTx(tx *gorm.DB, items []entity.InvoiceItem) error
	GetByInvoiceNo(ctx context.Context, invoiceNo string) ([]entity.InvoiceItem, error)
	GetByDate(ctx context.Context, date time.Time) ([]entity.InvoiceItem, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.InvoiceItem, int64, error)
	// UpdateAll persists every given line.
	UpdateAll(ctx context.Context, items []entity.InvoiceItem) error
	// DeleteByInvoiceNo removes all lines sharing the number and returns
	// how many were removed.
	DeleteByInvoiceNo(ctx context.Context, invoiceNo string) (int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
