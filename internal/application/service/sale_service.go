package service

import (
	"context"
	"time"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	"github.com/pharmacore/pms-api/internal/domain/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
	"github.com/pharmacore/pms-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaleService records sale batches against the stock ledger. A batch is
// all-or-nothing: one invoice number, every line decremented, or the
// whole thing rolled back.
type SaleService struct {
	db          *gorm.DB
	stockRepo   repository.StockRepository
	invoiceRepo repository.InvoiceRepository
	logger      *zap.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(db *gorm.DB, stockRepo repository.StockRepository, invoiceRepo repository.InvoiceRepository, logger *zap.Logger) *SaleService {
	return &SaleService{
		db:          db,
		stockRepo:   stockRepo,
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// SaleLineInput is one sold item within a batch
type SaleLineInput struct {
	ItemName       string
	Category       string
	Quantity       int
	UnitPrice      decimal.Decimal
	SubTotal       decimal.Decimal
	Amount         decimal.Decimal
	Discount       decimal.Decimal
	DiscountAmount decimal.Decimal
	NetPayable     decimal.Decimal
}

// RecordSaleInput is a sale batch for a single customer
type RecordSaleInput struct {
	CustomerName  string
	ContactNumber string
	Lines         []SaleLineInput
}

// RecordSale reserves the day's next invoice number, decrements stock
// for every line and inserts the invoice rows, all inside one
// transaction. Any shortfall aborts the batch and releases the number
// with the rollback.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) ([]entity.InvoiceItem, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Sale must contain at least one item")
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Sold quantity must be positive")
		}
	}

	now := time.Now()
	var created []entity.InvoiceItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoiceNo, err := s.invoiceRepo.NextInvoiceNoTx(tx, now)
		if err != nil {
			return err
		}

		items := make([]entity.InvoiceItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			ok, err := s.stockRepo.DecrementQuantityTx(tx, line.ItemName, line.Category, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// No row matched: the line is either missing or short.
				existing, err := s.stockRepo.GetByItemAndCategoryForUpdate(tx, line.ItemName, line.Category)
				if err != nil {
					return err
				}
				if existing == nil {
					return apperror.NewOutOfStockError(line.ItemName, line.Category)
				}
				return apperror.NewInsufficientStockError(line.ItemName, existing.Quantity, line.Quantity)
			}

			items = append(items, entity.InvoiceItem{
				InvoiceNo:      invoiceNo,
				CustomerName:   input.CustomerName,
				ContactNumber:  input.ContactNumber,
				ItemName:       line.ItemName,
				Category:       line.Category,
				Quantity:       line.Quantity,
				UnitPrice:      line.UnitPrice,
				SubTotal:       line.SubTotal,
				Amount:         line.Amount,
				Discount:       line.Discount,
				DiscountAmount: line.DiscountAmount,
				NetPayable:     line.NetPayable,
				Date:           now,
			})
		}

		if err := s.invoiceRepo.CreateBatchTx(tx, items); err != nil {
			return err
		}
		created = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.String("invoice_no", created[0].InvoiceNo),
		zap.Int("lines", len(created)),
	)
	return created, nil
}

// GetByInvoiceNo returns all lines of one invoice
func (s *SaleService) GetByInvoiceNo(ctx context.Context, invoiceNo string) ([]entity.InvoiceItem, error) {
	items, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperror.NewInvoiceNotFoundError(invoiceNo)
	}
	return items, nil
}

// ListInvoices lists invoice lines with filtering and pagination
func (s *SaleService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.InvoiceItem], error) {
	items, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetTodaySales returns all invoice lines recorded today
func (s *SaleService) GetTodaySales(ctx context.Context) ([]entity.InvoiceItem, error) {
	return s.invoiceRepo.GetByDate(ctx, time.Now())
}

// UpdateInvoiceInput carries field overwrites applied to every line of
// an invoice. Stock is not touched: corrections to quantity mismatches
// go through a new receipt or sale.
type UpdateInvoiceInput struct {
	CustomerName  *string
	ContactNumber *string
	Discount      *decimal.Decimal
	NetPayable    *decimal.Decimal
}

// UpdateByInvoiceNo applies the patch to every line sharing the number
// and re-stamps their date to today
func (s *SaleService) UpdateByInvoiceNo(ctx context.Context, invoiceNo string, input *UpdateInvoiceInput) ([]entity.InvoiceItem, error) {
	items, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperror.NewInvoiceNotFoundError(invoiceNo)
	}

	now := time.Now()
	for i := range items {
		if input.CustomerName != nil {
			items[i].CustomerName = *input.CustomerName
		}
		if input.ContactNumber != nil {
			items[i].ContactNumber = *input.ContactNumber
		}
		if input.Discount != nil {
			items[i].Discount = *input.Discount
		}
		if input.NetPayable != nil {
			items[i].NetPayable = *input.NetPayable
		}
		items[i].Date = now
	}

	if err := s.invoiceRepo.UpdateAll(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByInvoiceNo removes every line of the invoice. Stock already
// consumed stays consumed; deletion is a record operation, not a refund.
func (s *SaleService) DeleteByInvoiceNo(ctx context.Context, invoiceNo string) error {
	deleted, err := s.invoiceRepo.DeleteByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.NewInvoiceNotFoundError(invoiceNo)
	}

	s.logger.Info("invoice deleted",
		zap.String("invoice_no", invoiceNo),
		zap.Int64("lines", deleted),
	)
	return nil
}
