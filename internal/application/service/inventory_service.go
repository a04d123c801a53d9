package service

import (
	"context"
	"time"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	"github.com/pharmacore/pms-api/internal/domain/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
	"github.com/pharmacore/pms-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultStockThreshold is the cut-off between low and sufficient stock
// when the caller does not supply one.
const DefaultStockThreshold = 10

// InventoryService reconciles stock receipts against the ledger and
// serves stock lookups.
type InventoryService struct {
	db        *gorm.DB
	stockRepo repository.StockRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db *gorm.DB, stockRepo repository.StockRepository) *InventoryService {
	return &InventoryService{
		db:        db,
		stockRepo: stockRepo,
	}
}

// ReceiveStockInput represents one stock receipt
type ReceiveStockInput struct {
	CompanyName         string
	ItemName            string
	Category            string
	Generic             string
	Quantity            int
	UnitPrice           decimal.Decimal
	PurchaseDiscount    decimal.Decimal
	NetPurchasePrice    decimal.Decimal
	SellPrice           decimal.Decimal
	TotalInventoryValue decimal.Decimal
}

// Receive applies a stock receipt: an existing (item, category) line
// accumulates the quantity and takes the receipt's prices; a new pair
// becomes a fresh line. The locked read-modify-write keeps a concurrent
// receipt or sale from losing the update.
func (s *InventoryService) Receive(ctx context.Context, input *ReceiveStockInput) (*entity.StockItem, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Received quantity must be positive")
	}

	var saved *entity.StockItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.stockRepo.GetByItemAndCategoryForUpdate(tx, input.ItemName, input.Category)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Quantity += input.Quantity
			existing.CompanyName = input.CompanyName
			existing.Generic = input.Generic
			existing.UnitPrice = input.UnitPrice
			existing.PurchaseDiscount = input.PurchaseDiscount
			existing.NetPurchasePrice = input.NetPurchasePrice
			existing.SellPrice = input.SellPrice
			existing.TotalInventoryValue = input.TotalInventoryValue
			existing.ReceivedDate = time.Now()

			if err := s.stockRepo.SaveTx(tx, existing); err != nil {
				return err
			}
			saved = existing
			return nil
		}

		item := &entity.StockItem{
			CompanyName:         input.CompanyName,
			ItemName:            input.ItemName,
			Category:            input.Category,
			Generic:             input.Generic,
			Quantity:            input.Quantity,
			UnitPrice:           input.UnitPrice,
			PurchaseDiscount:    input.PurchaseDiscount,
			NetPurchasePrice:    input.NetPurchasePrice,
			SellPrice:           input.SellPrice,
			TotalInventoryValue: input.TotalInventoryValue,
			ReceivedDate:        time.Now(),
		}
		if err := s.stockRepo.SaveTx(tx, item); err != nil {
			return err
		}
		saved = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetByItemAndCategory returns one stock line or a not-found error
func (s *InventoryService) GetByItemAndCategory(ctx context.Context, itemName, category string) (*entity.StockItem, error) {
	item, err := s.stockRepo.GetByItemAndCategory(ctx, itemName, category)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Stock item")
	}
	return item, nil
}

// SearchByName returns all stock lines whose item name contains the
// given text, case-insensitively
func (s *InventoryService) SearchByName(ctx context.Context, name string) ([]entity.StockItem, error) {
	return s.stockRepo.SearchByName(ctx, name)
}

// ListStock lists stock lines with filtering and pagination
func (s *InventoryService) ListStock(ctx context.Context, params *repository.StockFilterParams) (*pagination.PaginatedResult[entity.StockItem], error) {
	items, total, err := s.stockRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateStockInput carries field overwrites for an existing stock line.
// Quantity is deliberately absent: quantities change only through
// receipts and sales.
type UpdateStockInput struct {
	CompanyName      *string
	Generic          *string
	UnitPrice        *decimal.Decimal
	PurchaseDiscount *decimal.Decimal
	NetPurchasePrice *decimal.Decimal
	SellPrice        *decimal.Decimal
}

// UpdateByItemAndCategory overwrites pricing fields of an existing line
func (s *InventoryService) UpdateByItemAndCategory(ctx context.Context, itemName, category string, input *UpdateStockInput) (*entity.StockItem, error) {
	item, err := s.stockRepo.GetByItemAndCategory(ctx, itemName, category)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Stock item")
	}

	if input.CompanyName != nil {
		item.CompanyName = *input.CompanyName
	}
	if input.Generic != nil {
		item.Generic = *input.Generic
	}
	if input.UnitPrice != nil {
		item.UnitPrice = *input.UnitPrice
	}
	if input.PurchaseDiscount != nil {
		item.PurchaseDiscount = *input.PurchaseDiscount
	}
	if input.NetPurchasePrice != nil {
		item.NetPurchasePrice = *input.NetPurchasePrice
	}
	if input.SellPrice != nil {
		item.SellPrice = *input.SellPrice
	}

	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteByItemAndCategory removes a stock line. This is an explicit
// administrative operation; lines are never deleted automatically.
func (s *InventoryService) DeleteByItemAndCategory(ctx context.Context, itemName, category string) error {
	deleted, err := s.stockRepo.DeleteByItemAndCategory(ctx, itemName, category)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.NewNotFoundError("Stock item")
	}
	return nil
}

// FindLowStock returns lines with fewer units than the threshold;
// threshold <= 0 falls back to the default of 10.
func (s *InventoryService) FindLowStock(ctx context.Context, threshold int) ([]entity.StockItem, error) {
	if threshold <= 0 {
		threshold = DefaultStockThreshold
	}
	return s.stockRepo.GetBelowThreshold(ctx, threshold)
}

// FindSufficientStock returns lines with at least threshold units;
// threshold <= 0 falls back to the default of 10.
func (s *InventoryService) FindSufficientStock(ctx context.Context, threshold int) ([]entity.StockItem, error) {
	if threshold <= 0 {
		threshold = DefaultStockThreshold
	}
	return s.stockRepo.GetAtOrAboveThreshold(ctx, threshold)
}

// GetTodayReceives returns stock lines received today
func (s *InventoryService) GetTodayReceives(ctx context.Context) ([]entity.StockItem, error) {
	return s.stockRepo.GetByReceivedDate(ctx, time.Now())
}
