package repository

import (
	"context"
	"time"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	"github.com/pharmacore/pms-api/pkg/pagination"
	"gorm.io/gorm"
)

// StockRepository defines the interface for stock ledger operations.
// Lookups that find nothing return (nil, nil) or an empty slice so the
// caller decides presence semantics.
type StockRepository interface {
	// GetByItemAndCategory returns the single line for an (item, category)
	// pair, or nil when none exists.
	GetByItemAndCategory(ctx context.Context, itemName, category string) (*entity.StockItem, error)
	// GetByItemAndCategoryForUpdate locks the line for the duration of tx
	// so a concurrent receipt or sale cannot read the same quantity.
	GetByItemAndCategoryForUpdate(tx *gorm.DB, itemName, category string) (*entity.StockItem, error)
	SearchByName(ctx context.Context, name string) ([]entity.StockItem, error)
	GetBelowThreshold(ctx context.Context, threshold int) ([]entity.StockItem, error)
	GetAtOrAboveThreshold(ctx context.Context, threshold int) ([]entity.StockItem, error)
	GetByReceivedDate(ctx context.Context, date time.Time) ([]entity.StockItem, error)
	List(ctx context.Context, params *StockFilterParams) ([]entity.StockItem, int64, error)
	Save(ctx context.Context, item *entity.StockItem) error
	SaveTx(tx *gorm.DB, item *entity.StockItem) error
	DeleteByItemAndCategory(ctx context.Context, itemName, category string) (int64, error)
	// DecrementQuantityTx runs the conditional decrement
	//   UPDATE ... SET quantity = quantity - ? WHERE item_name = ? AND category = ? AND quantity >= ?
	// inside tx. Returns false when no row matched, i.e. the line is
	// either absent or short of stock; quantity can never go negative.
	DecrementQuantityTx(tx *gorm.DB, itemName, category string, amount int) (bool, error)
	// ExistsTx reports whether a line exists at all, used to tell
	// out-of-stock apart from insufficient stock after a failed decrement.
	ExistsTx(tx *gorm.DB, itemName, category string) (bool, error)
}

// StockFilterParams contains filtering parameters for stock queries
type StockFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	SortBy     string
	SortOrder  string
}
