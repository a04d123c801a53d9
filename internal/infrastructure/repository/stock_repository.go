package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	domainRepo "github.com/pharmacore/pms-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) GetByItemAndCategory(ctx context.Context, itemName, category string) (*entity.StockItem, error) {
	var item entity.StockItem
	err := r.db.WithContext(ctx).
		First(&item, "item_name = ? AND category = ?", itemName, category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByItemAndCategoryForUpdate takes a row lock so concurrent writers
// queue up behind tx. Sqlite has no FOR UPDATE syntax; its single write
// connection already serializes transactions.
func (r *stockRepository) GetByItemAndCategoryForUpdate(tx *gorm.DB, itemName, category string) (*entity.StockItem, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var item entity.StockItem
	err := query.First(&item, "item_name = ? AND category = ?", itemName, category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchByName does case-insensitive containment matching. LOWER + LIKE
// instead of ILIKE so the query runs on every supported dialect.
func (r *stockRepository) SearchByName(ctx context.Context, name string) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Where("LOWER(item_name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("item_name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepository) GetBelowThreshold(ctx context.Context, threshold int) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepository) GetAtOrAboveThreshold(ctx context.Context, threshold int) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Where("quantity >= ?", threshold).
		Order("quantity DESC").
		Find(&items).Error
	return items, err
}

func (r *stockRepository) GetByReceivedDate(ctx context.Context, date time.Time) ([]entity.StockItem, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Where("received_date >= ? AND received_date < ?", dayStart, dayEnd).
		Order("item_name ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepository) List(ctx context.Context, params *domainRepo.StockFilterParams) ([]entity.StockItem, int64, error) {
	var items []entity.StockItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockItem{})

	if params.Search != "" {
		needle := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(item_name) LIKE ? OR LOWER(generic) LIKE ?", needle, needle)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&items).Error

	return items, total, err
}

func (r *stockRepository) Save(ctx context.Context, item *entity.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *stockRepository) SaveTx(tx *gorm.DB, item *entity.StockItem) error {
	return tx.Save(item).Error
}

func (r *stockRepository) DeleteByItemAndCategory(ctx context.Context, itemName, category string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("item_name = ? AND category = ?", itemName, category).
		Delete(&entity.StockItem{})
	return result.RowsAffected, result.Error
}

// DecrementQuantityTx decrements stock only when enough quantity exists.
// The WHERE guard makes read-check-decrement a single statement, so two
// concurrent sales cannot both spend the same units.
func (r *stockRepository) DecrementQuantityTx(tx *gorm.DB, itemName, category string, amount int) (bool, error) {
	result := tx.Model(&entity.StockItem{}).
		Where("item_name = ? AND category = ? AND quantity >= ?", itemName, category, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *stockRepository) ExistsTx(tx *gorm.DB, itemName, category string) (bool, error) {
	var count int64
	err := tx.Model(&entity.StockItem{}).
		Where("item_name = ? AND category = ?", itemName, category).
		Count(&count).Error
	return count > 0, err
}
