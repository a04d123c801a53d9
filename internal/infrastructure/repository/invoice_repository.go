package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pharmacore/pms-api/internal/domain/entity"
	domainRepo "github.com/pharmacore/pms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// NextInvoiceNoTx reserves the next number for today's prefix. Counting
// and formatting is a check-then-act sequence, so concurrent callers are
// serialized with a transaction-scoped advisory lock on the prefix; the
// lock releases automatically when tx commits or rolls back. Dialects
// without advisory locks (sqlite in tests) rely on their single write
// connection for the same guarantee.
func (r *invoiceRepository) NextInvoiceNoTx(tx *gorm.DB, now time.Time) (string, error) {
	prefix := "INV-" + now.Format("20060102")

	if tx.Dialector.Name() == "postgres" {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", prefix).Error; err != nil {
			return "", err
		}
	}

	// Count distinct numbers, not rows: a batch of lines shares one
	// number. Unscoped so a deleted invoice keeps its sequence slot.
	var count int64
	err := tx.Unscoped().Model(&entity.InvoiceItem{}).
		Where("invoice_no LIKE ?", prefix+"%").
		Distinct("invoice_no").
		Count(&count).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%04d", prefix, count+1), nil
}

func (r *invoiceRepository) CreateBatchTx(tx *gorm.DB, items []entity.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *invoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) ([]entity.InvoiceItem, error) {
	var items []entity.InvoiceItem
	err := r.db.WithContext(ctx).
		Where("invoice_no = ?", invoiceNo).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *invoiceRepository) GetByDate(ctx context.Context, date time.Time) ([]entity.InvoiceItem, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var items []entity.InvoiceItem
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("invoice_no ASC").
		Find(&items).Error
	return items, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.InvoiceItem, int64, error) {
	var items []entity.InvoiceItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InvoiceItem{})

	if params.Search != "" {
		needle := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(invoice_no) LIKE ? OR LOWER(customer_name) LIKE ?", needle, needle)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
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

func (r *invoiceRepository) UpdateAll(ctx context.Context, items []entity.InvoiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := tx.Save(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *invoiceRepository) DeleteByInvoiceNo(ctx context.Context, invoiceNo string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("invoice_no = ?", invoiceNo).
		Delete(&entity.InvoiceItem{})
	return result.RowsAffected, result.Error
}
