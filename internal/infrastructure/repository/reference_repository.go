package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pharmacore/pms-api/internal/domain/entity"
	domainRepo "github.com/pharmacore/pms-api/internal/domain/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) List(ctx context.Context, search string) ([]entity.Category, error) {
	var categories []entity.Category
	query := r.db.WithContext(ctx).Model(&entity.Category{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

type genericRepository struct {
	db *gorm.DB
}

// NewGenericRepository creates a new generic-name repository
func NewGenericRepository(db *gorm.DB) domainRepo.GenericRepository {
	return &genericRepository{db: db}
}

func (r *genericRepository) Create(ctx context.Context, generic *entity.Generic) error {
	return r.db.WithContext(ctx).Create(generic).Error
}

func (r *genericRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Generic, error) {
	var generic entity.Generic
	err := r.db.WithContext(ctx).First(&generic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &generic, nil
}

func (r *genericRepository) GetByName(ctx context.Context, name string) (*entity.Generic, error) {
	var generic entity.Generic
	err := r.db.WithContext(ctx).First(&generic, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &generic, nil
}

func (r *genericRepository) Update(ctx context.Context, generic *entity.Generic) error {
	return r.db.WithContext(ctx).Save(generic).Error
}

func (r *genericRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Generic{}, "id = ?", id).Error
}

func (r *genericRepository) List(ctx context.Context, search string) ([]entity.Generic, error) {
	var generics []entity.Generic
	query := r.db.WithContext(ctx).Model(&entity.Generic{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := query.Order("name ASC").Find(&generics).Error
	return generics, err
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Company{}, "id = ?", id).Error
}

func (r *companyRepository) List(ctx context.Context, search string) ([]entity.Company, error) {
	var companies []entity.Company
	query := r.db.WithContext(ctx).Model(&entity.Company{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := query.Order("name ASC").Find(&companies).Error
	return companies, err
}

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine-name repository
func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).First(&medicine, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) GetByName(ctx context.Context, name string) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).First(&medicine, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

func (r *medicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Medicine{}, "id = ?", id).Error
}

func (r *medicineRepository) List(ctx context.Context, search string) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	query := r.db.WithContext(ctx).Model(&entity.Medicine{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err := query.Order("name ASC").Find(&medicines).Error
	return medicines, err
}
