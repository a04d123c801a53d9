package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pharmacore/pms-api/internal/domain/entity"
)

// CategoryRepository defines the interface for category lookups
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Category, error)
}

// GenericRepository defines the interface for generic-name lookups
type GenericRepository interface {
	Create(ctx context.Context, generic *entity.Generic) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Generic, error)
	GetByName(ctx context.Context, name string) (*entity.Generic, error)
	Update(ctx context.Context, generic *entity.Generic) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Generic, error)
}

// CompanyRepository defines the interface for company-name lookups
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Company, error)
}

// MedicineRepository defines the interface for medicine-name lookups
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	GetByName(ctx context.Context, name string) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Medicine, error)
}
