package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pharmacore/pms-api/internal/domain/entity"
	"github.com/pharmacore/pms-api/internal/domain/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
)

// ReferenceService manages the four name lookup tables backing the
// sale and receive forms: categories, generics, companies and medicines.
type ReferenceService struct {
	categoryRepo repository.CategoryRepository
	genericRepo  repository.GenericRepository
	companyRepo  repository.CompanyRepository
	medicineRepo repository.MedicineRepository
}

// NewReferenceService creates a new reference service
func NewReferenceService(
	categoryRepo repository.CategoryRepository,
	genericRepo repository.GenericRepository,
	companyRepo repository.CompanyRepository,
	medicineRepo repository.MedicineRepository,
) *ReferenceService {
	return &ReferenceService{
		categoryRepo: categoryRepo,
		genericRepo:  genericRepo,
		companyRepo:  companyRepo,
		medicineRepo: medicineRepo,
	}
}

// CreateCategory adds a category, rejecting duplicate names
func (s *ReferenceService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicateNameError("Category", name)
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns categories, optionally filtered by name
func (s *ReferenceService) ListCategories(ctx context.Context, search string) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx, search)
}

// UpdateCategory renames a category
func (s *ReferenceService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if name != category.Name {
		dup, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, apperror.NewDuplicateNameError("Category", name)
		}
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category
func (s *ReferenceService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// CreateGeneric adds a generic name, rejecting duplicates
func (s *ReferenceService) CreateGeneric(ctx context.Context, name string) (*entity.Generic, error) {
	existing, err := s.genericRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicateNameError("Generic", name)
	}

	generic := &entity.Generic{Name: name}
	if err := s.genericRepo.Create(ctx, generic); err != nil {
		return nil, err
	}
	return generic, nil
}

// ListGenerics returns generic names, optionally filtered
func (s *ReferenceService) ListGenerics(ctx context.Context, search string) ([]entity.Generic, error) {
	return s.genericRepo.List(ctx, search)
}

// UpdateGeneric renames a generic
func (s *ReferenceService) UpdateGeneric(ctx context.Context, id uuid.UUID, name string) (*entity.Generic, error) {
	generic, err := s.genericRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if generic == nil {
		return nil, apperror.NewNotFoundError("Generic")
	}

	if name != generic.Name {
		dup, err := s.genericRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, apperror.NewDuplicateNameError("Generic", name)
		}
	}

	generic.Name = name
	if err := s.genericRepo.Update(ctx, generic); err != nil {
		return nil, err
	}
	return generic, nil
}

// DeleteGeneric removes a generic name
func (s *ReferenceService) DeleteGeneric(ctx context.Context, id uuid.UUID) error {
	generic, err := s.genericRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if generic == nil {
		return apperror.NewNotFoundError("Generic")
	}
	return s.genericRepo.Delete(ctx, id)
}

// CreateCompany adds a company name, rejecting duplicates
func (s *ReferenceService) CreateCompany(ctx context.Context, name string) (*entity.Company, error) {
	existing, err := s.companyRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicateNameError("Company", name)
	}

	company := &entity.Company{Name: name}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies returns company names, optionally filtered
func (s *ReferenceService) ListCompanies(ctx context.Context, search string) ([]entity.Company, error) {
	return s.companyRepo.List(ctx, search)
}

// UpdateCompany renames a company
func (s *ReferenceService) UpdateCompany(ctx context.Context, id uuid.UUID, name string) (*entity.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	if name != company.Name {
		dup, err := s.companyRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, apperror.NewDuplicateNameError("Company", name)
		}
	}

	company.Name = name
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company name
func (s *ReferenceService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return apperror.NewNotFoundError("Company")
	}
	return s.companyRepo.Delete(ctx, id)
}

// CreateMedicine adds a medicine name, rejecting duplicates
func (s *ReferenceService) CreateMedicine(ctx context.Context, name string) (*entity.Medicine, error) {
	existing, err := s.medicineRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicateNameError("Medicine", name)
	}

	medicine := &entity.Medicine{Name: name}
	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// ListMedicines returns medicine names, optionally filtered
func (s *ReferenceService) ListMedicines(ctx context.Context, search string) ([]entity.Medicine, error) {
	return s.medicineRepo.List(ctx, search)
}

// UpdateMedicine renames a medicine
func (s *ReferenceService) UpdateMedicine(ctx context.Context, id uuid.UUID, name string) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if name != medicine.Name {
		dup, err := s.medicineRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, apperror.NewDuplicateNameError("Medicine", name)
		}
	}

	medicine.Name = name
	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// DeleteMedicine removes a medicine name
func (s *ReferenceService) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return apperror.NewNotFoundError("Medicine")
	}
	return s.medicineRepo.Delete(ctx, id)
}
