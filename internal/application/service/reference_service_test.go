package service

import (
	"context"
	"testing"

	infraRepo "github.com/pharmacore/pms-api/internal/infrastructure/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferenceService(t *testing.T) *ReferenceService {
	t.Helper()
	db := newTestDB(t)
	return NewReferenceService(
		infraRepo.NewCategoryRepository(db),
		infraRepo.NewGenericRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewMedicineRepository(db),
	)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	svc := newReferenceService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "Tablet")
	require.NoError(t, err)
	assert.Equal(t, "Tablet", created.Name)

	_, err = svc.CreateCategory(ctx, "Tablet")
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCategoryRename(t *testing.T) {
	svc := newReferenceService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "Tablet")
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, "Syrup")
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, created.ID, "Capsule")
	require.NoError(t, err)
	assert.Equal(t, "Capsule", updated.Name)

	// Renaming onto an existing name conflicts.
	_, err = svc.UpdateCategory(ctx, created.ID, "Syrup")
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Saving the same name back is a no-op, not a conflict.
	_, err = svc.UpdateCategory(ctx, created.ID, "Capsule")
	assert.NoError(t, err)
}

func TestDeleteCategory(t *testing.T) {
	svc := newReferenceService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, "Tablet")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))

	err = svc.DeleteCategory(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListCategoriesWithSearch(t *testing.T) {
	svc := newReferenceService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "Tablet")
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, "Syrup")
	require.NoError(t, err)

	all, err := svc.ListCategories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListCategories(ctx, "tab")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Tablet", filtered[0].Name)
}

func TestGenericCompanyMedicineDuplicates(t *testing.T) {
	svc := newReferenceService(t)
	ctx := context.Background()

	_, err := svc.CreateGeneric(ctx, "Paracetamol")
	require.NoError(t, err)
	_, err = svc.CreateGeneric(ctx, "Paracetamol")
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = svc.CreateCompany(ctx, "Square Pharmaceuticals")
	require.NoError(t, err)
	_, err = svc.CreateCompany(ctx, "Square Pharmaceuticals")
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = svc.CreateMedicine(ctx, "Napa")
	require.NoError(t, err)
	_, err = svc.CreateMedicine(ctx, "Napa")
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}
