package service

import (
	"context"
	"sync"
	"testing"

	"github.com/pharmacore/pms-api/internal/domain/repository"
	infraRepo "github.com/pharmacore/pms-api/internal/infrastructure/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
	"github.com/pharmacore/pms-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryService(t *testing.T) (*InventoryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewInventoryService(db, infraRepo.NewStockRepository(db)), db
}

func receiveInput(item, category string, qty int) *ReceiveStockInput {
	return &ReceiveStockInput{
		CompanyName:      "Square Pharmaceuticals",
		ItemName:         item,
		Category:         category,
		Generic:          "Paracetamol",
		Quantity:         qty,
		UnitPrice:        decimal.NewFromFloat(1.50),
		PurchaseDiscount: decimal.NewFromFloat(5),
		NetPurchasePrice: decimal.NewFromFloat(1.43),
		SellPrice:        decimal.NewFromFloat(2.00),
	}
}

func TestReceiveCreatesNewLine(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	item, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)

	assert.Equal(t, "Napa", item.ItemName)
	assert.Equal(t, "Tablet", item.Category)
	assert.Equal(t, 50, item.Quantity)
	assert.False(t, item.ReceivedDate.IsZero())
}

func TestReceiveAccumulatesExistingLine(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)

	second := receiveInput("Napa", "Tablet", 30)
	second.SellPrice = decimal.NewFromFloat(2.25)
	item, err := svc.Receive(ctx, second)
	require.NoError(t, err)

	// Quantity accumulates, prices take the latest receipt's values.
	assert.Equal(t, 80, item.Quantity)
	assert.True(t, item.SellPrice.Equal(decimal.NewFromFloat(2.25)))

	// Still a single ledger line.
	items, err := svc.SearchByName(ctx, "napa")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReceiveSameNameDifferentCategoryIsSeparate(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)
	_, err = svc.Receive(ctx, receiveInput("Napa", "Syrup", 20))
	require.NoError(t, err)

	tablet, err := svc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	syrup, err := svc.GetByItemAndCategory(ctx, "Napa", "Syrup")
	require.NoError(t, err)

	assert.Equal(t, 50, tablet.Quantity)
	assert.Equal(t, 20, syrup.Quantity)
}

func TestReceiveRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newInventoryService(t)

	_, err := svc.Receive(context.Background(), receiveInput("Napa", "Tablet", 0))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestConcurrentReceivesLoseNoUpdate(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 10))
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 5))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	item, err := svc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 10+workers*5, item.Quantity)
}

func TestGetByItemAndCategoryNotFound(t *testing.T) {
	svc, _ := newInventoryService(t)

	_, err := svc.GetByItemAndCategory(context.Background(), "Nope", "Tablet")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestSearchByNameIsCaseInsensitive(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa Extra", "Tablet", 10))
	require.NoError(t, err)
	_, err = svc.Receive(ctx, receiveInput("Seclo", "Capsule", 10))
	require.NoError(t, err)

	items, err := svc.SearchByName(ctx, "NAPA")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Napa Extra", items[0].ItemName)
}

func TestLowAndSufficientStockPartitionTheLedger(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 5))
	require.NoError(t, err)
	_, err = svc.Receive(ctx, receiveInput("Seclo", "Capsule", 10))
	require.NoError(t, err)
	_, err = svc.Receive(ctx, receiveInput("Monas", "Tablet", 40))
	require.NoError(t, err)

	// Threshold 0 falls back to the default of 10; a line with exactly
	// 10 units counts as sufficient.
	low, err := svc.FindLowStock(ctx, 0)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Napa", low[0].ItemName)

	sufficient, err := svc.FindSufficientStock(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, sufficient, 2)
}

func TestLowStockCustomThreshold(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 15))
	require.NoError(t, err)

	low, err := svc.FindLowStock(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, low, 1)

	low, err = svc.FindLowStock(ctx, 15)
	require.NoError(t, err)
	assert.Empty(t, low)
}

func TestUpdateByItemAndCategoryPatchesPricesOnly(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(3.10)
	newCompany := "Beximco Pharmaceuticals"
	updated, err := svc.UpdateByItemAndCategory(ctx, "Napa", "Tablet", &UpdateStockInput{
		SellPrice:   &newPrice,
		CompanyName: &newCompany,
	})
	require.NoError(t, err)

	assert.True(t, updated.SellPrice.Equal(newPrice))
	assert.Equal(t, newCompany, updated.CompanyName)
	assert.Equal(t, 50, updated.Quantity)
}

func TestDeleteByItemAndCategory(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByItemAndCategory(ctx, "Napa", "Tablet"))

	_, err = svc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	assert.Error(t, err)

	err = svc.DeleteByItemAndCategory(ctx, "Napa", "Tablet")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetTodayReceives(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)

	items, err := svc.GetTodayReceives(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListStockFiltersAndPaginates(t *testing.T) {
	svc, _ := newInventoryService(t)
	ctx := context.Background()

	_, err := svc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)
	_, err = svc.Receive(ctx, receiveInput("Seclo", "Capsule", 30))
	require.NoError(t, err)

	result, err := svc.ListStock(ctx, &repository.StockFilterParams{
		Pagination: pagination.DefaultPagination(),
		Category:   "Tablet",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Pagination.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Napa", result.Items[0].ItemName)
}
