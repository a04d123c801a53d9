package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	infraRepo "github.com/pharmacore/pms-api/internal/infrastructure/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newSaleFixture(t *testing.T) (*SaleService, *InventoryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	stockRepo := infraRepo.NewStockRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	return NewSaleService(db, stockRepo, invoiceRepo, zap.NewNop()),
		NewInventoryService(db, stockRepo),
		db
}

func saleLine(item, category string, qty int) SaleLineInput {
	price := decimal.NewFromFloat(2.00)
	total := price.Mul(decimal.NewFromInt(int64(qty)))
	return SaleLineInput{
		ItemName:   item,
		Category:   category,
		Quantity:   qty,
		UnitPrice:  price,
		SubTotal:   total,
		Amount:     total,
		NetPayable: total,
	}
}

func todayPrefix() string {
	return "INV-" + time.Now().Format("20060102")
}

func TestRecordSaleDecrementsStock(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	items, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Rahim Uddin",
		Lines:        []SaleLineInput{saleLine("Napa", "Tablet", 30)},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, todayPrefix()+"-0001", items[0].InvoiceNo)

	stock, err := invSvc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 70, stock.Quantity)
}

func TestRecordSaleInsufficientStockAborts(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	_, err = saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 30)},
	})
	require.NoError(t, err)

	// 70 left, asking for 80 must fail without touching the ledger.
	_, err = saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 80)},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "70 available")

	stock, err := invSvc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 70, stock.Quantity)
}

func TestRecordSaleUnknownItemIsOutOfStock(t *testing.T) {
	saleSvc, _, _ := newSaleFixture(t)

	_, err := saleSvc.RecordSale(context.Background(), &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Ghost", "Tablet", 1)},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRecordSaleBatchIsAtomic(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)
	_, err = invSvc.Receive(ctx, receiveInput("Seclo", "Capsule", 5))
	require.NoError(t, err)
	_, err = invSvc.Receive(ctx, receiveInput("Monas", "Tablet", 100))
	require.NoError(t, err)

	// The middle line is short, so the whole batch rolls back.
	_, err = saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{
			saleLine("Napa", "Tablet", 10),
			saleLine("Seclo", "Capsule", 20),
			saleLine("Monas", "Tablet", 10),
		},
	})
	require.Error(t, err)

	napa, err := invSvc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 100, napa.Quantity)

	seclo, err := invSvc.GetByItemAndCategory(ctx, "Seclo", "Capsule")
	require.NoError(t, err)
	assert.Equal(t, 5, seclo.Quantity)

	// No invoice rows either, and the failed batch's number is reused.
	items, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, todayPrefix()+"-0001", items[0].InvoiceNo)
}

func TestRecordSaleBatchSharesOneInvoiceNo(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)
	_, err = invSvc.Receive(ctx, receiveInput("Seclo", "Capsule", 100))
	require.NoError(t, err)

	items, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{
			saleLine("Napa", "Tablet", 10),
			saleLine("Seclo", "Capsule", 5),
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, items[0].InvoiceNo, items[1].InvoiceNo)
}

func TestInvoiceNumbersIncrementPerBatch(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		items, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
			Lines: []SaleLineInput{saleLine("Napa", "Tablet", 1)},
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s-%04d", todayPrefix(), i), items[0].InvoiceNo)
	}
}

func TestConcurrentSalesGetDistinctNumbersAndNeverOversell(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 50))
	require.NoError(t, err)

	const workers = 10
	var mu sync.Mutex
	numbers := make(map[string]bool)
	failures := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
				Lines: []SaleLineInput{saleLine("Napa", "Tablet", 10)},
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				return
			}
			numbers[items[0].InvoiceNo] = true
		}()
	}
	wg.Wait()

	// 50 units cover exactly 5 sales of 10; the rest must fail cleanly.
	assert.Len(t, numbers, 5)
	assert.Equal(t, 5, failures)

	stock, err := invSvc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 0, stock.Quantity)
}

func TestGetByInvoiceNo(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	created, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 10)},
	})
	require.NoError(t, err)

	items, err := saleSvc.GetByInvoiceNo(ctx, created[0].InvoiceNo)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = saleSvc.GetByInvoiceNo(ctx, "INV-19700101-0001")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateByInvoiceNoDoesNotTouchStock(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	created, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		CustomerName: "Rahim Uddin",
		Lines:        []SaleLineInput{saleLine("Napa", "Tablet", 10)},
	})
	require.NoError(t, err)

	newName := "Karim Mia"
	updated, err := saleSvc.UpdateByInvoiceNo(ctx, created[0].InvoiceNo, &UpdateInvoiceInput{
		CustomerName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Karim Mia", updated[0].CustomerName)

	stock, err := invSvc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 90, stock.Quantity)
}

func TestDeleteByInvoiceNoKeepsSequenceSlot(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	first, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 10)},
	})
	require.NoError(t, err)

	require.NoError(t, saleSvc.DeleteByInvoiceNo(ctx, first[0].InvoiceNo))

	// Stock stays consumed and the deleted number is never reissued.
	stock, err := invSvc.GetByItemAndCategory(ctx, "Napa", "Tablet")
	require.NoError(t, err)
	assert.Equal(t, 90, stock.Quantity)

	second, err := saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 10)},
	})
	require.NoError(t, err)
	assert.Equal(t, todayPrefix()+"-0002", second[0].InvoiceNo)

	err = saleSvc.DeleteByInvoiceNo(ctx, first[0].InvoiceNo)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetTodaySales(t *testing.T) {
	saleSvc, invSvc, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := invSvc.Receive(ctx, receiveInput("Napa", "Tablet", 100))
	require.NoError(t, err)

	_, err = saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 10)},
	})
	require.NoError(t, err)

	items, err := saleSvc.GetTodaySales(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRecordSaleRejectsEmptyAndNonPositive(t *testing.T) {
	saleSvc, _, _ := newSaleFixture(t)
	ctx := context.Background()

	_, err := saleSvc.RecordSale(ctx, &RecordSaleInput{})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = saleSvc.RecordSale(ctx, &RecordSaleInput{
		Lines: []SaleLineInput{saleLine("Napa", "Tablet", 0)},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
