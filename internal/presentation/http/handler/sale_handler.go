package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pharmacore/pms-api/internal/application/service"
	"github.com/pharmacore/pms-api/internal/domain/repository"
	"github.com/pharmacore/pms-api/internal/presentation/http/dto/request"
	"github.com/pharmacore/pms-api/internal/presentation/http/dto/response"
	"github.com/pharmacore/pms-api/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles recording a sale batch
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, service.SaleLineInput{
			ItemName:       item.ItemName,
			Category:       item.Category,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			SubTotal:       item.SubTotal,
			Amount:         item.Amount,
			Discount:       item.Discount,
			DiscountAmount: item.DiscountAmount,
			NetPayable:     item.NetPayable,
		})
	}

	items, err := h.saleService.RecordSale(c.Request.Context(), &service.RecordSaleInput{
		CustomerName:  req.CustomerName,
		ContactNumber: req.ContactNumber,
		Lines:         lines,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", gin.H{
		"invoice_no": items[0].InvoiceNo,
		"items":      items,
	})
}

// List handles listing invoice lines
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.InvoiceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.StartDate != "" {
		if start, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			params.EndDate = &end
		}
	}

	result, err := h.saleService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles getting all lines of one invoice
func (h *SaleHandler) Get(c *gin.Context) {
	invoiceNo := c.Param("invoice_no")

	items, err := h.saleService.GetByInvoiceNo(c.Request.Context(), invoiceNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", items)
}

// GetToday handles listing today's sales
func (h *SaleHandler) GetToday(c *gin.Context) {
	items, err := h.saleService.GetTodaySales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's sales retrieved successfully", items)
}

// Update handles patching every line of an invoice
func (h *SaleHandler) Update(c *gin.Context) {
	invoiceNo := c.Param("invoice_no")

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items, err := h.saleService.UpdateByInvoiceNo(c.Request.Context(), invoiceNo, &service.UpdateInvoiceInput{
		CustomerName:  req.CustomerName,
		ContactNumber: req.ContactNumber,
		Discount:      req.Discount,
		NetPayable:    req.NetPayable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", items)
}

// Delete handles removing an invoice. Admin-only route.
func (h *SaleHandler) Delete(c *gin.Context) {
	invoiceNo := c.Param("invoice_no")

	if err := h.saleService.DeleteByInvoiceNo(c.Request.Context(), invoiceNo); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
