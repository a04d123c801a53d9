package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pharmacore/pms-api/internal/application/service"
	"github.com/pharmacore/pms-api/internal/domain/repository"
	"github.com/pharmacore/pms-api/internal/presentation/http/dto/request"
	"github.com/pharmacore/pms-api/internal/presentation/http/dto/response"
	"github.com/pharmacore/pms-api/pkg/pagination"
)

// InventoryHandler handles stock-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Receive handles a stock receipt
func (h *InventoryHandler) Receive(c *gin.Context) {
	var req request.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.Receive(c.Request.Context(), &service.ReceiveStockInput{
		CompanyName:         req.CompanyName,
		ItemName:            req.ItemName,
		Category:            req.Category,
		Generic:             req.Generic,
		Quantity:            req.Quantity,
		UnitPrice:           req.UnitPrice,
		PurchaseDiscount:    req.PurchaseDiscount,
		NetPurchasePrice:    req.NetPurchasePrice,
		SellPrice:           req.SellPrice,
		TotalInventoryValue: req.TotalInventoryValue,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock received successfully", item)
}

// List handles listing stock lines
func (h *InventoryHandler) List(c *gin.Context) {
	var filter request.StockFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.inventoryService.ListStock(c.Request.Context(), &repository.StockFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock retrieved successfully", result)
}

// Search handles case-insensitive item name search
func (h *InventoryHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "Query parameter 'name' is required")
		return
	}

	items, err := h.inventoryService.SearchByName(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock retrieved successfully", items)
}

// Get handles getting a single stock line by item name and category
func (h *InventoryHandler) Get(c *gin.Context) {
	itemName := c.Param("item")
	category := c.Param("category")

	item, err := h.inventoryService.GetByItemAndCategory(c.Request.Context(), itemName, category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock item retrieved successfully", item)
}

// Update handles patching a stock line's descriptive fields
func (h *InventoryHandler) Update(c *gin.Context) {
	itemName := c.Param("item")
	category := c.Param("category")

	var req request.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.inventoryService.UpdateByItemAndCategory(c.Request.Context(), itemName, category, &service.UpdateStockInput{
		CompanyName:      req.CompanyName,
		Generic:          req.Generic,
		UnitPrice:        req.UnitPrice,
		PurchaseDiscount: req.PurchaseDiscount,
		NetPurchasePrice: req.NetPurchasePrice,
		SellPrice:        req.SellPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock item updated successfully", item)
}

// Delete handles removing a stock line. Admin-only route.
func (h *InventoryHandler) Delete(c *gin.Context) {
	itemName := c.Param("item")
	category := c.Param("category")

	if err := h.inventoryService.DeleteByItemAndCategory(c.Request.Context(), itemName, category); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetLowStock handles listing lines below the threshold
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.Query("threshold"))

	items, err := h.inventoryService.FindLowStock(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// GetSufficientStock handles listing lines at or above the threshold
func (h *InventoryHandler) GetSufficientStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.Query("threshold"))

	items, err := h.inventoryService.FindSufficientStock(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sufficient stock items retrieved successfully", items)
}

// GetTodayReceives handles listing today's stock receipts
func (h *InventoryHandler) GetTodayReceives(c *gin.Context) {
	items, err := h.inventoryService.GetTodayReceives(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's receipts retrieved successfully", items)
}
