package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pharmacore/pms-api/internal/application/service"
	"github.com/pharmacore/pms-api/internal/presentation/http/dto/request"
	"github.com/pharmacore/pms-api/internal/presentation/http/dto/response"
)

// ReferenceHandler handles the reference name tables: categories,
// generics, companies and medicines
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

func bindName(c *gin.Context) (string, bool) {
	var req request.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return "", false
	}
	return req.Name, true
}

func bindID(c *gin.Context, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateCategory handles creating a category
func (h *ReferenceHandler) CreateCategory(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}

	category, err := h.referenceService.CreateCategory(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// ListCategories handles listing categories
func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	categories, err := h.referenceService.ListCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// UpdateCategory handles renaming a category
func (h *ReferenceHandler) UpdateCategory(c *gin.Context) {
	id, ok := bindID(c, "category")
	if !ok {
		return
	}
	name, ok := bindName(c)
	if !ok {
		return
	}

	category, err := h.referenceService.UpdateCategory(c.Request.Context(), id, name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *ReferenceHandler) DeleteCategory(c *gin.Context) {
	id, ok := bindID(c, "category")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateGeneric handles creating a generic name
func (h *ReferenceHandler) CreateGeneric(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}

	generic, err := h.referenceService.CreateGeneric(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Generic created successfully", generic)
}

// ListGenerics handles listing generic names
func (h *ReferenceHandler) ListGenerics(c *gin.Context) {
	generics, err := h.referenceService.ListGenerics(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Generics retrieved successfully", generics)
}

// UpdateGeneric handles renaming a generic
func (h *ReferenceHandler) UpdateGeneric(c *gin.Context) {
	id, ok := bindID(c, "generic")
	if !ok {
		return
	}
	name, ok := bindName(c)
	if !ok {
		return
	}

	generic, err := h.referenceService.UpdateGeneric(c.Request.Context(), id, name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Generic updated successfully", generic)
}

// DeleteGeneric handles deleting a generic name
func (h *ReferenceHandler) DeleteGeneric(c *gin.Context) {
	id, ok := bindID(c, "generic")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteGeneric(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateCompany handles creating a company name
func (h *ReferenceHandler) CreateCompany(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}

	company, err := h.referenceService.CreateCompany(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Company created successfully", company)
}

// ListCompanies handles listing company names
func (h *ReferenceHandler) ListCompanies(c *gin.Context) {
	companies, err := h.referenceService.ListCompanies(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Companies retrieved successfully", companies)
}

// UpdateCompany handles renaming a company
func (h *ReferenceHandler) UpdateCompany(c *gin.Context) {
	id, ok := bindID(c, "company")
	if !ok {
		return
	}
	name, ok := bindName(c)
	if !ok {
		return
	}

	company, err := h.referenceService.UpdateCompany(c.Request.Context(), id, name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Company updated successfully", company)
}

// DeleteCompany handles deleting a company name
func (h *ReferenceHandler) DeleteCompany(c *gin.Context) {
	id, ok := bindID(c, "company")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteCompany(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateMedicine handles creating a medicine name
func (h *ReferenceHandler) CreateMedicine(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}

	medicine, err := h.referenceService.CreateMedicine(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Medicine created successfully", medicine)
}

// ListMedicines handles listing medicine names
func (h *ReferenceHandler) ListMedicines(c *gin.Context) {
	medicines, err := h.referenceService.ListMedicines(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Medicines retrieved successfully", medicines)
}

// UpdateMedicine handles renaming a medicine
func (h *ReferenceHandler) UpdateMedicine(c *gin.Context) {
	id, ok := bindID(c, "medicine")
	if !ok {
		return
	}
	name, ok := bindName(c)
	if !ok {
		return
	}

	medicine, err := h.referenceService.UpdateMedicine(c.Request.Context(), id, name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Medicine updated successfully", medicine)
}

// DeleteMedicine handles deleting a medicine name
func (h *ReferenceHandler) DeleteMedicine(c *gin.Context) {
	id, ok := bindID(c, "medicine")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteMedicine(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
