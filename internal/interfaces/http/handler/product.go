package handler

import (
	appinv "github.com/agrostock/backend/internal/application/inventory"
	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/interfaces/http/dto"
	"github.com/agrostock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductHandler exposes the product catalog over HTTP
type ProductHandler struct {
	BaseHandler
	service *appinv.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *appinv.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers product routes on the given group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/inventory/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// Create registers a new product
func (h *ProductHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), tenantID, appinv.CreateProductInput{
		SKU:               req.SKU,
		Name:              req.Name,
		Unit:              req.Unit,
		UnitPrice:         decimal.NewFromFloat(req.UnitPrice),
		LowStockThreshold: optionalDecimal(req.LowStockThreshold),
		CriticalThreshold: optionalDecimal(req.CriticalThreshold),
		AllocationPolicy:  inventory.AllocationPolicy(req.AllocationPolicy),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get returns a product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.service.Get(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List returns the tenant's products
func (h *ProductHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update adjusts a product's thresholds and allocation policy
func (h *ProductHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.service.Update(c.Request.Context(), tenantID, appinv.UpdateProductInput{
		ProductID:         productID,
		LowStockThreshold: optionalDecimal(req.LowStockThreshold),
		CriticalThreshold: optionalDecimal(req.CriticalThreshold),
		AllocationPolicy:  inventory.AllocationPolicy(req.AllocationPolicy),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product that holds no remaining batch stock
func (h *ProductHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// optionalDecimal converts an optional float into an optional decimal
func optionalDecimal(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}
