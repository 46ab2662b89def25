package handler

import (
	appinv "github.com/agrostock/backend/internal/application/inventory"
	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/interfaces/http/dto"
	"github.com/agrostock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InventoryHandler exposes the sale, replenishment, stock movement, and alert
// operations over HTTP
type InventoryHandler struct {
	BaseHandler
	service *appinv.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *appinv.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers inventory routes on the given group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/inventory/products")
	{
		products.POST("/:id/sell", h.Sell)
		products.POST("/:id/replenish", h.Replenish)
		products.POST("/:id/stock", h.UpdateStock)
		products.GET("/:id/status", h.GetStatus)
		products.GET("/:id/reorder-suggestion", h.SuggestReorder)
	}
	alerts := rg.Group("/inventory/alerts")
	{
		alerts.GET("", h.ListAlerts)
		alerts.POST("/:id/resolve", h.ResolveAlert)
	}
}

// Sell sells a quantity of a product, allocating stock per the product's
// allocation policy
func (h *InventoryHandler) Sell(c *gin.Context) {
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

	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	operatorID, err := optionalUUID(req.OperatorID)
	if err != nil {
		h.BadRequest(c, "Invalid operator ID")
		return
	}

	result, err := h.service.Sell(c.Request.Context(), tenantID, appinv.SellRequest{
		ProductID:  productID,
		Quantity:   decimal.NewFromFloat(req.Quantity),
		CustomerID: customerID,
		IsCredit:   req.IsCredit,
		OperatorID: operatorID,
		Reference:  req.Reference,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Replenish adds a new stock batch for a product
func (h *InventoryHandler) Replenish(c *gin.Context) {
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

	var req dto.ReplenishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	operatorID, err := optionalUUID(req.OperatorID)
	if err != nil {
		h.BadRequest(c, "Invalid operator ID")
		return
	}

	result, err := h.service.Replenish(c.Request.Context(), tenantID, appinv.ReplenishRequest{
		ProductID:   productID,
		Quantity:    decimal.NewFromFloat(req.Quantity),
		UnitCost:    decimal.NewFromFloat(req.UnitCost),
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		BatchNumber: req.BatchNumber,
		OperatorID:  operatorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdateStock applies a manual stock movement to a product
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
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

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	operatorID, err := optionalUUID(req.OperatorID)
	if err != nil {
		h.BadRequest(c, "Invalid operator ID")
		return
	}

	var unitCost *decimal.Decimal
	if req.UnitCost != nil {
		cost := decimal.NewFromFloat(*req.UnitCost)
		unitCost = &cost
	}

	result, err := h.service.UpdateStock(c.Request.Context(), tenantID, appinv.UpdateStockRequest{
		ProductID:  productID,
		Action:     inventory.MovementAction(req.Action),
		Quantity:   decimal.NewFromFloat(req.Quantity),
		UnitCost:   unitCost,
		Reference:  req.Reference,
		Note:       req.Note,
		OperatorID: operatorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetStatus returns the product's stock status and classification
func (h *InventoryHandler) GetStatus(c *gin.Context) {
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

	status, err := h.service.GetStatus(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// SuggestReorder returns a replenishment recommendation for the product
func (h *InventoryHandler) SuggestReorder(c *gin.Context) {
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

	suggestion, err := h.service.SuggestReorder(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, suggestion)
}

// ListAlerts returns the tenant's open inventory alerts
func (h *InventoryHandler) ListAlerts(c *gin.Context) {
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
	if alertType := c.Query("type"); alertType != "" {
		filter.Filters["type"] = alertType
	}

	page, err := h.service.ListOpenAlerts(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ResolveAlert marks an alert as resolved, optionally restocking in the same call
func (h *InventoryHandler) ResolveAlert(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	alertID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid alert ID")
		return
	}

	var req dto.ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resolvedBy, err := optionalUUID(req.ResolvedBy)
	if err != nil || resolvedBy == nil {
		h.BadRequest(c, "Invalid resolver ID")
		return
	}

	var restockQuantity, restockUnitCost *decimal.Decimal
	if req.RestockQuantity != nil {
		q := decimal.NewFromFloat(*req.RestockQuantity)
		restockQuantity = &q
	}
	if req.RestockUnitCost != nil {
		cost := decimal.NewFromFloat(*req.RestockUnitCost)
		restockUnitCost = &cost
	}

	err = h.service.ResolveAlert(c.Request.Context(), tenantID, appinv.ResolveAlertRequest{
		AlertID:         alertID,
		ResolvedBy:      *resolvedBy,
		Note:            req.Note,
		RestockQuantity: restockQuantity,
		RestockUnitCost: restockUnitCost,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
