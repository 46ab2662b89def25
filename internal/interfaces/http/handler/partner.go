package handler

import (
	apppartner "github.com/agrostock/backend/internal/application/partner"
	"github.com/agrostock/backend/internal/interfaces/http/dto"
	"github.com/agrostock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PartnerHandler exposes the customer registry and credit ledger over HTTP
type PartnerHandler struct {
	BaseHandler
	customers *apppartner.CustomerService
	credit    *apppartner.CreditService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(customers *apppartner.CustomerService, credit *apppartner.CreditService) *PartnerHandler {
	return &PartnerHandler{
		customers: customers,
		credit:    credit,
	}
}

// RegisterRoutes registers customer and credit routes on the given group
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("/:id/debts/pay", h.PayDebt)
		customers.POST("/:id/debts/borrow", h.Borrow)
		customers.GET("/:id/debts/statement", h.GetStatement)
	}
}

// CreateCustomer registers a new customer
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), tenantID, req.Name, req.Phone)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// GetCustomer returns a customer by ID
func (h *PartnerHandler) GetCustomer(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	customerID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), tenantID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// ListCustomers returns the tenant's customers
func (h *PartnerHandler) ListCustomers(c *gin.Context) {
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
	if c.Query("has_debt") == "true" {
		filter.Filters["has_debt"] = true
	}

	page, err := h.customers.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// PayDebt records a payment against the customer's outstanding debt
func (h *PartnerHandler) PayDebt(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	customerID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req dto.PayDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	operatorID, err := optionalUUID(req.OperatorID)
	if err != nil {
		h.BadRequest(c, "Invalid operator ID")
		return
	}

	result, err := h.credit.PayDebt(c.Request.Context(), tenantID, customerID,
		decimal.NewFromFloat(req.Amount), operatorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Borrow records a credit purchase or a direct cash borrow
func (h *PartnerHandler) Borrow(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	customerID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req dto.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	operatorID, err := optionalUUID(req.OperatorID)
	if err != nil {
		h.BadRequest(c, "Invalid operator ID")
		return
	}

	productID, err := optionalUUID(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if productID != nil {
		if req.Quantity <= 0 {
			h.BadRequest(c, "Quantity is required for a credit purchase")
			return
		}
		result, err := h.credit.Borrow(c.Request.Context(), tenantID, customerID, *productID,
			decimal.NewFromFloat(req.Quantity), operatorID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, result)
		return
	}

	if req.Amount <= 0 {
		h.BadRequest(c, "Either product_id with quantity or a positive amount is required")
		return
	}
	line, err := h.credit.BorrowAmount(c.Request.Context(), tenantID, customerID,
		decimal.NewFromFloat(req.Amount), req.Note, operatorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, line)
}

// GetStatement returns the customer's debt ledger with the reconciliation check
func (h *PartnerHandler) GetStatement(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Missing tenant context")
		return
	}
	customerID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	statement, err := h.credit.GetStatement(c.Request.Context(), tenantID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, statement)
}
