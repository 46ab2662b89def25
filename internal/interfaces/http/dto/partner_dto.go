package dto

// CreateCustomerRequest is the request body for registering a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=255" example:"Nguyen Van A"`
	Phone string `json:"phone" binding:"max=30" example:"+84901234567"`
}

// PayDebtRequest is the request body for a debt payment
type PayDebtRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0" example:"200.0"`
	OperatorID string  `json:"operator_id" binding:"omitempty,uuid"`
}

// BorrowRequest is the request body for a credit purchase or cash borrow.
// Provide product_id and quantity for a credit sale, or amount for a direct
// cash borrow against the customer's balance.
type BorrowRequest struct {
	ProductID  string  `json:"product_id" binding:"omitempty,uuid"`
	Quantity   float64 `json:"quantity" binding:"omitempty,gt=0" example:"2"`
	Amount     float64 `json:"amount" binding:"omitempty,gt=0" example:"300.0"`
	Note       string  `json:"note" binding:"max=500"`
	OperatorID string  `json:"operator_id" binding:"omitempty,uuid"`
}
