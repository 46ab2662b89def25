package partner

import (
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtTransactionType represents the direction of a debt transaction
type DebtTransactionType string

const (
	// DebtTransactionTypeBorrow increases the customer's debt (credit sale or cash borrow)
	DebtTransactionTypeBorrow DebtTransactionType = "BORROW"
	// DebtTransactionTypePayment decreases the customer's debt
	DebtTransactionTypePayment DebtTransactionType = "PAYMENT"
)

// String returns the string representation of DebtTransactionType
func (t DebtTransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is valid
func (t DebtTransactionType) IsValid() bool {
	switch t {
	case DebtTransactionTypeBorrow, DebtTransactionTypePayment:
		return true
	}
	return false
}

// SignedAmount returns the amount with the sign the type applies to the balance
func (t DebtTransactionType) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == DebtTransactionTypePayment {
		return amount.Neg()
	}
	return amount
}

// DebtTransaction is an immutable record of one change to a customer's debt
// balance. Corrections are made with new transactions, never edits; the
// customer's balance must always equal the signed sum of these records.
type DebtTransaction struct {
	shared.BaseEntity
	TenantID        uuid.UUID           `gorm:"type:uuid;not null;index:idx_debt_tx_tenant_time,priority:1"`
	CustomerID      uuid.UUID           `gorm:"type:uuid;not null;index:idx_debt_tx_customer"`
	Type            DebtTransactionType `gorm:"type:varchar(10);not null"`
	Amount          decimal.Decimal     `gorm:"type:decimal(18,4);not null"` // Always positive, direction from Type
	BalanceBefore   decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	BalanceAfter    decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	ProductID       *uuid.UUID          `gorm:"type:uuid"` // Set when the debt came from goods
	Quantity        *decimal.Decimal    `gorm:"type:decimal(18,4)"`
	SaleID          *uuid.UUID          `gorm:"type:uuid;index"`
	Note            string              `gorm:"type:varchar(255)"`
	OperatorID      *uuid.UUID          `gorm:"type:uuid"`
	TransactionDate time.Time           `gorm:"type:timestamptz;not null;index:idx_debt_tx_tenant_time,priority:2"`
}

// TableName returns the table name for GORM
func (DebtTransaction) TableName() string {
	return "debt_transactions"
}

// NewDebtTransaction creates a debt transaction. The before/after balances
// must be consistent with the type's direction.
func NewDebtTransaction(
	tenantID, customerID uuid.UUID,
	txType DebtTransactionType,
	amount, balanceBefore, balanceAfter decimal.Decimal,
) (*DebtTransaction, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Tenant ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Customer ID cannot be empty")
	}
	if !txType.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("Invalid debt transaction type: %s", txType)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Transaction amount must be positive")
	}
	if !balanceBefore.Add(txType.SignedAmount(amount)).Equal(balanceAfter) {
		return nil, shared.ErrInvalidInput.WithMessage("Balance before/after does not match the transaction amount")
	}
	if balanceAfter.IsNegative() {
		return nil, shared.ErrOverpayment.WithMessage("Transaction would leave the debt balance negative")
	}

	return &DebtTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		TenantID:        tenantID,
		CustomerID:      customerID,
		Type:            txType,
		Amount:          amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		TransactionDate: time.Now(),
	}, nil
}

// WithProduct links the transaction to the goods that created the debt
func (t *DebtTransaction) WithProduct(productID uuid.UUID, quantity decimal.Decimal) *DebtTransaction {
	t.ProductID = &productID
	t.Quantity = &quantity
	return t
}

// WithSaleID links the transaction to the sale it settles or records
func (t *DebtTransaction) WithSaleID(saleID uuid.UUID) *DebtTransaction {
	t.SaleID = &saleID
	return t
}

// WithNote sets a descriptive note
func (t *DebtTransaction) WithNote(note string) *DebtTransaction {
	t.Note = note
	return t
}

// WithOperatorID records who performed the transaction
func (t *DebtTransaction) WithOperatorID(operatorID uuid.UUID) *DebtTransaction {
	t.OperatorID = &operatorID
	return t
}

// SignedSum reduces a transaction list to the balance it implies.
// Used by reconciliation checks.
func SignedSum(transactions []DebtTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Type.SignedAmount(tx.Amount))
	}
	return total
}
