package partner

import (
	"context"

	inventoryapp "github.com/agrostock/backend/internal/application/inventory"
	"github.com/agrostock/backend/internal/domain/partner"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SaleEngine is the port into the sale/allocation engine, used for borrowing
// goods on credit.
type SaleEngine interface {
	Sell(ctx context.Context, tenantID uuid.UUID, req inventoryapp.SellRequest) (*inventoryapp.SellResult, error)
}

// PaymentResult describes a recorded debt payment
type PaymentResult struct {
	TransactionID    uuid.UUID       `json:"transaction_id"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingDebt    decimal.Decimal `json:"remaining_debt"`
	SettledSales     []uuid.UUID     `json:"settled_sales,omitempty"`
	PartiallySettled *uuid.UUID      `json:"partially_settled,omitempty"`
}

// StatementLine is one row of a customer's debt statement
type StatementLine struct {
	TransactionID uuid.UUID                   `json:"transaction_id"`
	Type          partner.DebtTransactionType `json:"type"`
	Amount        decimal.Decimal             `json:"amount"`
	BalanceAfter  decimal.Decimal             `json:"balance_after"`
	Note          string                      `json:"note,omitempty"`
}

// Statement is a customer's debt statement with its reconciliation check
type Statement struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
	Lines      []StatementLine `json:"lines"`
	Reconciled bool            `json:"reconciled"`
}

// CreditService maintains the customer debt ledger: borrows, payments, and
// their append-only transaction trail.
type CreditService struct {
	scope  TransactionScope
	seller SaleEngine
	logger *zap.Logger
}

// NewCreditService creates a new CreditService
func NewCreditService(scope TransactionScope, seller SaleEngine, logger *zap.Logger) *CreditService {
	return &CreditService{
		scope:  scope,
		seller: seller,
		logger: logger,
	}
}

// PayDebt records a payment against the customer's outstanding debt.
//
// Paying more than is owed fails with OVERPAYMENT and leaves the balance
// untouched. The payment settles the customer's unpaid credit sales
// oldest-first until the amount is used up.
func (s *CreditService) PayDebt(ctx context.Context, tenantID, customerID uuid.UUID, amount decimal.Decimal, operatorID *uuid.UUID) (*PaymentResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Payment amount must be positive")
	}

	var result PaymentResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByID(ctx, tenantID, customerID)
		if err != nil {
			return err
		}

		balanceBefore := customer.DebtBalance
		if err := customer.Repay(amount); err != nil {
			return err
		}
		if err := repos.CustomerRepo().SaveWithLock(ctx, customer); err != nil {
			return err
		}

		debtTx, err := partner.NewDebtTransaction(
			tenantID, customerID, partner.DebtTransactionTypePayment,
			amount, balanceBefore, customer.DebtBalance)
		if err != nil {
			return err
		}
		if operatorID != nil {
			debtTx.WithOperatorID(*operatorID)
		}
		if err := repos.DebtRepo().Save(ctx, debtTx); err != nil {
			return err
		}

		// Settle unpaid credit sales oldest-first.
		sales, err := repos.SaleRepo().FindUnpaidByCustomer(ctx, tenantID, customerID)
		if err != nil {
			return err
		}
		remaining := amount
		for i := range sales {
			if remaining.IsZero() {
				break
			}
			sale := &sales[i]
			applied, err := sale.ApplyPayment(remaining)
			if err != nil {
				return err
			}
			if applied.IsZero() {
				continue
			}
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}
			remaining = remaining.Sub(applied)
			if sale.IsPaid {
				result.SettledSales = append(result.SettledSales, sale.ID)
			} else {
				saleID := sale.ID
				result.PartiallySettled = &saleID
			}
		}

		result.TransactionID = debtTx.ID
		result.AmountPaid = amount
		result.RemainingDebt = customer.DebtBalance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Borrow sells goods to the customer on credit through the sale engine
func (s *CreditService) Borrow(ctx context.Context, tenantID, customerID, productID uuid.UUID, quantity decimal.Decimal, operatorID *uuid.UUID) (*inventoryapp.SellResult, error) {
	if s.seller == nil {
		return nil, shared.ErrInvalidInput.WithMessage("Sale engine not configured")
	}
	return s.seller.Sell(ctx, tenantID, inventoryapp.SellRequest{
		ProductID:  productID,
		Quantity:   quantity,
		CustomerID: &customerID,
		IsCredit:   true,
		OperatorID: operatorID,
	})
}

// BorrowAmount records a direct cash borrow against the customer
func (s *CreditService) BorrowAmount(ctx context.Context, tenantID, customerID uuid.UUID, amount decimal.Decimal, note string, operatorID *uuid.UUID) (*StatementLine, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Borrow amount must be positive")
	}

	var line StatementLine
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByID(ctx, tenantID, customerID)
		if err != nil {
			return err
		}

		balanceBefore := customer.DebtBalance
		if err := customer.Borrow(amount); err != nil {
			return err
		}
		if err := repos.CustomerRepo().SaveWithLock(ctx, customer); err != nil {
			return err
		}

		debtTx, err := partner.NewDebtTransaction(
			tenantID, customerID, partner.DebtTransactionTypeBorrow,
			amount, balanceBefore, customer.DebtBalance)
		if err != nil {
			return err
		}
		debtTx.WithNote(note)
		if operatorID != nil {
			debtTx.WithOperatorID(*operatorID)
		}
		if err := repos.DebtRepo().Save(ctx, debtTx); err != nil {
			return err
		}

		line = StatementLine{
			TransactionID: debtTx.ID,
			Type:          debtTx.Type,
			Amount:        debtTx.Amount,
			BalanceAfter:  debtTx.BalanceAfter,
			Note:          debtTx.Note,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// GetStatement returns the customer's debt transactions and verifies the
// reconciliation invariant: balance == Σ(BORROW) − Σ(PAYMENT).
func (s *CreditService) GetStatement(ctx context.Context, tenantID, customerID uuid.UUID) (*Statement, error) {
	var statement Statement
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByID(ctx, tenantID, customerID)
		if err != nil {
			return err
		}
		transactions, err := repos.DebtRepo().FindByCustomer(ctx, tenantID, customerID)
		if err != nil {
			return err
		}

		lines := make([]StatementLine, 0, len(transactions))
		for _, tx := range transactions {
			lines = append(lines, StatementLine{
				TransactionID: tx.ID,
				Type:          tx.Type,
				Amount:        tx.Amount,
				BalanceAfter:  tx.BalanceAfter,
				Note:          tx.Note,
			})
		}

		reconciled := partner.SignedSum(transactions).Equal(customer.DebtBalance)
		if !reconciled {
			s.logger.Error("debt ledger out of reconciliation",
				zap.String("customer_id", customerID.String()),
				zap.String("balance", customer.DebtBalance.String()),
				zap.String("signed_sum", partner.SignedSum(transactions).String()))
		}

		statement = Statement{
			CustomerID: customerID,
			Balance:    customer.DebtBalance,
			Lines:      lines,
			Reconciled: reconciled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &statement, nil
}
