package models

import (
	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
)

// Transaction kinds produced by the ledger.
const (
	TxDeposit    = "Deposit"
	TxWithdrawal = "Withdrawal"
	TxTransfer   = "Transfer"
)

// Transaction is an immutable record of one successful money movement.
// It references customer and account by identifier only.
type Transaction struct {
	customerID    string
	accountNumber string
	kind          string
	amount        decimal.Decimal
}

func NewTransaction(customerID, accountNumber, kind string, amount decimal.Decimal) (Transaction, error) {
	if customerID == "" {
		return Transaction{}, errs.NewValidationError("customer ID cannot be empty")
	}
	if accountNumber == "" {
		return Transaction{}, errs.NewValidationError("account number cannot be empty")
	}
	if kind == "" {
		return Transaction{}, errs.NewValidationError("transaction type cannot be empty")
	}
	if !amount.IsPositive() {
		return Transaction{}, errs.NewValidationError("amount must be greater than zero")
	}
	return Transaction{
		customerID:    customerID,
		accountNumber: accountNumber,
		kind:          kind,
		amount:        amount,
	}, nil
}

func (t Transaction) CustomerID() string      { return t.customerID }
func (t Transaction) AccountNumber() string   { return t.accountNumber }
func (t Transaction) Kind() string            { return t.kind }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
