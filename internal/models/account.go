package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
)

// Account kind discriminators. They also appear verbatim in the
// persisted account file, so they must not change.
const (
	KindSavings = "Savings"
	KindCurrent = "Current"
)

// Account is a single bank account. The balance is only ever mutated
// through Deposit, Withdraw and Transfer; each variant enforces its own
// withdrawal floor.
type Account interface {
	Number() string
	Kind() string
	Balance() decimal.Decimal
	CustomerID() string
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Transfer(target Account, amount decimal.Decimal) error
	Maintain() error
}

type baseAccount struct {
	number     string
	balance    decimal.Decimal
	kind       string
	customerID string
}

func newBaseAccount(kind string, owner *Customer) (baseAccount, error) {
	if owner == nil {
		return baseAccount{}, errs.NewValidationError("customer cannot be nil")
	}
	return baseAccount{
		number:     uuid.NewString(),
		balance:    decimal.Zero,
		kind:       kind,
		customerID: owner.ID(),
	}, nil
}

func (a *baseAccount) Number() string           { return a.number }
func (a *baseAccount) Kind() string             { return a.kind }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }
func (a *baseAccount) CustomerID() string       { return a.customerID }

func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValidationError("deposit amount must be greater than zero")
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// transfer debits the source in full before crediting the target. Both
// legs happen in memory; durable state is only written afterwards.
func transfer(source, target Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValidationError("transfer amount must be greater than zero")
	}
	if target == nil {
		return errs.NewValidationError("target account cannot be nil")
	}
	if err := source.Withdraw(amount); err != nil {
		return err
	}
	return target.Deposit(amount)
}
