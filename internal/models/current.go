package models

import (
	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
)

// CurrentAccount may run a negative balance down to -overdraftLimit.
type CurrentAccount struct {
	baseAccount
	overdraftLimit decimal.Decimal
	overdraftFee   decimal.Decimal
}

func NewCurrentAccount(owner *Customer, overdraftLimit, overdraftFee decimal.Decimal) (*CurrentAccount, error) {
	base, err := newBaseAccount(KindCurrent, owner)
	if err != nil {
		return nil, err
	}
	if overdraftLimit.IsNegative() {
		return nil, errs.NewValidationError("overdraft limit cannot be negative")
	}
	if overdraftFee.IsNegative() {
		return nil, errs.NewValidationError("overdraft fee cannot be negative")
	}
	return &CurrentAccount{
		baseAccount:    base,
		overdraftLimit: overdraftLimit,
		overdraftFee:   overdraftFee,
	}, nil
}

// RestoreCurrentAccount rebuilds a persisted current account with its
// stored number and balance.
func RestoreCurrentAccount(owner *Customer, number string, balance, overdraftLimit, overdraftFee decimal.Decimal) (*CurrentAccount, error) {
	a, err := NewCurrentAccount(owner, overdraftLimit, overdraftFee)
	if err != nil {
		return nil, err
	}
	a.number = number
	a.balance = balance
	return a, nil
}

func (a *CurrentAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }
func (a *CurrentAccount) OverdraftFee() decimal.Decimal   { return a.overdraftFee }

func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValidationError("withdrawal amount must be greater than zero")
	}
	if a.balance.Sub(amount).LessThan(a.overdraftLimit.Neg()) {
		return errs.NewInsufficientBalanceError("insufficient balance")
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *CurrentAccount) Transfer(target Account, amount decimal.Decimal) error {
	return transfer(a, target, amount)
}

// ApplyOverdraftFee charges the overdraft fee on a negative balance,
// clamped so the balance never passes -overdraftLimit. No-op while the
// balance is non-negative.
func (a *CurrentAccount) ApplyOverdraftFee() {
	if !a.balance.IsNegative() {
		return
	}
	fee := a.overdraftFee
	floor := a.overdraftLimit.Neg()
	if a.balance.Sub(fee).LessThan(floor) {
		fee = a.balance.Sub(floor)
	}
	a.balance = a.balance.Sub(fee)
}

// Maintain verifies the balance has not breached the overdraft floor.
func (a *CurrentAccount) Maintain() error {
	if a.balance.LessThan(a.overdraftLimit.Neg()) {
		return errs.NewValidationError("exceeds overdraft limit")
	}
	return nil
}
