package models

import (
	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
)

var (
	specialTierThreshold = decimal.NewFromInt(10000)
	hundred              = decimal.NewFromInt(100)
)

// SavingsAccount earns interest and never overdraws.
type SavingsAccount struct {
	baseAccount
	interestRate decimal.Decimal
}

func NewSavingsAccount(owner *Customer, interestRate decimal.Decimal) (*SavingsAccount, error) {
	base, err := newBaseAccount(KindSavings, owner)
	if err != nil {
		return nil, err
	}
	if interestRate.IsNegative() {
		return nil, errs.NewValidationError("interest rate cannot be negative")
	}
	return &SavingsAccount{baseAccount: base, interestRate: interestRate}, nil
}

// RestoreSavingsAccount rebuilds a persisted savings account with its
// stored number and balance.
func RestoreSavingsAccount(owner *Customer, number string, balance, interestRate decimal.Decimal) (*SavingsAccount, error) {
	a, err := NewSavingsAccount(owner, interestRate)
	if err != nil {
		return nil, err
	}
	a.number = number
	a.balance = balance
	return a, nil
}

func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.interestRate }

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValidationError("withdrawal amount must be greater than zero")
	}
	if a.balance.LessThan(amount) {
		return errs.NewInsufficientBalanceError("insufficient balance")
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *SavingsAccount) Transfer(target Account, amount decimal.Decimal) error {
	return transfer(a, target, amount)
}

// Maintain applies one flat interest payment to the balance.
func (a *SavingsAccount) Maintain() error {
	interest := a.balance.Mul(a.interestRate).Div(hundred)
	if interest.IsPositive() {
		return a.Deposit(interest)
	}
	return nil
}

// SpecialTier reports whether the balance has reached the special tier
// threshold. Purely observable; no rule changes above it.
func (a *SavingsAccount) SpecialTier() bool {
	return a.balance.GreaterThanOrEqual(specialTierThreshold)
}
