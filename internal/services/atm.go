package services

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
	"github.com/toybank/ledger/internal/models"
)

// ATM is a self-service front door with a physical cash inventory.
// Withdrawals are bounded by the cash on hand; journal records are
// attributed to the account's owning customer.
type ATM struct {
	id       string
	location string
	cash     decimal.Decimal
	log      *slog.Logger
	journal  transactionJournal
}

func NewATM(id, location string, cash decimal.Decimal, log *slog.Logger, journal transactionJournal) (*ATM, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValidationError("ATM ID cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return nil, errs.NewValidationError("location cannot be empty")
	}
	if cash.IsNegative() {
		return nil, errs.NewValidationError("cash available cannot be negative")
	}
	return &ATM{id: id, location: location, cash: cash, log: log, journal: journal}, nil
}

func (m *ATM) ID() string                     { return m.id }
func (m *ATM) Location() string               { return m.location }
func (m *ATM) CashAvailable() decimal.Decimal { return m.cash }

func (m *ATM) Withdraw(account models.Account, amount decimal.Decimal) error {
	if account == nil {
		return errs.NewValidationError("account cannot be nil")
	}
	if !amount.IsPositive() {
		return errs.NewValidationError("amount must be positive")
	}
	if amount.GreaterThan(m.cash) {
		return errs.NewValidationError("ATM does not have enough cash")
	}
	if err := account.Withdraw(amount); err != nil {
		return err
	}
	m.cash = m.cash.Sub(amount)
	journalTransaction(m.log, m.journal, account.CustomerID(), account.Number(), models.TxWithdrawal, amount)
	return nil
}

func (m *ATM) Deposit(account models.Account, amount decimal.Decimal) error {
	if account == nil {
		return errs.NewValidationError("account cannot be nil")
	}
	if !amount.IsPositive() {
		return errs.NewValidationError("amount must be positive")
	}
	if err := account.Deposit(amount); err != nil {
		return err
	}
	m.cash = m.cash.Add(amount)
	journalTransaction(m.log, m.journal, account.CustomerID(), account.Number(), models.TxDeposit, amount)
	return nil
}

// Transfer moves money between two accounts without touching the cash
// inventory; the record is attributed to the source account.
func (m *ATM) Transfer(source, target models.Account, amount decimal.Decimal) error {
	if source == nil || target == nil {
		return errs.NewValidationError("account cannot be nil")
	}
	if !amount.IsPositive() {
		return errs.NewValidationError("amount must be positive")
	}
	if err := source.Transfer(target, amount); err != nil {
		return err
	}
	journalTransaction(m.log, m.journal, source.CustomerID(), source.Number(), models.TxTransfer, amount)
	return nil
}

func (m *ATM) Replenish(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValidationError("amount must be positive")
	}
	m.cash = m.cash.Add(amount)
	return nil
}

func (m *ATM) CheckBalance(account models.Account) (decimal.Decimal, error) {
	if account == nil {
		return decimal.Zero, errs.NewValidationError("account cannot be nil")
	}
	return account.Balance(), nil
}
