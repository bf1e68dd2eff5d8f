package services

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
	"github.com/toybank/ledger/internal/models"
)

// Teller assists customers across the counter. Withdrawals and
// transfers are pre-checked against the visible balance, so a teller
// never takes an account into overdraft.
type Teller struct {
	id       string
	name     string
	branchID string
	log      *slog.Logger
	journal  transactionJournal
}

func NewTeller(id, name, branchID string, log *slog.Logger, journal transactionJournal) (*Teller, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValidationError("teller ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(branchID) == "" {
		return nil, errs.NewValidationError("branch ID cannot be empty")
	}
	return &Teller{id: id, name: name, branchID: branchID, log: log, journal: journal}, nil
}

func (t *Teller) ID() string       { return t.id }
func (t *Teller) Name() string     { return t.name }
func (t *Teller) BranchID() string { return t.branchID }

func (t *Teller) AssistDeposit(customer *models.Customer, account models.Account, amount decimal.Decimal) error {
	if customer == nil || account == nil {
		return errs.NewValidationError("customer or account cannot be nil")
	}
	if err := account.Deposit(amount); err != nil {
		return err
	}
	journalTransaction(t.log, t.journal, customer.ID(), account.Number(), models.TxDeposit, amount)
	return nil
}

func (t *Teller) AssistWithdrawal(customer *models.Customer, account models.Account, amount decimal.Decimal) error {
	if customer == nil || account == nil {
		return errs.NewValidationError("customer or account cannot be nil")
	}
	if !amount.IsPositive() {
		return errs.NewValidationError("amount must be positive")
	}
	if amount.GreaterThan(account.Balance()) {
		return errs.NewInsufficientBalanceError("insufficient balance")
	}
	if err := account.Withdraw(amount); err != nil {
		return err
	}
	journalTransaction(t.log, t.journal, customer.ID(), account.Number(), models.TxWithdrawal, amount)
	return nil
}

func (t *Teller) AssistTransfer(customer *models.Customer, source, target models.Account, amount decimal.Decimal) error {
	if customer == nil || source == nil || target == nil {
		return errs.NewValidationError("customer or account cannot be nil")
	}
	if !amount.IsPositive() {
		return errs.NewValidationError("amount must be positive")
	}
	if amount.GreaterThan(source.Balance()) {
		return errs.NewInsufficientBalanceError("insufficient balance")
	}
	if err := source.Transfer(target, amount); err != nil {
		return err
	}
	journalTransaction(t.log, t.journal, customer.ID(), source.Number(), models.TxTransfer, amount)
	return nil
}
