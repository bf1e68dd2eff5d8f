package services

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
	"github.com/toybank/ledger/internal/models"
)

type transactionJournal interface {
	Append(tx models.Transaction) error
	ReadAll() ([]models.Transaction, error)
}

// Bank is the in-memory registry of customers, tellers, accounts and
// ATMs. The four collections are independent; no cross-collection
// integrity is enforced. Money movement through the bank journals each
// successful operation.
type Bank struct {
	name      string
	log       *slog.Logger
	journal   transactionJournal
	customers []*models.Customer
	tellers   []*Teller
	accounts  []models.Account
	atms      []*ATM
}

func NewBank(name string, log *slog.Logger, journal transactionJournal) *Bank {
	return &Bank{
		name:    name,
		log:     log,
		journal: journal,
	}
}

func (b *Bank) Name() string { return b.name }

func (b *Bank) AddCustomer(customer *models.Customer) error {
	if customer == nil {
		return errs.NewValidationError("customer cannot be nil")
	}
	b.customers = append(b.customers, customer)
	return nil
}

// RemoveCustomer drops the customer if present. The customer's accounts
// stay registered; removal does not cascade.
func (b *Bank) RemoveCustomer(customer *models.Customer) {
	if customer == nil {
		return
	}
	for i, c := range b.customers {
		if c.ID() == customer.ID() {
			b.customers = append(b.customers[:i], b.customers[i+1:]...)
			return
		}
	}
}

// CustomerLookup scans the customer collection for the given ID.
func (b *Bank) CustomerLookup(customerID string) (*models.Customer, error) {
	for _, c := range b.customers {
		if c.ID() == customerID {
			return c, nil
		}
	}
	return nil, errs.NewNotFoundError("customer with ID " + customerID + " not found")
}

func (b *Bank) Customers() []*models.Customer {
	out := make([]*models.Customer, len(b.customers))
	copy(out, b.customers)
	return out
}

func (b *Bank) AddTeller(teller *Teller) error {
	if teller == nil {
		return errs.NewValidationError("teller cannot be nil")
	}
	b.tellers = append(b.tellers, teller)
	return nil
}

func (b *Bank) RemoveTeller(teller *Teller) {
	if teller == nil {
		return
	}
	for i, t := range b.tellers {
		if t.ID() == teller.ID() {
			b.tellers = append(b.tellers[:i], b.tellers[i+1:]...)
			return
		}
	}
}

func (b *Bank) Tellers() []*Teller {
	out := make([]*Teller, len(b.tellers))
	copy(out, b.tellers)
	return out
}

func (b *Bank) AddAccount(account models.Account) error {
	if account == nil {
		return errs.NewValidationError("account cannot be nil")
	}
	b.accounts = append(b.accounts, account)
	return nil
}

func (b *Bank) RemoveAccount(account models.Account) {
	if account == nil {
		return
	}
	for i, a := range b.accounts {
		if a.Number() == account.Number() {
			b.accounts = append(b.accounts[:i], b.accounts[i+1:]...)
			return
		}
	}
}

// AccountLookup scans the account collection for the given number.
func (b *Bank) AccountLookup(number string) (models.Account, error) {
	for _, a := range b.accounts {
		if a.Number() == number {
			return a, nil
		}
	}
	return nil, errs.NewNotFoundError("account with number " + number + " not found")
}

func (b *Bank) Accounts() []models.Account {
	out := make([]models.Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

func (b *Bank) AddATM(atm *ATM) error {
	if atm == nil {
		return errs.NewValidationError("ATM cannot be nil")
	}
	b.atms = append(b.atms, atm)
	return nil
}

func (b *Bank) RemoveATM(atm *ATM) {
	if atm == nil {
		return
	}
	for i, a := range b.atms {
		if a.ID() == atm.ID() {
			b.atms = append(b.atms[:i], b.atms[i+1:]...)
			return
		}
	}
}

func (b *Bank) ATMs() []*ATM {
	out := make([]*ATM, len(b.atms))
	copy(out, b.atms)
	return out
}

func (b *Bank) Deposit(customer *models.Customer, account models.Account, amount decimal.Decimal) error {
	if customer == nil || account == nil {
		return errs.NewValidationError("customer or account cannot be nil")
	}
	if err := account.Deposit(amount); err != nil {
		return err
	}
	journalTransaction(b.log, b.journal, customer.ID(), account.Number(), models.TxDeposit, amount)
	b.notifySpecialTier(account)
	return nil
}

func (b *Bank) Withdraw(customer *models.Customer, account models.Account, amount decimal.Decimal) error {
	if customer == nil || account == nil {
		return errs.NewValidationError("customer or account cannot be nil")
	}
	if err := account.Withdraw(amount); err != nil {
		return err
	}
	journalTransaction(b.log, b.journal, customer.ID(), account.Number(), models.TxWithdrawal, amount)
	return nil
}

// Transfer debits the source and credits the target, then journals one
// record attributed to the source account.
func (b *Bank) Transfer(customer *models.Customer, source, target models.Account, amount decimal.Decimal) error {
	if customer == nil || source == nil || target == nil {
		return errs.NewValidationError("customer or account cannot be nil")
	}
	if err := source.Transfer(target, amount); err != nil {
		return err
	}
	journalTransaction(b.log, b.journal, customer.ID(), source.Number(), models.TxTransfer, amount)
	b.notifySpecialTier(target)
	return nil
}

func (b *Bank) BalanceOf(account models.Account) (decimal.Decimal, error) {
	if account == nil {
		return decimal.Zero, errs.NewValidationError("account cannot be nil")
	}
	return account.Balance(), nil
}

// TransactionHistory replays the full journal.
func (b *Bank) TransactionHistory() ([]models.Transaction, error) {
	return b.journal.ReadAll()
}

func (b *Bank) notifySpecialTier(account models.Account) {
	if savings, ok := account.(*models.SavingsAccount); ok && savings.SpecialTier() {
		b.log.Info("savings balance reached the special tier", "account", savings.Number())
	}
}

// journalTransaction constructs and appends one record. Append failures
// leave the in-memory state authoritative and are only logged; the
// durable copy goes stale rather than failing the operation.
func journalTransaction(log *slog.Logger, journal transactionJournal, customerID, accountNumber, kind string, amount decimal.Decimal) {
	tx, err := models.NewTransaction(customerID, accountNumber, kind, amount)
	if err != nil {
		log.Error("could not build transaction record", "error", err)
		return
	}
	if err := journal.Append(tx); err != nil {
		log.Error("could not append transaction to journal", "error", err)
	}
}
