package models

import (
	"strings"

	"github.com/toybank/ledger/internal/errs"
)

// Customer owns a list of accounts. Accounts keep only the customer ID
// back-reference; the registry resolves it when needed.
type Customer struct {
	id          string
	name        string
	address     string
	phoneNumber string
	nationalID  string
	accounts    []Account
}

func NewCustomer(id, name, address, phoneNumber, nationalID string) (*Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValidationError("customer ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(address) == "" {
		return nil, errs.NewValidationError("address cannot be empty")
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, errs.NewValidationError("phone number cannot be empty")
	}
	if strings.TrimSpace(nationalID) == "" {
		return nil, errs.NewValidationError("national ID cannot be empty")
	}
	return &Customer{
		id:          id,
		name:        name,
		address:     address,
		phoneNumber: phoneNumber,
		nationalID:  nationalID,
	}, nil
}

func (c *Customer) ID() string          { return c.id }
func (c *Customer) Name() string        { return c.name }
func (c *Customer) Address() string     { return c.address }
func (c *Customer) PhoneNumber() string { return c.phoneNumber }
func (c *Customer) NationalID() string  { return c.nationalID }

func (c *Customer) AddAccount(account Account) error {
	if account == nil {
		return errs.NewValidationError("account cannot be nil")
	}
	c.accounts = append(c.accounts, account)
	return nil
}

// RemoveAccount drops the account with the same number if present.
func (c *Customer) RemoveAccount(account Account) {
	if account == nil {
		return
	}
	for i, a := range c.accounts {
		if a.Number() == account.Number() {
			c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
			return
		}
	}
}

// Accounts returns a copy of the account list.
func (c *Customer) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}
