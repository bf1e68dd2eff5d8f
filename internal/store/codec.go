package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
	"github.com/toybank/ledger/internal/models"
)

// Persisted records are headerless comma-joined lines with no quoting.
// Fields containing a comma would corrupt parsing; that matches the
// existing files on disk, so encoding/csv is deliberately not used.

// EncodeTransaction renders one journal line:
// customerID,accountNumber,kind,amount.
func EncodeTransaction(tx models.Transaction) string {
	return strings.Join([]string{
		tx.CustomerID(),
		tx.AccountNumber(),
		tx.Kind(),
		tx.Amount().String(),
	}, ",")
}

// DecodeTransaction parses a journal line. The record must have exactly
// four fields; the result passes transaction construction validation.
func DecodeTransaction(line string) (models.Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return models.Transaction{}, errs.NewMalformedRecordError("transaction record must have exactly four fields")
	}
	amount, err := decimal.NewFromString(parts[3])
	if err != nil {
		return models.Transaction{}, errs.NewMalformedRecordError("transaction amount is not a decimal: " + parts[3])
	}
	return models.NewTransaction(parts[0], parts[1], parts[2], amount)
}

// EncodeAccount renders the base fields
// number,balance,kind,customerID followed by the variant fields:
// interestRate for Savings, overdraftLimit,overdraftFee for Current.
func EncodeAccount(a models.Account) (string, error) {
	base := strings.Join([]string{
		a.Number(),
		a.Balance().String(),
		a.Kind(),
		a.CustomerID(),
	}, ",")
	switch acc := a.(type) {
	case *models.SavingsAccount:
		return base + "," + acc.InterestRate().String(), nil
	case *models.CurrentAccount:
		return base + "," + acc.OverdraftLimit().String() + "," + acc.OverdraftFee().String(), nil
	default:
		return "", errs.NewUnknownAccountTypeError("unknown account type: " + a.Kind())
	}
}

// DecodeAccount parses one account line for the given owner. Variant
// fields are read by positional index past the fixed base width, not by
// trailing-field count.
func DecodeAccount(line string, owner *models.Customer) (models.Account, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil, errs.NewMalformedRecordError("account record must have at least four fields")
	}
	balance, err := decimal.NewFromString(parts[1])
	if err != nil {
		return nil, errs.NewMalformedRecordError("account balance is not a decimal: " + parts[1])
	}

	switch parts[2] {
	case models.KindSavings:
		if len(parts) < 5 {
			return nil, errs.NewMalformedRecordError("savings account record is missing the interest rate")
		}
		rate, err := decimal.NewFromString(parts[4])
		if err != nil {
			return nil, errs.NewMalformedRecordError("interest rate is not a decimal: " + parts[4])
		}
		return models.RestoreSavingsAccount(owner, parts[0], balance, rate)
	case models.KindCurrent:
		if len(parts) < 6 {
			return nil, errs.NewMalformedRecordError("current account record is missing overdraft fields")
		}
		limit, err := decimal.NewFromString(parts[4])
		if err != nil {
			return nil, errs.NewMalformedRecordError("overdraft limit is not a decimal: " + parts[4])
		}
		fee, err := decimal.NewFromString(parts[5])
		if err != nil {
			return nil, errs.NewMalformedRecordError("overdraft fee is not a decimal: " + parts[5])
		}
		return models.RestoreCurrentAccount(owner, parts[0], balance, limit, fee)
	default:
		return nil, errs.NewUnknownAccountTypeError("unknown account type: " + parts[2])
	}
}

// EncodeCustomer renders id,name,address,phone,nationalID,accountIDs
// with the account numbers semicolon-joined (possibly empty).
func EncodeCustomer(c *models.Customer) string {
	accounts := c.Accounts()
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.Number())
	}
	return strings.Join([]string{
		c.ID(),
		c.Name(),
		c.Address(),
		c.PhoneNumber(),
		c.NationalID(),
		strings.Join(ids, ";"),
	}, ",")
}

// DecodeCustomer parses one customer line. The trailing account ID list
// is ignored; accounts are re-attached when the account file loads.
func DecodeCustomer(line string) (*models.Customer, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 6 {
		return nil, errs.NewMalformedRecordError("customer record must have at least six fields")
	}
	return models.NewCustomer(parts[0], parts[1], parts[2], parts[3], parts[4])
}
