package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/errs"
)

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction("c-1", "acc-1", TxDeposit, d(250))
	if err != nil {
		t.Fatalf("NewTransaction returned error: %v", err)
	}
	if tx.CustomerID() != "c-1" || tx.AccountNumber() != "acc-1" || tx.Kind() != TxDeposit {
		t.Fatalf("unexpected transaction fields: %#v", tx)
	}
	if !tx.Amount().Equal(d(250)) {
		t.Fatalf("amount = %s, want 250", tx.Amount())
	}
}

func TestNewTransactionRejectsZeroAmount(t *testing.T) {
	_, err := NewTransaction("c-1", "acc-1", TxDeposit, decimal.Zero)
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if err.Error() != "amount must be greater than zero" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestNewTransactionRejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name                              string
		customerID, accountNumber, txKind string
	}{
		{"empty customer", "", "acc-1", TxDeposit},
		{"empty account", "c-1", "", TxDeposit},
		{"empty kind", "c-1", "acc-1", ""},
	}
	for _, tc := range cases {
		_, err := NewTransaction(tc.customerID, tc.accountNumber, tc.txKind, d(10))
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: error = %v, want ValidationError", tc.name, err)
		}
	}
}
