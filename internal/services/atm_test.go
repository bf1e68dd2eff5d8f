package services

import (
	"errors"
	"testing"

	"github.com/toybank/ledger/internal/errs"
	"github.com/toybank/ledger/internal/models"
)

func testATM(t *testing.T, cash int64, journal transactionJournal) *ATM {
	t.Helper()
	atm, err := NewATM("atm-1", "Mall Road Branch", d(cash), testLogger(), journal)
	if err != nil {
		t.Fatalf("NewATM returned error: %v", err)
	}
	return atm
}

func TestNewATMValidation(t *testing.T) {
	var verr *errs.ValidationError
	if _, err := NewATM("", "Mall Road Branch", d(100), testLogger(), &fakeJournal{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty ID, got %v", err)
	}
	if _, err := NewATM("atm-1", "", d(100), testLogger(), &fakeJournal{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty location, got %v", err)
	}
	if _, err := NewATM("atm-1", "Mall Road Branch", d(-1), testLogger(), &fakeJournal{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for negative cash, got %v", err)
	}
}

func TestATMWithdrawBoundedByCashOnHand(t *testing.T) {
	journal := &fakeJournal{}
	atm := testATM(t, 100, journal)
	account := testSavings(t, testCustomer(t), 1000)

	var verr *errs.ValidationError
	if err := atm.Withdraw(account, d(200)); !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError for exhausted cash", err)
	}
	if !account.Balance().Equal(d(1000)) {
		t.Fatalf("balance changed on rejected withdrawal: %s", account.Balance())
	}
	if len(journal.appended) != 0 {
		t.Fatalf("rejected withdrawal was journaled")
	}
}

func TestATMWithdrawUpdatesCashAndJournals(t *testing.T) {
	journal := &fakeJournal{}
	atm := testATM(t, 500, journal)
	customer := testCustomer(t)
	account := testSavings(t, customer, 1000)

	if err := atm.Withdraw(account, d(200)); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	if !account.Balance().Equal(d(800)) {
		t.Fatalf("balance = %s, want 800", account.Balance())
	}
	if !atm.CashAvailable().Equal(d(300)) {
		t.Fatalf("cash = %s, want 300", atm.CashAvailable())
	}
	if len(journal.appended) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(journal.appended))
	}
	tx := journal.appended[0]
	if tx.Kind() != models.TxWithdrawal || tx.CustomerID() != customer.ID() {
		t.Fatalf("unexpected journal entry: %#v", tx)
	}
}

func TestATMDepositUpdatesCashAndJournals(t *testing.T) {
	journal := &fakeJournal{}
	atm := testATM(t, 500, journal)
	account := testSavings(t, testCustomer(t), 100)

	if err := atm.Deposit(account, d(50)); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if !account.Balance().Equal(d(150)) {
		t.Fatalf("balance = %s, want 150", account.Balance())
	}
	if !atm.CashAvailable().Equal(d(550)) {
		t.Fatalf("cash = %s, want 550", atm.CashAvailable())
	}
	if len(journal.appended) != 1 || journal.appended[0].Kind() != models.TxDeposit {
		t.Fatalf("unexpected journal entries: %#v", journal.appended)
	}
}

func TestATMTransferLeavesCashUntouched(t *testing.T) {
	journal := &fakeJournal{}
	atm := testATM(t, 500, journal)
	customer := testCustomer(t)
	source := testSavings(t, customer, 300)
	target, err := models.RestoreSavingsAccount(customer, "sav-2", d(0), d(3))
	if err != nil {
		t.Fatalf("RestoreSavingsAccount returned error: %v", err)
	}

	if err := atm.Transfer(source, target, d(100)); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}
	if !source.Balance().Equal(d(200)) || !target.Balance().Equal(d(100)) {
		t.Fatalf("balances = %s, %s, want 200, 100", source.Balance(), target.Balance())
	}
	if !atm.CashAvailable().Equal(d(500)) {
		t.Fatalf("cash = %s, want 500", atm.CashAvailable())
	}
	if len(journal.appended) != 1 || journal.appended[0].AccountNumber() != source.Number() {
		t.Fatalf("unexpected journal entries: %#v", journal.appended)
	}
}

func TestATMReplenish(t *testing.T) {
	atm := testATM(t, 100, &fakeJournal{})
	if err := atm.Replenish(d(400)); err != nil {
		t.Fatalf("Replenish returned error: %v", err)
	}
	if !atm.CashAvailable().Equal(d(500)) {
		t.Fatalf("cash = %s, want 500", atm.CashAvailable())
	}

	var verr *errs.ValidationError
	if err := atm.Replenish(d(0)); !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}
