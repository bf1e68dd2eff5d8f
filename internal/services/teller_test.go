package services

import (
	"errors"
	"testing"

	"github.com/toybank/ledger/internal/errs"
	"github.com/toybank/ledger/internal/models"
)

func testTeller(t *testing.T, journal transactionJournal) *Teller {
	t.Helper()
	teller, err := NewTeller("t-1", "Bilal Ahmed", "br-7", testLogger(), journal)
	if err != nil {
		t.Fatalf("NewTeller returned error: %v", err)
	}
	return teller
}

func TestNewTellerValidation(t *testing.T) {
	var verr *errs.ValidationError
	if _, err := NewTeller("", "Bilal Ahmed", "br-7", testLogger(), &fakeJournal{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty ID, got %v", err)
	}
	if _, err := NewTeller("t-1", " ", "br-7", testLogger(), &fakeJournal{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty name, got %v", err)
	}
	if _, err := NewTeller("t-1", "Bilal Ahmed", "", testLogger(), &fakeJournal{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty branch, got %v", err)
	}
}

func TestTellerAssistDeposit(t *testing.T) {
	journal := &fakeJournal{}
	teller := testTeller(t, journal)
	customer := testCustomer(t)
	account := testSavings(t, customer, 100)

	if err := teller.AssistDeposit(customer, account, d(50)); err != nil {
		t.Fatalf("AssistDeposit returned error: %v", err)
	}
	if !account.Balance().Equal(d(150)) {
		t.Fatalf("balance = %s, want 150", account.Balance())
	}
	if len(journal.appended) != 1 || journal.appended[0].Kind() != models.TxDeposit {
		t.Fatalf("unexpected journal entries: %#v", journal.appended)
	}
	if journal.appended[0].CustomerID() != customer.ID() {
		t.Fatalf("journaled under %q, want assisted customer %q", journal.appended[0].CustomerID(), customer.ID())
	}
}

func TestTellerWithdrawalPreChecksVisibleBalance(t *testing.T) {
	journal := &fakeJournal{}
	teller := testTeller(t, journal)
	customer := testCustomer(t)
	// A current account could overdraw, but the teller blocks anything
	// beyond the visible balance.
	account, err := models.RestoreCurrentAccount(customer, "cur-1", d(100), d(1000), d(50))
	if err != nil {
		t.Fatalf("RestoreCurrentAccount returned error: %v", err)
	}

	var ierr *errs.InsufficientBalanceError
	if err := teller.AssistWithdrawal(customer, account, d(200)); !errors.As(err, &ierr) {
		t.Fatalf("error = %v, want InsufficientBalanceError", err)
	}
	if !account.Balance().Equal(d(100)) {
		t.Fatalf("balance changed on rejected withdrawal: %s", account.Balance())
	}
	if len(journal.appended) != 0 {
		t.Fatalf("rejected withdrawal was journaled")
	}

	if err := teller.AssistWithdrawal(customer, account, d(60)); err != nil {
		t.Fatalf("AssistWithdrawal returned error: %v", err)
	}
	if !account.Balance().Equal(d(40)) {
		t.Fatalf("balance = %s, want 40", account.Balance())
	}
	if len(journal.appended) != 1 || journal.appended[0].Kind() != models.TxWithdrawal {
		t.Fatalf("unexpected journal entries: %#v", journal.appended)
	}
}

func TestTellerAssistTransfer(t *testing.T) {
	journal := &fakeJournal{}
	teller := testTeller(t, journal)
	customer := testCustomer(t)
	source := testSavings(t, customer, 500)
	target, err := models.RestoreSavingsAccount(customer, "sav-2", d(0), d(3))
	if err != nil {
		t.Fatalf("RestoreSavingsAccount returned error: %v", err)
	}

	if err := teller.AssistTransfer(customer, source, target, d(200)); err != nil {
		t.Fatalf("AssistTransfer returned error: %v", err)
	}
	if !source.Balance().Equal(d(300)) || !target.Balance().Equal(d(200)) {
		t.Fatalf("balances = %s, %s, want 300, 200", source.Balance(), target.Balance())
	}
	if len(journal.appended) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(journal.appended))
	}
	if journal.appended[0].AccountNumber() != source.Number() {
		t.Fatalf("transfer journaled against %q, want source %q", journal.appended[0].AccountNumber(), source.Number())
	}

	var ierr *errs.InsufficientBalanceError
	if err := teller.AssistTransfer(customer, source, target, d(1000)); !errors.As(err, &ierr) {
		t.Fatalf("error = %v, want InsufficientBalanceError", err)
	}
}
