package bootstrap

import (
	"log/slog"

	"github.com/toybank/ledger/internal/config"
	"github.com/toybank/ledger/internal/services"
	"github.com/toybank/ledger/internal/store"
	"github.com/toybank/ledger/pkg/logger"
)

type Bootstrap struct {
	Log     *slog.Logger
	Journal *store.Journal
	Bank    *services.Bank
}

// Run builds the logger, opens the journal and populates the registry
// from the persisted customer and account files.
func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewTerminalHandler)

	journal, err := store.OpenJournal(cfg.TransactionFile(), bs.Log)
	if err != nil {
		return bs, err
	}
	bs.Journal = journal
	bs.Bank = services.NewBank(cfg.BankName, bs.Log, journal)

	customers := store.LoadCustomers(cfg.CustomerFile(), bs.Log)
	accounts := store.LoadAccounts(cfg.AccountFile(), customers, bs.Log)
	for _, customer := range customers {
		if err := bs.Bank.AddCustomer(customer); err != nil {
			bs.Log.Warn("could not register customer", "customer", customer.ID(), "error", err)
		}
	}
	for _, account := range accounts {
		if err := bs.Bank.AddAccount(account); err != nil {
			bs.Log.Warn("could not register account", "account", account.Number(), "error", err)
		}
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Journal != nil {
		if err := bs.Journal.Close(); err != nil {
			bs.Log.Error("could not close journal", "error", err)
		}
	}
}
