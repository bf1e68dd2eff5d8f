package store

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/toybank/ledger/internal/models"
)

// Load failures are swallowed at this boundary: a missing or unreadable
// file yields an empty result with a diagnostic, so the system starts
// with no persisted state instead of aborting. Likewise saves log write
// failures and leave the in-memory state authoritative.

// LoadCustomers parses the customer file into an index keyed by
// customer ID. Bad lines are skipped individually.
func LoadCustomers(path string, log *slog.Logger) map[string]*models.Customer {
	customers := make(map[string]*models.Customer)
	lines, err := readLines(path)
	if err != nil {
		log.Warn("could not read customer file, starting empty", "path", path, "error", err)
		return customers
	}
	for _, line := range lines {
		customer, err := DecodeCustomer(line)
		if err != nil {
			log.Warn("skipping invalid customer record", "line", line, "error", err)
			continue
		}
		customers[customer.ID()] = customer
	}
	return customers
}

// LoadAccounts parses the account file, attaches each account to its
// owner from the customer index and returns the accounts for registry
// registration. Accounts whose owner is unknown are skipped.
func LoadAccounts(path string, customers map[string]*models.Customer, log *slog.Logger) []models.Account {
	var accounts []models.Account
	lines, err := readLines(path)
	if err != nil {
		log.Warn("could not read account file, starting empty", "path", path, "error", err)
		return accounts
	}
	for _, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			log.Warn("skipping invalid account record", "line", line)
			continue
		}
		owner, ok := customers[fields[3]]
		if !ok {
			log.Warn("skipping account with unknown customer", "account", fields[0], "customer", fields[3])
			continue
		}
		account, err := DecodeAccount(line, owner)
		if err != nil {
			log.Warn("skipping invalid account record", "line", line, "error", err)
			continue
		}
		if err := owner.AddAccount(account); err != nil {
			log.Warn("could not attach account to customer", "account", account.Number(), "error", err)
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts
}

// SaveCustomers rewrites the customer file from the live registry.
func SaveCustomers(path string, customers []*models.Customer, log *slog.Logger) {
	lines := make([]string, 0, len(customers))
	for _, c := range customers {
		lines = append(lines, EncodeCustomer(c))
	}
	if err := writeLines(path, lines); err != nil {
		log.Error("could not save customers", "path", path, "error", err)
	}
}

// SaveAccounts rewrites the account file from the live registry.
// Accounts that cannot be encoded are skipped with a diagnostic.
func SaveAccounts(path string, accounts []models.Account, log *slog.Logger) {
	lines := make([]string, 0, len(accounts))
	for _, a := range accounts {
		line, err := EncodeAccount(a)
		if err != nil {
			log.Warn("skipping unencodable account", "account", a.Number(), "error", err)
			continue
		}
		lines = append(lines, line)
	}
	if err := writeLines(path, lines); err != nil {
		log.Error("could not save accounts", "path", path, "error", err)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// writeLines replaces the file atomically: write to a temp file, then
// rename over the original so a failed save cannot corrupt it.
func writeLines(path string, lines []string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
