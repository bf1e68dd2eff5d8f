package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/toybank/ledger/internal/bootstrap"
	"github.com/toybank/ledger/internal/config"
	"github.com/toybank/ledger/internal/models"
	"github.com/toybank/ledger/internal/services"
	"github.com/toybank/ledger/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	app := &app{
		cfg:  cfg,
		bank: bs.Bank,
		log:  bs.Log,
		in:   bufio.NewScanner(os.Stdin),
	}
	app.run()
}

type app struct {
	cfg  *config.Config
	bank *services.Bank
	log  *slog.Logger
	in   *bufio.Scanner
}

func (a *app) run() {
	for {
		showMenu()
		switch a.readLine("Enter your choice: ") {
		case "1":
			a.do(a.addCustomer)
		case "2":
			a.do(a.removeCustomer)
		case "3":
			a.do(a.viewCustomer)
		case "4":
			a.do(a.addAccount)
		case "5":
			a.do(a.removeAccount)
		case "6":
			a.do(a.deposit)
		case "7":
			a.do(a.withdraw)
		case "8":
			a.do(a.transfer)
		case "9":
			a.do(a.showHistory)
		case "10":
			a.showCustomers()
		case "11":
			a.showAccounts()
		case "12":
			a.showTellers()
		case "13":
			a.showATMs()
		case "0":
			fmt.Println("Saving and exiting...")
			a.save()
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func showMenu() {
	fmt.Println("\n--- Bank System Menu ---")
	fmt.Println("1. Add Customer")
	fmt.Println("2. Remove Customer")
	fmt.Println("3. View Customer Details")
	fmt.Println("4. Add Account")
	fmt.Println("5. Remove Account")
	fmt.Println("6. Deposit")
	fmt.Println("7. Withdraw")
	fmt.Println("8. Transfer")
	fmt.Println("9. View Transaction History")
	fmt.Println("10. Show All Customers")
	fmt.Println("11. Show All Accounts")
	fmt.Println("12. Show All Tellers")
	fmt.Println("13. Show All ATMs")
	fmt.Println("0. Exit")
}

// do runs one menu action and prints its error, if any, instead of
// aborting the loop.
func (a *app) do(action func() error) {
	if err := action(); err != nil {
		fmt.Println("Error:", err)
	}
}

func (a *app) addCustomer() error {
	id := a.readLine("Enter Customer ID: ")
	name := a.readLine("Enter Name: ")
	address := a.readLine("Enter Address: ")
	phone := a.readLine("Enter Phone Number: ")
	nationalID := a.readLine("Enter National ID: ")

	customer, err := models.NewCustomer(id, name, address, phone, nationalID)
	if err != nil {
		return err
	}
	if err := a.bank.AddCustomer(customer); err != nil {
		return err
	}
	fmt.Println("Customer added successfully.")
	return nil
}

func (a *app) removeCustomer() error {
	customer, err := a.bank.CustomerLookup(a.readLine("Enter Customer ID to remove: "))
	if err != nil {
		return err
	}
	a.bank.RemoveCustomer(customer)
	fmt.Println("Customer removed successfully.")
	return nil
}

func (a *app) viewCustomer() error {
	customer, err := a.bank.CustomerLookup(a.readLine("Enter Customer ID: "))
	if err != nil {
		return err
	}
	fmt.Printf("Customer ID: %s\nName: %s\nAddress: %s\nPhone Number: %s\nNational ID: %s\nAccounts: %d\n",
		customer.ID(), customer.Name(), customer.Address(), customer.PhoneNumber(), customer.NationalID(), len(customer.Accounts()))
	for _, account := range customer.Accounts() {
		printAccount(account)
	}
	return nil
}

func (a *app) addAccount() error {
	customer, err := a.bank.CustomerLookup(a.readLine("Enter Customer ID: "))
	if err != nil {
		return err
	}

	var account models.Account
	switch strings.ToLower(a.readLine("Enter Account Type (savings/current): ")) {
	case "savings":
		rate, err := a.readAmount("Enter Interest Rate (%): ")
		if err != nil {
			return err
		}
		account, err = models.NewSavingsAccount(customer, rate)
		if err != nil {
			return err
		}
	case "current":
		limit, err := a.readAmount("Enter Overdraft Limit: ")
		if err != nil {
			return err
		}
		fee, err := a.readAmount("Enter Overdraft Fee: ")
		if err != nil {
			return err
		}
		account, err = models.NewCurrentAccount(customer, limit, fee)
		if err != nil {
			return err
		}
	default:
		fmt.Println("Unknown account type.")
		return nil
	}

	if err := customer.AddAccount(account); err != nil {
		return err
	}
	if err := a.bank.AddAccount(account); err != nil {
		return err
	}
	fmt.Println("Account created with number:", account.Number())
	return nil
}

func (a *app) removeAccount() error {
	account, err := a.bank.AccountLookup(a.readLine("Enter Account Number to remove: "))
	if err != nil {
		return err
	}
	a.bank.RemoveAccount(account)
	if owner, err := a.bank.CustomerLookup(account.CustomerID()); err == nil {
		owner.RemoveAccount(account)
	}
	fmt.Println("Account removed successfully.")
	return nil
}

func (a *app) deposit() error {
	customer, account, err := a.resolveCustomerAccount()
	if err != nil {
		return err
	}
	amount, err := a.readAmount("Enter Amount: ")
	if err != nil {
		return err
	}
	if err := a.bank.Deposit(customer, account, amount); err != nil {
		return err
	}
	fmt.Println("Deposit successful. New balance:", account.Balance())
	return nil
}

func (a *app) withdraw() error {
	customer, account, err := a.resolveCustomerAccount()
	if err != nil {
		return err
	}
	amount, err := a.readAmount("Enter Amount: ")
	if err != nil {
		return err
	}
	if err := a.bank.Withdraw(customer, account, amount); err != nil {
		return err
	}
	fmt.Println("Withdrawal successful. New balance:", account.Balance())
	return nil
}

func (a *app) transfer() error {
	customer, source, err := a.resolveCustomerAccount()
	if err != nil {
		return err
	}
	target, err := a.bank.AccountLookup(a.readLine("Enter Target Account Number: "))
	if err != nil {
		return err
	}
	amount, err := a.readAmount("Enter Amount: ")
	if err != nil {
		return err
	}
	if err := a.bank.Transfer(customer, source, target, amount); err != nil {
		return err
	}
	fmt.Println("Transfer successful. Source balance:", source.Balance())
	return nil
}

func (a *app) showHistory() error {
	history, err := a.bank.TransactionHistory()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No transactions recorded.")
		return nil
	}
	for _, tx := range history {
		fmt.Printf("%s | account %s | customer %s | %s\n", tx.Kind(), tx.AccountNumber(), tx.CustomerID(), tx.Amount())
	}
	return nil
}

func (a *app) showCustomers() {
	customers := a.bank.Customers()
	if len(customers) == 0 {
		fmt.Println("No customers registered.")
		return
	}
	for _, c := range customers {
		fmt.Printf("%s  %s  (%d accounts)\n", c.ID(), c.Name(), len(c.Accounts()))
	}
}

func (a *app) showAccounts() {
	accounts := a.bank.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No accounts registered.")
		return
	}
	for _, account := range accounts {
		printAccount(account)
	}
}

func (a *app) showTellers() {
	tellers := a.bank.Tellers()
	if len(tellers) == 0 {
		fmt.Println("No tellers registered.")
		return
	}
	for _, t := range tellers {
		fmt.Printf("%s  %s  branch %s\n", t.ID(), t.Name(), t.BranchID())
	}
}

func (a *app) showATMs() {
	atms := a.bank.ATMs()
	if len(atms) == 0 {
		fmt.Println("No ATMs registered.")
		return
	}
	for _, m := range atms {
		fmt.Printf("%s  %s  cash %s\n", m.ID(), m.Location(), m.CashAvailable())
	}
}

func (a *app) resolveCustomerAccount() (*models.Customer, models.Account, error) {
	customer, err := a.bank.CustomerLookup(a.readLine("Enter Customer ID: "))
	if err != nil {
		return nil, nil, err
	}
	account, err := a.bank.AccountLookup(a.readLine("Enter Account Number: "))
	if err != nil {
		return nil, nil, err
	}
	return customer, account, nil
}

func (a *app) save() {
	// The registry stays authoritative; failed writes are logged by the
	// store and leave the previous files in place.
	store.SaveCustomers(a.cfg.CustomerFile(), a.bank.Customers(), a.log)
	store.SaveAccounts(a.cfg.AccountFile(), a.bank.Accounts(), a.log)
}

func (a *app) readLine(prompt string) string {
	fmt.Print(prompt)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) readAmount(prompt string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(a.readLine(prompt))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a valid amount: %w", err)
	}
	return value, nil
}

func printAccount(account models.Account) {
	fmt.Printf("%s  %s  balance %s  customer %s\n",
		account.Number(), account.Kind(), account.Balance(), account.CustomerID())
}
