package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	BankName string
	DataDir  string
	LogLevel string
}

func New() *Config {
	return &Config{
		BankName: getEnv("BANKNAME", "Toy Alfalah Bank"),
		DataDir:  getEnv("DATADIR", "."),
		LogLevel: getEnv("LOGLEVEL", "info"),
	}
}

func (c *Config) CustomerFile() string    { return filepath.Join(c.DataDir, "customers.csv") }
func (c *Config) AccountFile() string     { return filepath.Join(c.DataDir, "accounts.csv") }
func (c *Config) TransactionFile() string { return filepath.Join(c.DataDir, "transactions.csv") }

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
