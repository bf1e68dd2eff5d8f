package store

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/toybank/ledger/internal/models"
)

// Journal is the append-only transaction log. Entries are never
// rewritten; file-append order is the only ordering signal.
type Journal struct {
	path string
	file *os.File
	log  *slog.Logger
}

func OpenJournal(path string, log *slog.Logger) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Journal{path: path, file: f, log: log}, nil
}

// Append writes one record to the end of the journal.
func (j *Journal) Append(tx models.Transaction) error {
	_, err := j.file.WriteString(EncodeTransaction(tx) + "\n")
	return err
}

// ReadAll replays the whole journal file on every call; there is no
// cached view. Unparsable lines are skipped with a diagnostic.
func (j *Journal) ReadAll() ([]models.Transaction, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var txs []models.Transaction
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tx, err := DecodeTransaction(line)
		if err != nil {
			j.log.Warn("skipping invalid transaction record", "line", line, "error", err)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, scanner.Err()
}

func (j *Journal) Close() error {
	return j.file.Close()
}
