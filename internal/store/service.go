package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/centavo-dev/centavo/internal/model"
)

// FileName is the ledger file inside the data directory.
const FileName = "transactions.csv"

// Service provides business logic for the transaction ledger.
type Service struct {
	dataDir string
}

// NewService creates a ledger Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Load reads every transaction. A missing file is an empty ledger.
func (s *Service) Load() ([]model.Transaction, error) {
	path := s.path()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

// Append assigns sequential IDs to txns and appends them to the ledger
// (creating file and header if needed). Returns the stored transactions
// with their assigned IDs.
func (s *Service) Append(txns []model.Transaction) ([]model.Transaction, error) {
	existing, err := s.Load()
	if err != nil {
		return nil, err
	}

	nextID := 1
	for _, tx := range existing {
		if tx.ID >= nextID {
			nextID = tx.ID + 1
		}
	}

	stored := make([]model.Transaction, len(txns))
	for i, tx := range txns {
		tx.ID = nextID
		nextID++
		stored[i] = tx
	}

	path := s.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, stored); err != nil {
		return nil, fmt.Errorf("appending transactions: %w", err)
	}
	return stored, nil
}

// Rewrite replaces the whole ledger file with txns.
func (s *Service) Rewrite(txns []model.Transaction) error {
	path := s.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, FileName)
}
