package repomanager

import (
	"fmt"

	"github.com/fintrackhq/fintrack/internal/filex"
	"github.com/fintrackhq/fintrack/internal/server/repositories/bills"
	"github.com/fintrackhq/fintrack/internal/server/repositories/categories"
	"github.com/fintrackhq/fintrack/internal/server/repositories/goals"
	"github.com/fintrackhq/fintrack/internal/server/repositories/transactions"
	"github.com/fintrackhq/fintrack/internal/server/repositories/users"
)

// FileManager vends repositories backed by per-collection JSON files under
// one data directory.
type FileManager struct {
	users        users.Repository
	transactions transactions.Repository
	goals        goals.Repository
	bills        bills.Repository
	categories   categories.Repository
}

// NewFileManager ensures the data directory exists and wires the file
// repositories over it.
func NewFileManager(dataDir string) (*FileManager, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir error: %w", err)
	}

	return &FileManager{
		users:        users.NewFileRepository(dir),
		transactions: transactions.NewFileRepository(dir),
		goals:        goals.NewFileRepository(dir),
		bills:        bills.NewFileRepository(dir),
		categories:   categories.NewFileRepository(dir),
	}, nil
}

func (m *FileManager) Users() users.Repository               { return m.users }
func (m *FileManager) Transactions() transactions.Repository { return m.transactions }
func (m *FileManager) Goals() goals.Repository               { return m.goals }
func (m *FileManager) Bills() bills.Repository               { return m.bills }
func (m *FileManager) Categories() categories.Repository     { return m.categories }

func (m *FileManager) Close() error { return nil }
