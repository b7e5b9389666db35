// Package repomanager selects the storage backend at startup and vends the
// per-collection repositories. Both backends satisfy the same repository
// contracts, so everything above this package is backend-agnostic.
package repomanager

import (
	"github.com/fintrackhq/fintrack/internal/server/repositories/bills"
	"github.com/fintrackhq/fintrack/internal/server/repositories/categories"
	"github.com/fintrackhq/fintrack/internal/server/repositories/goals"
	"github.com/fintrackhq/fintrack/internal/server/repositories/transactions"
	"github.com/fintrackhq/fintrack/internal/server/repositories/users"
)

type Manager interface {
	Users() users.Repository
	Transactions() transactions.Repository
	Goals() goals.Repository
	Bills() bills.Repository
	Categories() categories.Repository
	Close() error
}
