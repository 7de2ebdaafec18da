// Package memory provides a map-backed AccountRepository for local runs and
// tests.
package memory

import (
	"context"
	"sync"

	"github.com/ledgerline/transfer-service/internal/domain"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// NewSeededAccountRepository returns a repository preloaded with the demo
// accounts: "1" holds 10000 EUR, "2" is empty.
func NewSeededAccountRepository() *AccountRepository {
	r := NewAccountRepository()
	r.accounts["1"] = domain.NewAccount("1", domain.NewMoney(10000, "EUR"))
	r.accounts["2"] = domain.NewAccount("2", domain.NewMoney(0, "EUR"))
	return r
}

// FindByID returns a copy of the stored account, so callers mutate their own
// instance and nothing is persisted until Save.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.NewAccountNotFoundError(id)
	}
	return domain.NewAccount(account.ID, account.Balance()), nil
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID] = domain.NewAccount(account.ID, account.Balance())
	return nil
}
