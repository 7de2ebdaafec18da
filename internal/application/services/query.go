package services

import (
	"context"

	"github.com/ledgerline/transfer-service/internal/domain"
)

// QueryService answers read-only account lookups.
type QueryService struct {
	accounts domain.AccountRepository
}

func NewQueryService(accounts domain.AccountRepository) *QueryService {
	return &QueryService{accounts: accounts}
}

// GetAccount retrieves an account by ID
func (s *QueryService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}
