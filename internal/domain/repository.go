package domain

import "context"

// AccountRepository is the persistence capability the transfer flow depends
// on. Implementations live in infrastructure; the domain only states the
// contract.
type AccountRepository interface {
	// FindByID retrieves an account by exact id match. Returns an
	// ACCOUNT_NOT_FOUND domain error when no account exists for the id.
	FindByID(ctx context.Context, id string) (*Account, error)

	// Save persists an account with upsert semantics, keyed by account ID.
	Save(ctx context.Context, account *Account) error
}

// TransactionalAccountRepository is an optional repository capability: it
// runs fn against a transaction-scoped repository, committing only if fn
// returns nil. Reads inside the transaction lock the rows they touch, so
// concurrent transfers debiting the same account serialize instead of racing
// past each other's balance check.
type TransactionalAccountRepository interface {
	WithTransaction(ctx context.Context, fn func(repo AccountRepository) error) error
}
