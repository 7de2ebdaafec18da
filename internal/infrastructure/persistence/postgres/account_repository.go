// Package postgres implements the account repository on top of pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerline/transfer-service/internal/domain"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence"
)

// accountModel mirrors the accounts table row.
type accountModel struct {
	ID       string
	Balance  int64
	Currency string
}

func toDomainModel(m accountModel) *domain.Account {
	return domain.NewAccount(m.ID, domain.NewMoney(m.Balance, m.Currency))
}

type AccountRepository struct {
	db *persistence.DB
	q  persistence.Executor
}

func NewAccountRepository(db *persistence.DB) *AccountRepository {
	return &AccountRepository{db: db, q: db.Pool}
}

// FindByID retrieves an account by id. When the repository is
// transaction-scoped the row is locked until the transaction finishes, so
// concurrent transfers against the same account serialize at the database.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, balance, currency
		FROM accounts WHERE id = $1
	`
	if r.inTransaction() {
		query += ` FOR UPDATE`
	}

	var m accountModel
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Balance, &m.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewAccountNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return toDomainModel(m), nil
}

// Save upserts an account keyed by its id.
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, balance, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET balance = EXCLUDED.balance,
		    currency = EXCLUDED.currency
	`

	balance := account.Balance()
	_, err := r.q.Exec(ctx, query, account.ID, balance.Amount, balance.Currency)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}

	return nil
}

// WithTransaction executes fn against a transaction-scoped repository. The
// transaction commits only if fn returns nil, so the two writes of a
// transfer become atomic and a failure on the second write rolls back the
// first.
func (r *AccountRepository) WithTransaction(ctx context.Context, fn func(repo domain.AccountRepository) error) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txRepo := &AccountRepository{db: r.db, q: tx}

	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *AccountRepository) inTransaction() bool {
	_, ok := r.q.(pgx.Tx)
	return ok
}
