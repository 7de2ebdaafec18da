package memory_test

import (
	"context"
	"testing"

	"github.com/ledgerline/transfer-service/internal/domain"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns seeded account", func(t *testing.T) {
		repo := memory.NewSeededAccountRepository()

		account, err := repo.FindByID(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, "1", account.ID)
		assert.True(t, account.Balance().Equals(domain.NewMoney(10000, "EUR")))
	})

	t.Run("returns not found error for unknown id", func(t *testing.T) {
		repo := memory.NewAccountRepository()

		_, err := repo.FindByID(ctx, "missing")

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAccountNotFound))
	})

	t.Run("returns a copy that does not alias the stored account", func(t *testing.T) {
		repo := memory.NewSeededAccountRepository()

		account, err := repo.FindByID(ctx, "1")
		require.NoError(t, err)
		require.NoError(t, account.Withdraw(domain.NewMoney(10000, "EUR")))

		stored, err := repo.FindByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, int64(10000), stored.Balance().Amount)
	})
}

func TestAccountRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when absent", func(t *testing.T) {
		repo := memory.NewAccountRepository()

		err := repo.Save(ctx, domain.NewAccount("acc-9", domain.NewMoney(250, "USD")))
		require.NoError(t, err)

		account, err := repo.FindByID(ctx, "acc-9")
		require.NoError(t, err)
		assert.True(t, account.Balance().Equals(domain.NewMoney(250, "USD")))
	})

	t.Run("overwrites when present", func(t *testing.T) {
		repo := memory.NewSeededAccountRepository()

		err := repo.Save(ctx, domain.NewAccount("2", domain.NewMoney(700, "EUR")))
		require.NoError(t, err)

		account, err := repo.FindByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, int64(700), account.Balance().Amount)
	})
}
