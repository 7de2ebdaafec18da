package services_test

import (
	"context"
	"testing"

	"github.com/ledgerline/transfer-service/internal/application/services"
	"github.com/ledgerline/transfer-service/internal/domain"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryService_GetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the account", func(t *testing.T) {
		service := services.NewQueryService(memory.NewSeededAccountRepository())

		account, err := service.GetAccount(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, "1", account.ID)
		assert.Equal(t, int64(10000), account.Balance().Amount)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		service := services.NewQueryService(memory.NewAccountRepository())

		_, err := service.GetAccount(ctx, "nope")

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAccountNotFound))
	})
}
