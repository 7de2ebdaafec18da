package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/ledgerline/transfer-service/internal/application/services"
	"github.com/ledgerline/transfer-service/internal/application/services/testhelpers"
	"github.com/ledgerline/transfer-service/internal/domain"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TransferServicePostgresTestSuite struct {
	suite.Suite
	testDB      *testhelpers.TestDatabase
	accountRepo *postgres.AccountRepository
	service     *services.TransferService
}

func TestTransferServicePostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration suite in short mode")
	}
	suite.Run(t, new(TransferServicePostgresTestSuite))
}

func (suite *TransferServicePostgresTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.accountRepo = postgres.NewAccountRepository(suite.testDB.DB)
}

func (suite *TransferServicePostgresTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *TransferServicePostgresTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewTransferService(suite.accountRepo, logger)

	ctx := context.Background()
	require.NoError(suite.T(), suite.accountRepo.Save(ctx, domain.NewAccount("1", domain.NewMoney(1000, "EUR"))))
	require.NoError(suite.T(), suite.accountRepo.Save(ctx, domain.NewAccount("2", domain.NewMoney(1000, "EUR"))))
}

func (suite *TransferServicePostgresTestSuite) Test_Execute_MovesMoneyAtomically() {
	ctx := context.Background()
	t := suite.T()

	err := suite.service.Execute(ctx, services.TransferCommand{
		SenderAccountID:   "1",
		ReceiverAccountID: "2",
		Amount:            500,
		Currency:          "EUR",
	})
	require.NoError(t, err)

	sender, err := suite.accountRepo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), sender.Balance().Amount)

	receiver, err := suite.accountRepo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), receiver.Balance().Amount)
}

func (suite *TransferServicePostgresTestSuite) Test_Execute_InsufficientFunds_RollsBack() {
	ctx := context.Background()
	t := suite.T()

	err := suite.service.Execute(ctx, services.TransferCommand{
		SenderAccountID:   "1",
		ReceiverAccountID: "2",
		Amount:            5000,
		Currency:          "EUR",
	})

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInsufficientFunds))

	sender, err := suite.accountRepo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), sender.Balance().Amount)

	receiver, err := suite.accountRepo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), receiver.Balance().Amount)
}

func (suite *TransferServicePostgresTestSuite) Test_Execute_MissingAccount() {
	ctx := context.Background()
	t := suite.T()

	err := suite.service.Execute(ctx, services.TransferCommand{
		SenderAccountID:   "99",
		ReceiverAccountID: "2",
		Amount:            100,
		Currency:          "EUR",
	})

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAccountNotFound))
}

// Concurrent transfers debiting the same sender must serialize on the row
// lock: the sum of successful debits can never exceed the starting balance.
func (suite *TransferServicePostgresTestSuite) Test_Execute_ConcurrentDebits_NeverOverdraw() {
	ctx := context.Background()
	t := suite.T()

	const workers = 8
	const amount = 200 // 8 x 200 = 1600 > 1000, so some must fail

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.service.Execute(ctx, services.TransferCommand{
				SenderAccountID:   "1",
				ReceiverAccountID: "2",
				Amount:            amount,
				Currency:          "EUR",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInsufficientFunds))
		}
	}
	assert.Equal(t, 5, succeeded)

	sender, err := suite.accountRepo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000-int64(succeeded)*amount), sender.Balance().Amount)

	receiver, err := suite.accountRepo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(1000+int64(succeeded)*amount), receiver.Balance().Amount)
}
