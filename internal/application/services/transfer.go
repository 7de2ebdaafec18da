package services

import (
	"context"
	"log/slog"

	"github.com/ledgerline/transfer-service/internal/domain"
)

// TransferService moves money between two accounts. It is stateless and safe
// to call concurrently; serialization of transfers touching the same account
// is the repository's concern (see domain.TransactionalAccountRepository).
type TransferService struct {
	accounts domain.AccountRepository
	logger   *slog.Logger
}

func NewTransferService(accounts domain.AccountRepository, logger *slog.Logger) *TransferService {
	return &TransferService{
		accounts: accounts,
		logger:   logger,
	}
}

// Execute runs one transfer: withdraw from the sender, deposit to the
// receiver, persist both. When the repository supports transactions the
// whole sequence runs inside one, so the two writes commit atomically.
// Domain errors propagate unwrapped; the transport layer maps them.
func (s *TransferService) Execute(ctx context.Context, cmd TransferCommand) error {
	if cmd.SenderAccountID == cmd.ReceiverAccountID {
		return domain.NewSelfTransferError(cmd.SenderAccountID)
	}

	var err error
	if txRepo, ok := s.accounts.(domain.TransactionalAccountRepository); ok {
		err = txRepo.WithTransaction(ctx, func(repo domain.AccountRepository) error {
			return s.transfer(ctx, repo, cmd)
		})
	} else {
		err = s.transfer(ctx, s.accounts, cmd)
	}

	if err != nil {
		return err
	}

	s.logger.Info("transfer completed",
		"sender_account_id", cmd.SenderAccountID,
		"receiver_account_id", cmd.ReceiverAccountID,
		"amount", cmd.Amount,
		"currency", cmd.Currency,
	)
	return nil
}

// transfer is the fixed pipeline: read sender, read receiver, withdraw,
// deposit, write sender, write receiver. The sender is always resolved
// first, so when both accounts are missing the sender error surfaces.
func (s *TransferService) transfer(ctx context.Context, repo domain.AccountRepository, cmd TransferCommand) error {
	sender, err := repo.FindByID(ctx, cmd.SenderAccountID)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeAccountNotFound) {
			return domain.NewMissingAccountError("sender", cmd.SenderAccountID, err)
		}
		return err
	}

	receiver, err := repo.FindByID(ctx, cmd.ReceiverAccountID)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeAccountNotFound) {
			return domain.NewMissingAccountError("receiver", cmd.ReceiverAccountID, err)
		}
		return err
	}

	money := domain.NewMoney(cmd.Amount, cmd.Currency)

	if err := sender.Withdraw(money); err != nil {
		return err
	}
	if err := receiver.Deposit(money); err != nil {
		return err
	}

	if err := repo.Save(ctx, sender); err != nil {
		return err
	}
	return repo.Save(ctx, receiver)
}
