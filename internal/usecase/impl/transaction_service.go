package impl

import (
	"context"
	"log/slog"

	"creditdesk/internal/domain/repository"
	"creditdesk/internal/usecase"
)

type transactionService struct {
	directory repository.DirectoryRepository
	logger    *slog.Logger
	state     usecase.TransactionState
}

// NewTransactionService creates the transaction screen controller.
func NewTransactionService(directory repository.DirectoryRepository, logger *slog.Logger) usecase.TransactionUsecase {
	return &transactionService{
		directory: directory,
		logger:    logger,
	}
}

// Load fetches the ledger for the selected user. Server order is preserved;
// the screen never re-sorts.
func (s *transactionService) Load(ctx context.Context, userID string) error {
	s.state.Loading = true
	s.state.UserID = userID
	defer func() { s.state.Loading = false }()

	transactions, err := s.directory.ListTransactions(ctx, userID)
	if err != nil {
		s.state.Err = err
		s.logger.Warn("transaction load failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return err
	}

	s.state.Transactions = transactions
	s.state.Err = nil

	return nil
}

func (s *transactionService) State() usecase.TransactionState {
	return s.state
}
