package usecase

import (
	"context"

	"creditdesk/internal/domain/entity"
)

// TransactionState is the transaction screen state for one selected user.
type TransactionState struct {
	Loading      bool
	UserID       string
	Transactions []entity.Transaction
	Err          error
}

// TransactionUsecase drives the per-user transaction history screen.
type TransactionUsecase interface {
	// Load fetches the ledger for the selected user, preserving server
	// order. An empty ledger is a valid result, not an error.
	Load(ctx context.Context, userID string) error

	// State returns a snapshot of the screen state.
	State() TransactionState
}
