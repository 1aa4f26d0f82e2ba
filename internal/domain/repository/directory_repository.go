// Package repository defines the data-access contracts the usecase layer
// depends on. The only data source in this system is the remote dashboard
// API; there is no local persistence and nothing is cached between calls.
package repository

import (
	"context"

	"creditdesk/internal/domain/entity"
)

// DirectoryRepository is the remote API surface: the user directory, the
// per-user transaction ledger, and the payment QR renderer. Every call is a
// single fire-and-forget request with no retry; failures surface as typed
// faults (network, server, encoding).
type DirectoryRepository interface {
	// ListUsers fetches the full user directory. Order is as returned by
	// the server and is not guaranteed sorted.
	ListUsers(ctx context.Context) ([]entity.User, error)

	// ListTransactions fetches all ledger entries for one user, preserving
	// server order. An empty slice is a valid, non-error result. userID
	// must be non-empty.
	ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error)

	// GenerateQR requests a rendered QR image encoding a payment of amount
	// to name. The result is an opaque binary image payload, typically PNG.
	// Positivity of amount is the caller's validation responsibility.
	GenerateQR(ctx context.Context, name string, amount float64) ([]byte, error)
}
