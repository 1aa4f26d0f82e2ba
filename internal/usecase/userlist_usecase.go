// Package usecase contains the screen-level application logic. Each screen
// of the dashboard front-end is represented by one controller holding an
// explicit state struct with loading, data and error fields.
package usecase

import (
	"context"

	"creditdesk/internal/domain/entity"
)

// UserListState is the user-list screen state. A failed reload keeps the
// previously loaded users so the screen can be retried without going blank.
type UserListState struct {
	Loading bool
	Users   []entity.User
	Err     error
}

// UserListUsecase drives the user directory screen.
type UserListUsecase interface {
	// Load fetches the full directory, replacing any previously loaded
	// users on success and leaving them intact on failure.
	Load(ctx context.Context) error

	// Filter returns the loaded users whose username contains query,
	// case-insensitively. An empty query returns all loaded users.
	// Filtering is purely client-side.
	Filter(query string) []entity.User

	// State returns a snapshot of the screen state.
	State() UserListState
}
