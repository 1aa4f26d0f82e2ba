// Package impl contains the screen controller implementations. Controllers
// follow the single-logical-thread-per-screen model: they are not safe for
// concurrent use and do not need to be.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"creditdesk/internal/domain/entity"
	"creditdesk/internal/domain/repository"
	"creditdesk/internal/usecase"
)

type userListService struct {
	directory repository.DirectoryRepository
	logger    *slog.Logger
	state     usecase.UserListState
}

// NewUserListService creates the user-list screen controller.
func NewUserListService(directory repository.DirectoryRepository, logger *slog.Logger) usecase.UserListUsecase {
	return &userListService{
		directory: directory,
		logger:    logger,
	}
}

// Load re-fetches the full directory. On failure the previously loaded users
// stay in place so the user can retry manually.
func (s *userListService) Load(ctx context.Context) error {
	s.state.Loading = true
	defer func() { s.state.Loading = false }()

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		s.state.Err = err
		s.logger.Warn("user list load failed", slog.Any("error", err))

		return err
	}

	s.state.Users = users
	s.state.Err = nil

	return nil
}

// Filter performs case-insensitive substring matching on username.
func (s *userListService) Filter(query string) []entity.User {
	if query == "" {
		return s.state.Users
	}

	needle := strings.ToLower(query)
	filtered := make([]entity.User, 0, len(s.state.Users))
	for _, user := range s.state.Users {
		if strings.Contains(strings.ToLower(user.Username), needle) {
			filtered = append(filtered, user)
		}
	}

	return filtered
}

func (s *userListService) State() usecase.UserListState {
	return s.state
}
