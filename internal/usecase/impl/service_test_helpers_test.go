package impl

import (
	"context"
	"io"
	"log/slog"

	"creditdesk/config"
	"creditdesk/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Export: &config.ExportConfig{
			BucketURL: "mem://",
			FileName:  "UserData.xlsx",
		},
	}
}

// mockDirectory is a testify mock of repository.DirectoryRepository.
type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) ListUsers(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDirectory) ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if transactions, ok := args.Get(0).([]entity.Transaction); ok {
		return transactions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDirectory) GenerateQR(ctx context.Context, name string, amount float64) ([]byte, error) {
	args := m.Called(ctx, name, amount)
	if image, ok := args.Get(0).([]byte); ok {
		return image, args.Error(1)
	}

	return nil, args.Error(1)
}

// mockBuilder is a testify mock of service.ReportBuilder.
type mockBuilder struct {
	mock.Mock
}

func (m *mockBuilder) BuildReport(users []entity.User, ledgers map[string][]entity.Transaction) (string, error) {
	args := m.Called(users, ledgers)

	return args.String(0), args.Error(1)
}

// mockShare is a testify mock of service.ShareTarget.
type mockShare struct {
	mock.Mock
}

func (m *mockShare) Publish(ctx context.Context, fileName string, base64Doc string) (string, error) {
	args := m.Called(ctx, fileName, base64Doc)

	return args.String(0), args.Error(1)
}
