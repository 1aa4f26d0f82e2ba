package impl

import (
	"context"
	"testing"

	"creditdesk/internal/domain/entity"
	"creditdesk/internal/domain/faults"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportService_Export(t *testing.T) {
	users := seedDirectoryUsers()

	directory := new(mockDirectory)
	directory.On("ListUsers", mock.Anything).Return(users, nil).Once()
	directory.On("ListTransactions", mock.Anything, "u-1001").Return([]entity.Transaction{
		{TransactionType: entity.TransactionEarn, ActivityType: "topup", Amount: 50, CreatedAt: "2024-01-01T00:00:00Z"},
		{TransactionType: entity.TransactionSpent, ActivityType: "voucher", Amount: 20, CreatedAt: "2024-01-02T00:00:00Z"},
	}, nil).Once()
	directory.On("ListTransactions", mock.Anything, "u-1002").Return([]entity.Transaction{
		{TransactionType: entity.TransactionEarn, ActivityType: "bonus", Amount: 5, CreatedAt: "2024-01-03T00:00:00Z"},
	}, nil).Once()
	directory.On("ListTransactions", mock.Anything, "u-1003").Return([]entity.Transaction{}, nil).Once()

	builder := new(mockBuilder)
	builder.On("BuildReport", users, mock.MatchedBy(func(ledgers map[string][]entity.Transaction) bool {
		return len(ledgers) == 3 && len(ledgers["u-1001"]) == 2
	})).Return("ZG9jdW1lbnQ=", nil).Once()

	share := new(mockShare)
	share.On("Publish", mock.Anything, "UserData.xlsx", "ZG9jdW1lbnQ=").
		Return("file:///tmp/creditdesk/UserData.xlsx", nil).Once()

	exporter := NewExportService(directory, builder, share, newTestConfig(), newDiscardLogger())

	result, err := exporter.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/creditdesk/UserData.xlsx", result.Location)
	assert.Equal(t, 3, result.Users)
	// 2 + 1 + one placeholder row for the user with no transactions.
	assert.Equal(t, 4, result.Rows)

	directory.AssertExpectations(t)
	builder.AssertExpectations(t)
	share.AssertExpectations(t)
}

func TestExportService_Export_UserFetchFailureAborts(t *testing.T) {
	directory := new(mockDirectory)
	directory.On("ListUsers", mock.Anything).
		Return(nil, errors.WithStack(faults.NewNetworkError("get users", errors.New("dial tcp: refused")))).Once()

	exporter := NewExportService(directory, new(mockBuilder), new(mockShare), newTestConfig(), newDiscardLogger())

	_, err := exporter.Export(context.Background())
	require.Error(t, err)

	var networkErr *faults.NetworkError
	assert.True(t, errors.As(err, &networkErr))
}

func TestExportService_Export_LedgerFailureAborts(t *testing.T) {
	users := seedDirectoryUsers()

	directory := new(mockDirectory)
	directory.On("ListUsers", mock.Anything).Return(users, nil).Once()
	// All fetches are dispatched together, so siblings may or may not run
	// before the failure cancels the group.
	directory.On("ListTransactions", mock.Anything, "u-1001").Return([]entity.Transaction{}, nil).Maybe()
	directory.On("ListTransactions", mock.Anything, "u-1002").
		Return(nil, errors.WithStack(faults.NewServerError("get transactions", 500))).Once()
	directory.On("ListTransactions", mock.Anything, "u-1003").Return([]entity.Transaction{}, nil).Maybe()

	builder := new(mockBuilder)
	share := new(mockShare)

	exporter := NewExportService(directory, builder, share, newTestConfig(), newDiscardLogger())

	_, err := exporter.Export(context.Background())
	require.Error(t, err)

	var serverErr *faults.ServerError
	assert.True(t, errors.As(err, &serverErr))

	// No partial workbook: neither build nor publish may have happened.
	builder.AssertNotCalled(t, "BuildReport", mock.Anything, mock.Anything)
	share.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
