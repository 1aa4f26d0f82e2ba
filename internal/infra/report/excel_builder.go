// Package report implements the ReportBuilder: the user+transaction
// flattener and its xlsx serialization.
package report

import (
	"encoding/base64"
	"fmt"
	"time"

	"creditdesk/internal/domain/entity"
	"creditdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single named sheet of the exported workbook.
const SheetName = "UserData"

// transactionDateLayout is how parseable timestamps are rendered in the
// Transaction Date column.
const transactionDateLayout = "2006-01-02 15:04:05"

type excelBuilder struct{}

// NewExcelBuilder creates the xlsx report builder.
func NewExcelBuilder() service.ReportBuilder {
	return &excelBuilder{}
}

// Flatten denormalizes the one-to-many user->transactions relationship into
// flat rows: one row per ledger entry with the user fields repeated, or one
// placeholder row for a user whose ledger is empty or missing. Users are
// processed in input order, ledger entries in server order. Ledger keys that
// match no user are ignored.
func Flatten(users []entity.User, ledgers map[string][]entity.Transaction) []entity.ReportRow {
	rows := make([]entity.ReportRow, 0, len(users))

	for _, user := range users {
		transactions := ledgers[user.UserID]
		if len(transactions) == 0 {
			rows = append(rows, placeholderRow(user))

			continue
		}

		for _, transaction := range transactions {
			rows = append(rows, entity.ReportRow{
				UserID:          user.UserID,
				Username:        user.Username,
				Email:           user.Email,
				PhoneNumber:     user.PhoneNumber,
				DOB:             user.DOB,
				Height:          user.Height,
				Weight:          user.Weight,
				Gender:          user.Gender,
				BloodGroup:      user.BloodGroup,
				CreditBalance:   user.CreditBalance,
				TransactionDate: formatTransactionDate(transaction.CreatedAt),
				TransactionType: transaction.TransactionType,
				ActivityType:    transaction.ActivityType,
				Amount:          transaction.Amount,
			})
		}
	}

	return rows
}

// BuildReport flattens the input and serializes the rows into a single-sheet
// workbook, returning it base64-encoded. Credit Balance and Amount are
// written as numbers, everything else as text.
func (b *excelBuilder) BuildReport(users []entity.User, ledgers map[string][]entity.Transaction) (string, error) {
	rows := Flatten(users, ledgers)

	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", SheetName); err != nil {
		return "", errors.Wrap(err, "failed to name report sheet")
	}

	headers := entity.ReportColumns()
	headerCells := make([]any, len(headers))
	for i, header := range headers {
		headerCells[i] = header
	}
	if err := workbook.SetSheetRow(SheetName, "A1", &headerCells); err != nil {
		return "", errors.Wrap(err, "failed to write header row")
	}

	for i, row := range rows {
		cells := []any{
			row.UserID,
			row.Username,
			row.Email,
			row.PhoneNumber,
			row.DOB,
			row.Height,
			row.Weight,
			row.Gender,
			row.BloodGroup,
			row.CreditBalance,
			row.TransactionDate,
			string(row.TransactionType),
			row.ActivityType,
			row.Amount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := workbook.SetSheetRow(SheetName, cell, &cells); err != nil {
			return "", errors.Wrapf(err, "failed to write report row %d", i)
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize workbook")
	}

	return base64.StdEncoding.EncodeToString(buffer.Bytes()), nil
}

func placeholderRow(user entity.User) entity.ReportRow {
	return entity.ReportRow{
		UserID:          user.UserID,
		Username:        user.Username,
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
		DOB:             user.DOB,
		Height:          user.Height,
		Weight:          user.Weight,
		Gender:          user.Gender,
		BloodGroup:      user.BloodGroup,
		CreditBalance:   user.CreditBalance,
		TransactionDate: entity.ReportNoDate,
		TransactionType: entity.ReportPlaceholderType,
		ActivityType:    entity.ReportNoActivity,
		Amount:          0,
	}
}

// formatTransactionDate renders an RFC3339 timestamp in the report layout.
// Unparseable values pass through verbatim rather than failing the export.
func formatTransactionDate(createdAt string) string {
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}

	return parsed.Format(transactionDateLayout)
}
