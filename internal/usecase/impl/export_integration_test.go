package impl

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"creditdesk/config"
	"creditdesk/internal/delivery/http/router/handler"
	"creditdesk/internal/delivery/http/validator"
	"creditdesk/internal/infra/api"
	"creditdesk/internal/infra/qrcode"
	"creditdesk/internal/infra/report"
	"creditdesk/internal/infra/share"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Exercises the full pipeline: stub API over HTTP, the real client, the
// excel builder, and a file-backed share target.
func TestExportService_EndToEnd(t *testing.T) {
	logger := newDiscardLogger()

	e := echo.New()
	e.Validator = validator.New()
	adminHandler := handler.NewAdminHandler(qrcode.NewQRCodeService(128), logger)
	e.GET("/admin/get-users", adminHandler.ListUsers)
	e.GET("/get-transaction", adminHandler.ListTransactions)

	server := httptest.NewServer(e)
	defer server.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		API: &config.APIConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
		Export: &config.ExportConfig{
			BucketURL: "file://" + dir,
			FileName:  "UserData.xlsx",
		},
	}

	exporter := NewExportService(
		api.NewClient(cfg, logger),
		report.NewExcelBuilder(),
		share.NewBlobTarget(cfg.Export.BucketURL, logger),
		cfg,
		logger,
	)

	result, err := exporter.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Users)
	// Seeded ledgers hold 2 + 1 transactions, plus one placeholder row.
	assert.Equal(t, 4, result.Rows)

	raw, err := os.ReadFile(filepath.Join(dir, "UserData.xlsx"))
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer workbook.Close()

	sheetRows, err := workbook.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, sheetRows, 5, "header plus four data rows")

	// The user with no transactions gets the placeholder row.
	assert.Equal(t, "u-1003", sheetRows[4][0])
	assert.Equal(t, "No Transactions", sheetRows[4][12])

	// The artifact on disk is the decoded workbook, not its base64 form.
	assert.True(t, bytes.HasPrefix(raw, []byte("PK")))
}
