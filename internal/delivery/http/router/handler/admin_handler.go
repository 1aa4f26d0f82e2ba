// Package handler contains the HTTP handlers for the development stub of
// the remote dashboard API. Success bodies mirror the real API: raw JSON
// arrays for the list endpoints, a binary PNG for the QR endpoint.
package handler

import (
	"log/slog"
	"net/http"

	"creditdesk/internal/delivery/http/response"
	"creditdesk/internal/domain/entity"
	"creditdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the three stubbed endpoints over seeded in-memory
// data.
type AdminHandler struct {
	users     []entity.User
	ledgers   map[string][]entity.Transaction
	qrService service.PaymentQRService
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(qrService service.PaymentQRService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:     seedUsers(),
		ledgers:   seedLedgers(),
		qrService: qrService,
		logger:    logger,
	}
}

// ListUsers handles GET /admin/get-users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.users)
}

// ListTransactions handles GET /get-transaction?id=<user_id>. An unknown
// user id yields an empty array, matching the real ledger's behavior.
func (h *AdminHandler) ListTransactions(c echo.Context) error {
	userID := c.QueryParam("id")
	if userID == "" {
		return response.BadRequest(c, "MISSING_USER_ID", "Query parameter 'id' is required")
	}

	transactions := h.ledgers[userID]
	if transactions == nil {
		transactions = []entity.Transaction{}
	}

	return c.JSON(http.StatusOK, transactions)
}

// GenerateQRRequest is the POST /generate-qr body.
type GenerateQRRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// GenerateQR handles POST /generate-qr, rendering a real PNG so clients can
// be exercised against realistic binary payloads.
func (h *AdminHandler) GenerateQR(c echo.Context) error {
	var req GenerateQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Name is required and amount must be positive")
	}

	image, err := h.qrService.GeneratePaymentQR(req.Name, req.Amount)
	if err != nil {
		h.logger.Error("qr rendering failed", slog.Any("error", err))

		return response.InternalServerError(c, "QR_RENDER_FAILED", "Could not render QR image")
	}

	return c.Blob(http.StatusOK, "image/png", image)
}
