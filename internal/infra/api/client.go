// Package api implements the remote DirectoryRepository over HTTP. Three
// endpoints against one configured base URL, no auth headers, no retry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"creditdesk/config"
	"creditdesk/internal/domain/entity"
	"creditdesk/internal/domain/faults"
	"creditdesk/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	usersPath        = "/admin/get-users"
	transactionsPath = "/get-transaction"
	generateQRPath   = "/generate-qr"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the HTTP directory client. The timeout from config is
// the only deadline beyond whatever the caller's context carries.
func NewClient(cfg *config.Config, logger *slog.Logger) repository.DirectoryRepository {
	return &client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		logger: logger,
	}
}

// ListUsers fetches the full user directory in server order.
func (c *client) ListUsers(ctx context.Context) ([]entity.User, error) {
	const op = "list users"

	body, err := c.get(ctx, op, c.baseURL+usersPath)
	if err != nil {
		return nil, err
	}

	var users []entity.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, errors.WithStack(faults.NewEncodingError(op, err))
	}

	c.logger.Debug("fetched user directory", slog.Int("count", len(users)))

	return users, nil
}

// ListTransactions fetches the ledger for one user, preserving server order.
// An empty array from the server is a valid, non-error result.
func (c *client) ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	const op = "list transactions"

	if strings.TrimSpace(userID) == "" {
		return nil, errors.WithStack(faults.NewValidationError("user id is required"))
	}

	endpoint := c.baseURL + transactionsPath + "?id=" + url.QueryEscape(userID)
	body, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	if err := json.Unmarshal(body, &transactions); err != nil {
		return nil, errors.WithStack(faults.NewEncodingError(op, err))
	}

	return transactions, nil
}

// GenerateQR requests a rendered payment QR image. Amount positivity is the
// caller's responsibility; the client only checks the payload comes back as
// binary image data.
func (c *client) GenerateQR(ctx context.Context, name string, amount float64) ([]byte, error) {
	const op = "generate qr"

	payload, err := json.Marshal(map[string]any{
		"name":   name,
		"amount": amount,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateQRPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, errors.WithStack(faults.NewEncodingError(op, errors.New("empty response body")))
	}
	if contentType := http.DetectContentType(body); !strings.HasPrefix(contentType, "image/") {
		return nil, errors.WithStack(faults.NewEncodingError(op, errors.Errorf("unexpected content type %s", contentType)))
	}

	return body, nil
}

func (c *client) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return c.do(op, req)
}

// do issues a single request. No retry: a transport failure is a
// NetworkError, a non-2xx status a ServerError, both surfaced to the caller.
func (c *client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(faults.NewNetworkError(op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.WithStack(faults.NewServerError(op, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(faults.NewNetworkError(op, err))
	}

	return body, nil
}
