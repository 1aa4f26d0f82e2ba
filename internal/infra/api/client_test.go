package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creditdesk/config"
	"creditdesk/internal/domain/faults"
	"creditdesk/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) repository.DirectoryRepository {
	t.Helper()

	cfg := &config.Config{
		API: &config.APIConfig{
			BaseURL: baseURL,
			Timeout: 5 * time.Second,
		},
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_ListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/get-users", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"user_id":"u1","username":"Alice","email":"alice@example.com","credit_balance":42.5},
			{"user_id":"u2","username":"bob","email":"bob@example.com","credit_balance":0}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].UserID)
	assert.Equal(t, "Alice", users[0].Username)
	assert.Equal(t, 42.5, users[0].CreditBalance)
	// Server order is preserved.
	assert.Equal(t, "u2", users[1].UserID)
}

func TestClient_ListUsers_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	users, err := client.ListUsers(context.Background())
	require.Error(t, err)
	assert.Nil(t, users)

	var serverErr *faults.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
}

func TestClient_ListUsers_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use: transport failure

	client := newTestClient(t, server.URL)

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)

	var networkErr *faults.NetworkError
	assert.True(t, errors.As(err, &networkErr))
}

func TestClient_ListUsers_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)

	var encodingErr *faults.EncodingError
	assert.True(t, errors.As(err, &encodingErr))
}

func TestClient_ListTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-transaction", r.URL.Path)
		assert.Equal(t, "u 1", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"transaction_type":"spent","activity_type":"voucher","amount":10,"created_at":"2024-02-01T00:00:00Z"},
			{"transaction_type":"earn","activity_type":"topup","amount":50,"created_at":"2024-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	transactions, err := client.ListTransactions(context.Background(), "u 1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	// Server order preserved, never re-sorted (the newer entry stays first).
	assert.Equal(t, "voucher", transactions[0].ActivityType)
	assert.Equal(t, "topup", transactions[1].ActivityType)
}

func TestClient_ListTransactions_EmptyLedgerIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	transactions, err := client.ListTransactions(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestClient_ListTransactions_EmptyUserID(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.ListTransactions(context.Background(), "  ")
	require.Error(t, err)

	var validationErr *faults.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.False(t, requested, "no request may be issued for an empty user id")
}

func TestClient_GenerateQR(t *testing.T) {
	png, err := qrcode.Encode(`{"name":"Alice","amount":25}`, qrcode.Medium, 128)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-qr", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)
		assert.JSONEq(t, `{"name":"Alice","amount":25}`, string(body))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	image, err := client.GenerateQR(context.Background(), "Alice", 25)
	require.NoError(t, err)
	assert.Equal(t, png, image)
}

func TestClient_GenerateQR_NonImageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GenerateQR(context.Background(), "Alice", 25)
	require.Error(t, err)

	var encodingErr *faults.EncodingError
	assert.True(t, errors.As(err, &encodingErr))
}
