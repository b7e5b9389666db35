package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack/internal/logging"
	"github.com/fintrackhq/fintrack/internal/server/auth"
	"github.com/fintrackhq/fintrack/internal/server/config"
	"github.com/fintrackhq/fintrack/internal/server/repositories/bills"
	"github.com/fintrackhq/fintrack/internal/server/repositories/categories"
	"github.com/fintrackhq/fintrack/internal/server/repositories/goals"
	"github.com/fintrackhq/fintrack/internal/server/repositories/transactions"
	"github.com/fintrackhq/fintrack/internal/server/repositories/users"
	"github.com/fintrackhq/fintrack/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		SecretKey:            testSecret,
		AccessTokenValidity:  15 * time.Minute,
		RefreshTokenValidity: 30 * 24 * time.Hour,
	}

	s := NewServer(
		":0",
		logging.NewJSON(io.Discard),
		services.NewAuthService(users.NewFileRepository(dir), cfg),
		services.NewTransactionService(transactions.NewFileRepository(dir)),
		services.NewGoalService(goals.NewFileRepository(dir)),
		services.NewBillService(bills.NewFileRepository(dir)),
		services.NewCategoryService(categories.NewFileRepository(dir)),
	)

	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts
}

// doJSON sends body as JSON and decodes the response into a generic map.
func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints whose body is a JSON array.
func doJSONList(t *testing.T, ts *httptest.Server, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func loginAs(t *testing.T, ts *httptest.Server, username, password string) string {
	t.Helper()

	code, _ := doJSON(t, ts, http.MethodPost, "/auth/register", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, code)

	code, body := doJSON(t, ts, http.MethodPost, "/auth/login", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, code)

	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	code, body := doJSON(t, ts, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t)

	code, body := doJSON(t, ts, http.MethodPost, "/auth/register", "",
		map[string]string{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusCreated, code)
	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user["username"])
	assert.NotEmpty(t, user["id"])

	// duplicate registration
	code, _ = doJSON(t, ts, http.MethodPost, "/auth/register", "",
		map[string]string{"username": "alice", "password": "other"})
	assert.Equal(t, http.StatusConflict, code)

	// missing fields
	code, _ = doJSON(t, ts, http.MethodPost, "/auth/register", "",
		map[string]string{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, code)

	// wrong password
	code, _ = doJSON(t, ts, http.MethodPost, "/auth/login", "",
		map[string]string{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, code)

	// login
	code, body = doJSON(t, ts, http.MethodPost, "/auth/login", "",
		map[string]string{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", body["username"])
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEmpty(t, body["refreshToken"])

	// refresh mints a working access token
	refreshToken, _ := body["refreshToken"].(string)
	code, body = doJSON(t, ts, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refreshToken": refreshToken})
	require.Equal(t, http.StatusOK, code)
	newAccess, _ := body["accessToken"].(string)
	require.NotEmpty(t, newAccess)

	code, _ = doJSONList(t, ts, "/api/transactions", newAccess)
	assert.Equal(t, http.StatusOK, code)
}

func TestRefreshErrors(t *testing.T) {
	ts := newTestServer(t)
	token := loginAs(t, ts, "alice", "secret")

	code, _ := doJSON(t, ts, http.MethodPost, "/auth/refresh", "",
		map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, ts, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refreshToken": "garbage"})
	assert.Equal(t, http.StatusForbidden, code)

	// an access token is not accepted as a refresh token
	code, _ = doJSON(t, ts, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refreshToken": token})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	code, _ := doJSONList(t, ts, "/api/transactions", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSONList(t, ts, "/api/transactions", "not-a-token")
	assert.Equal(t, http.StatusForbidden, code)

	expired, err := auth.GenerateToken("u1", "alice", auth.TokenTypeAccess,
		[]byte(testSecret), -time.Minute)
	require.NoError(t, err)
	code, _ = doJSONList(t, ts, "/api/transactions", expired)
	assert.Equal(t, http.StatusForbidden, code)

	refresh, err := auth.GenerateToken("u1", "alice", auth.TokenTypeRefresh,
		[]byte(testSecret), time.Hour)
	require.NoError(t, err)
	code, _ = doJSONList(t, ts, "/api/transactions", refresh)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestTransactionsEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	alice := loginAs(t, ts, "alice", "secret")
	bob := loginAs(t, ts, "bob", "secret")

	code, created := doJSON(t, ts, http.MethodPost, "/api/transactions", alice,
		map[string]any{
			"date":        "2024-01-01",
			"description": "coffee",
			"category":    "Alimentação",
			"type":        "expense",
			"amount":      "4.50",
		})
	require.Equal(t, http.StatusCreated, code)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, 4.5, created["amount"])

	// validation
	code, _ = doJSON(t, ts, http.MethodPost, "/api/transactions", alice,
		map[string]any{"description": "no date"})
	assert.Equal(t, http.StatusBadRequest, code)

	// owner sees it, the other user does not
	code, mine := doJSONList(t, ts, "/api/transactions", alice)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, mine, 1)
	assert.Equal(t, "coffee", mine[0]["description"])

	code, theirs := doJSONList(t, ts, "/api/transactions", bob)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, theirs)

	// partial update keeps the rest
	code, updated := doJSON(t, ts, http.MethodPut, "/api/transactions/"+id, alice,
		map[string]any{"description": "espresso"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "espresso", updated["description"])
	assert.Equal(t, "2024-01-01", updated["date"])
	assert.Equal(t, 4.5, updated["amount"])

	// someone else's record reads as absent
	code, _ = doJSON(t, ts, http.MethodPut, "/api/transactions/"+id, bob,
		map[string]any{"description": "hijack"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, ts, http.MethodDelete, "/api/transactions/"+id, bob, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body := doJSON(t, ts, http.MethodDelete, "/api/transactions/"+id, alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "transaction deleted", body["message"])

	code, _ = doJSON(t, ts, http.MethodDelete, "/api/transactions/"+id, alice, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGoalsEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	alice := loginAs(t, ts, "alice", "secret")

	code, created := doJSON(t, ts, http.MethodPost, "/api/goals", alice,
		map[string]any{"name": "holiday", "amount": 1000, "target_date": "2025-06-01"})
	require.Equal(t, http.StatusCreated, code)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, float64(0), created["saved"])

	code, updated := doJSON(t, ts, http.MethodPut, "/api/goals/"+id, alice,
		map[string]any{"saved": 250})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(250), updated["saved"])
	assert.Equal(t, "holiday", updated["name"])

	code, body := doJSON(t, ts, http.MethodDelete, "/api/goals/"+id, alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "goal deleted", body["message"])
}

func TestBillsEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	alice := loginAs(t, ts, "alice", "secret")

	code, created := doJSON(t, ts, http.MethodPost, "/api/bills", alice,
		map[string]any{"description": "rent", "amount": 900, "due_date": "2024-02-01"})
	require.Equal(t, http.StatusCreated, code)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, false, created["paid"])

	code, updated := doJSON(t, ts, http.MethodPut, "/api/bills/"+id, alice,
		map[string]any{"paid": true})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, updated["paid"])
	assert.Equal(t, "rent", updated["description"])

	code, body := doJSON(t, ts, http.MethodDelete, "/api/bills/"+id, alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "bill deleted", body["message"])
}

func TestCategoriesEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	alice := loginAs(t, ts, "alice", "secret")

	// first listing seeds the defaults
	code, listed := doJSONList(t, ts, "/api/categories", alice)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, listed, 2)
	assert.Equal(t, "Alimentação", listed[0]["name"])
	assert.Equal(t, "Transporte", listed[1]["name"])

	code, created := doJSON(t, ts, http.MethodPost, "/api/categories", alice,
		map[string]any{"name": "Lazer"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Lazer", created["name"])

	code, _ = doJSON(t, ts, http.MethodPost, "/api/categories", alice,
		map[string]any{"name": "Lazer"})
	assert.Equal(t, http.StatusConflict, code)

	code, body := doJSON(t, ts, http.MethodDelete, "/api/categories/Lazer", alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "category deleted", body["message"])

	code, _ = doJSON(t, ts, http.MethodDelete, "/api/categories/Lazer", alice, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
