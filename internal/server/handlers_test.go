package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry-king/internal/common/config"
	"laundry-king/internal/common/database"
	"laundry-king/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Fixture
// ==========================

type fixture struct {
	mr     *miniredis.Miniredis
	store  *OTPStore
	server *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { rdb.Close() })

	store := NewOTPStore(rdb, 5*time.Minute, 4)
	notifier := NewNotifier(config.NotificationConfig{}, nil, nil, logger.NewTestLogger(t))

	handler, err := NewHandler(store, notifier, logger.NewTestLogger(t))
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(handler))
	t.Cleanup(srv.Close)

	return &fixture{mr: mr, store: store, server: srv}
}

func (f *fixture) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(f.server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ==========================
// OTP Endpoints
// ==========================

func TestSendOTP_IssuesCodeWithTTL(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/auth/send-otp", `{"phone": "9876543210"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body SendOTPResponse
	decode(t, resp, &body)
	assert.True(t, body.Success)

	code, err := f.mr.Get("otp:9876543210")
	require.NoError(t, err)
	assert.Len(t, code, 4)
	assert.Greater(t, f.mr.TTL("otp:9876543210"), time.Duration(0))
}

func TestSendOTP_MissingPhone(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/auth/send-otp", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_RoundTrip(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/auth/send-otp", `{"phone": "9876543210"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	code, err := f.mr.Get("otp:9876543210")
	require.NoError(t, err)

	resp = f.post(t, "/auth/login", `{"phone": "9876543210", "otp": "`+code+`"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body LoginResponse
	decode(t, resp, &body)
	assert.True(t, body.Success)

	// The code is single-use.
	resp = f.post(t, "/auth/login", `{"phone": "9876543210", "otp": "`+code+`"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLogin_WrongCode(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/auth/send-otp", `{"phone": "9876543210"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = f.post(t, "/auth/login", `{"phone": "9876543210", "otp": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_OTP", body.Error)
}

func TestLogin_NoActiveCode(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/auth/login", `{"phone": "9999999999", "otp": "1234"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "OTP_EXPIRED", body.Error)
}

func TestLogin_ExpiredCode(t *testing.T) {
	f := newFixture(t)

	code, err := f.store.Issue(context.Background(), "9876543210")
	require.NoError(t, err)

	f.mr.FastForward(10 * time.Minute)

	resp := f.post(t, "/auth/login", `{"phone": "9876543210", "otp": "`+code+`"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

// ==========================
// Orders Endpoint
// ==========================

func TestCreateOrder_EchoesPayload(t *testing.T) {
	f := newFixture(t)

	payload := `{
		"items": [
			{"item": "Shirt", "qty": 2, "price": 35},
			{"item": "T-Shirt", "qty": 1, "price": 25}
		],
		"phone": "9876543210",
		"location": "12 Brigade Road",
		"total": 95
	}`

	resp := f.post(t, "/orders", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Order-Id"))

	var body OrderRequest
	decode(t, resp, &body)
	assert.Equal(t, 95, body.Total)
	assert.Len(t, body.Items, 2)
	assert.Equal(t, "Shirt", body.Items[0].Name)
}

func TestCreateOrder_ZeroItemOrderAccepted(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/orders", `{"items": [], "phone": "9876543210", "location": "x", "total": 0}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateOrder_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing phone", payload: `{"items": [], "location": "x", "total": 0}`},
		{name: "zero qty line", payload: `{"items": [{"item": "Shirt", "qty": 0, "price": 35}], "phone": "1", "location": "x", "total": 0}`},
		{name: "negative total", payload: `{"items": [], "phone": "1", "location": "x", "total": -5}`},
		{name: "extra field", payload: `{"items": [], "phone": "1", "location": "x", "total": 0, "coupon": "FREE"}`},
		{name: "empty location", payload: `{"items": [], "phone": "1", "location": "", "total": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			resp := f.post(t, "/orders", tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
