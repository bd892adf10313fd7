package apilogin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towdeskhq/towdesk/internal/app/system/credentials"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, emails, passwords string) *httptest.Server {
	t.Helper()
	creds, _ := credentials.New(emails, passwords)
	h := NewHandler(creds, zap.NewNop())
	srv := httptest.NewServer(Routes(h))
	t.Cleanup(srv.Close)
	return srv
}

func postLogin(t *testing.T, srv *httptest.Server, body string) (*http.Response, response) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestHandleLogin_Vectors(t *testing.T) {
	srv := newTestServer(t, "a@x.com,b@x.com", "p1,p2")

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantOK     bool
	}{
		{"case-insensitive email match", `{"email":"B@X.com","password":"p2"}`, http.StatusOK, true},
		{"wrong password", `{"email":"b@x.com","password":"wrong"}`, http.StatusUnauthorized, false},
		{"unknown email with valid password", `{"email":"c@x.com","password":"p1"}`, http.StatusUnauthorized, false},
		{"crossed pair rejected", `{"email":"a@x.com","password":"p2"}`, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := postLogin(t, srv, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantOK, out.OK)
		})
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	srv := newTestServer(t, "a@x.com", "p1")

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"missing email", `{"password":"p1"}`, "email is required"},
		{"missing password", `{"email":"a@x.com"}`, "password is required"},
		{"malformed body", `{not json`, "email is required"},
		{"empty body", ``, "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := postLogin(t, srv, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, out.OK)
			assert.Equal(t, tt.wantError, out.Error)
		})
	}
}

func TestHandleLogin_MisconfiguredStore(t *testing.T) {
	// Unequal lists: every login must fail with the configuration error,
	// even a pair that appears in the lists.
	srv := newTestServer(t, "a@x.com,b@x.com", "p1")

	resp, out := postLogin(t, srv, `{"email":"a@x.com","password":"p1"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, out.OK)
	assert.Equal(t, "server configuration error", out.Error)
}

func TestHandleLogin_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, "a@x.com", "p1")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.OK)
}
