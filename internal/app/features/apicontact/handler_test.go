package apicontact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towdeskhq/towdesk/internal/app/system/contactrelay"
	"github.com/towdeskhq/towdesk/internal/app/system/mailer"
	"go.uber.org/zap"
)

type recordingSender struct {
	sent []mailer.Email
}

func (s *recordingSender) Send(e mailer.Email) error {
	s.sent = append(s.sent, e)
	return nil
}

func newTestServer(t *testing.T, sender contactrelay.Sender, cfg mailer.Config, to string) *httptest.Server {
	t.Helper()
	relay := &contactrelay.Relay{
		Mailer:  sender,
		MailCfg: cfg,
		To:      to,
		Log:     zap.NewNop(),
	}
	h := NewHandler(relay, zap.NewNop())
	srv := httptest.NewServer(Routes(h))
	t.Cleanup(srv.Close)
	return srv
}

func goodConfig() mailer.Config {
	return mailer.Config{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"}
}

func postContact(t *testing.T, srv *httptest.Server, body string) (*http.Response, response) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestHandleSubmit_SendsExactlyOneEmail(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender, goodConfig(), "support@example.com")

	resp, out := postContact(t, srv, `{"name":"Ann","email":"ann@example.com","message":"My car broke down."}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.OK)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "support@example.com", sender.sent[0].To)
	assert.Equal(t, "ann@example.com", sender.sent[0].ReplyTo)
}

func TestHandleSubmit_EmptyName(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender, goodConfig(), "support@example.com")

	resp, out := postContact(t, srv, `{"name":"   ","email":"ann@example.com","message":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, out.OK)
	assert.Contains(t, out.Error, "name")
	assert.Empty(t, sender.sent)
}

func TestHandleSubmit_TruncatesLongMessage(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender, goodConfig(), "support@example.com")

	long := strings.Repeat("x", 6000)
	body := `{"name":"Ann","email":"ann@example.com","message":"` + long + `"}`
	resp, out := postContact(t, srv, body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.OK)
	require.Len(t, sender.sent, 1)
	assert.LessOrEqual(t, strings.Count(sender.sent[0].TextBody, "x"), 5000)
}

func TestHandleSubmit_MissingMailConfig(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender, mailer.Config{}, "support@example.com")

	resp, out := postContact(t, srv, `{"name":"Ann","email":"ann@example.com","message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, out.Error, "mail_smtp_host")
	assert.Empty(t, sender.sent)
}

func TestPreflight(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender, goodConfig(), "support@example.com")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(t, sender, goodConfig(), "support@example.com")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
