package endpoints

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairncms/cairn/pkg/googleauth"
	"github.com/cairncms/cairn/pkg/model"
)

func TestAuthenticateByEmail(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")

	rec := ts.do(t, http.MethodPost, "/authentication/authenticate", "", map[string]string{
		"email":    "ada@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Session model.Session `json:"session"`
		Account model.Account `json:"account"`
	}
	decodeBody(t, rec, &payload)
	assert.Len(t, payload.Session.Token, 64)
	assert.Equal(t, "acc-1", payload.Session.AccountID)
	assert.Empty(t, payload.Account.Password)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")

	rec := ts.do(t, http.MethodPost, "/authentication/authenticate", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAuthenticateRejectsAmbiguousCredentials(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")

	rec := ts.do(t, http.MethodPost, "/authentication/authenticate", "", map[string]string{
		"email":    "ada@example.com",
		"username": "ada",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticateRejectsMalformedBody(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/authentication/authenticate", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleAuthenticateReadsAuthorizationHeader(t *testing.T) {
	ts := newTestServer()
	ts.verifier.claims = &googleauth.Claims{
		Subject:    "sub-1",
		Email:      "grace@example.com",
		Name:       "Grace Hopper",
		GivenName:  "Grace",
		FamilyName: "Hopper",
	}

	// The ID token rides in the Authorization header; no body needed.
	rec := ts.do(t, http.MethodPost, "/authentication/google", "google-id-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Session model.Session `json:"session"`
		Account model.Account `json:"account"`
	}
	decodeBody(t, rec, &payload)
	assert.Len(t, payload.Session.Token, 64)
	assert.Equal(t, model.MethodGoogle, payload.Session.Method)
	assert.Equal(t, "Grace Hopper", payload.Account.Username)
	assert.Equal(t, "grace@example.com", payload.Account.Email)
}

func TestGoogleAuthenticateAcceptsBodyToken(t *testing.T) {
	ts := newTestServer()
	ts.verifier.claims = &googleauth.Claims{
		Subject: "sub-1",
		Email:   "grace@example.com",
	}

	rec := ts.do(t, http.MethodPost, "/authentication/google", "", map[string]string{
		"token": "google-id-token",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGoogleAuthenticateRejectsBadToken(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/authentication/google", "not-verifiable", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConfirmResolvesBearerToken(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")
	token := ts.seedSession(t, "acc-1")

	rec := ts.do(t, http.MethodPost, "/authentication/confirm", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Session model.Session `json:"session"`
		Account model.Account `json:"account"`
	}
	decodeBody(t, rec, &payload)
	assert.Equal(t, token, payload.Session.Token)
	assert.Equal(t, "ada", payload.Account.Username)
}

func TestConfirmRejectsUnknownToken(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/authentication/confirm", strings.Repeat("x", 64), nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")
	token := ts.seedSession(t, "acc-1")

	rec := ts.do(t, http.MethodPost, "/authentication/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/whoami", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterAndActivate(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/authentication/register", "", map[string]string{
		"email":    "grace@example.com",
		"username": "grace",
		"password": "hopper1906",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created model.Account
	decodeBody(t, rec, &created)
	assert.False(t, created.Active)
	assert.Empty(t, created.Password)

	require.Len(t, ts.mail.sent, 1)
	assert.Equal(t, "grace@example.com", ts.mail.sent[0].to)
	assert.Contains(t, ts.mail.sent[0].body, "http://cairn.test/authentication/activate/")

	stored, err := ts.accounts.AccountByID(t.Context(), created.ID)
	require.NoError(t, err)
	require.Len(t, stored.ActivationCode, 16)

	rec = ts.do(t, http.MethodGet, "/authentication/activate/"+stored.ActivationCode, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var activated model.Account
	decodeBody(t, rec, &activated)
	assert.True(t, activated.Active)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")

	rec := ts.do(t, http.MethodPost, "/authentication/register", "", map[string]string{
		"email":    "ada@example.com",
		"username": "ada2",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already taken")
}

func TestActivateUnknownCode(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodGet, "/authentication/activate/nosuchcode123456", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWhoami(t *testing.T) {
	ts := newTestServer()
	ts.seedAccount(t, "acc-1", "ada@example.com", "ada", "s3cret")
	token := ts.seedSession(t, "acc-1")

	rec := ts.do(t, http.MethodGet, "/whoami", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Account  model.Account `json:"account"`
		ClientIP string        `json:"clientIp"`
	}
	decodeBody(t, rec, &payload)
	assert.Equal(t, "acc-1", payload.Account.ID)
	assert.Equal(t, "198.51.100.7", payload.ClientIP)
}

func TestWhoamiWithoutTokenIsUnauthorized(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodGet, "/whoami", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
