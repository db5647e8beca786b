package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenSecret = "test-token-secret"

func signedToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()

	tok, err := jwt.NewBuilder().
		Subject(subject).
		IssuedAt(time.Now().Add(-time.Minute)).
		Expiration(time.Now().Add(expiresIn)).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte(secret)))
	require.NoError(t, err)
	return string(signed)
}

func echoUserHandler(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	m := NewAuthMiddleware(testTokenSecret, "cookie-secret", nil)

	var captured string
	handler := m.RequireAuth(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testTokenSecret, "user-1", time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", captured)
}

func TestRequireAuth_RejectsBadCredentials(t *testing.T) {
	m := NewAuthMiddleware(testTokenSecret, "cookie-secret", nil)
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for unauthenticated requests")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signedToken(t, "some-other-secret", "user-1", time.Hour)},
		{"expired token", "Bearer " + signedToken(t, testTokenSecret, "user-1", -time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Unauthorized")
		})
	}
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	m := NewAuthMiddleware(testTokenSecret, "cookie-secret", nil)

	// Mint a browser session the way the issuing service would
	store := sessions.NewCookieStore([]byte("cookie-secret"))
	mintReq := httptest.NewRequest(http.MethodGet, "/", nil)
	mintRec := httptest.NewRecorder()
	session, err := store.Get(mintReq, SessionCookieName)
	require.NoError(t, err)
	session.Values["user_id"] = "user-2"
	require.NoError(t, session.Save(mintReq, mintRec))
	cookies := mintRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var captured string
	handler := m.RequireAuth(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-2", captured)
}

func TestOptionalAuth_AllowsAnonymous(t *testing.T) {
	m := NewAuthMiddleware(testTokenSecret, "cookie-secret", nil)

	var viewer *string
	handler := m.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer = GetViewerID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, viewer)
}

func TestOptionalAuth_LoadsViewerWhenPresent(t *testing.T) {
	m := NewAuthMiddleware(testTokenSecret, "cookie-secret", nil)

	var viewer *string
	handler := m.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer = GetViewerID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testTokenSecret, "user-3", time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, viewer)
	assert.Equal(t, "user-3", *viewer)
}
