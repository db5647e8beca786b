package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Context keys for storing user information
type contextKey string

const userIDKey contextKey = "user_id"

// SessionCookieName is the cookie carrying browser sessions
const SessionCookieName = "murmur_session"

// AuthMiddleware authenticates requests. Session issuance happens outside
// this service; we only verify credentials it minted: a Bearer JWT (HS256,
// shared session secret) for API clients, or a session cookie for browser
// clients.
type AuthMiddleware struct {
	cookieStore *sessions.CookieStore
	logger      *slog.Logger
	tokenSecret []byte
}

// NewAuthMiddleware creates a new auth middleware. tokenSecret signs session
// JWTs; cookieSecret signs browser session cookies.
func NewAuthMiddleware(tokenSecret, cookieSecret string, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		tokenSecret: []byte(tokenSecret),
		cookieStore: sessions.NewCookieStore([]byte(cookieSecret)),
		logger:      logger,
	}
}

// RequireAuth ensures the caller holds a valid session and injects the user
// id into the request context; otherwise responds 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := GetUserID(r)
		if userID == "" {
			userID = m.resolveUser(r)
		}
		if userID == "" {
			writeAuthError(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the user id when a valid session is present but lets
// anonymous requests through. Installed router-wide ahead of the rate
// limiter; an earlier resolution in the chain is reused, not repeated.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserID(r) == "" {
			if userID := m.resolveUser(r); userID != "" {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// resolveUser extracts the caller's user id from the Bearer token or the
// session cookie. Empty string means unauthenticated.
func (m *AuthMiddleware) resolveUser(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ""
		}
		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		tok, err := jwt.Parse([]byte(raw),
			jwt.WithKey(jwa.HS256, m.tokenSecret),
			jwt.WithValidate(true),
		)
		if err != nil {
			m.logger.Debug("session token rejected",
				"path", r.URL.Path,
				"error", err)
			return ""
		}
		return tok.Subject()
	}

	session, err := m.cookieStore.Get(r, SessionCookieName)
	if err != nil {
		return ""
	}
	userID, _ := session.Values["user_id"].(string)
	return userID
}

// GetUserID extracts the authenticated user's id from the request context.
// Returns empty string if not authenticated.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// GetViewerID returns the authenticated user id as an optional pointer, the
// shape the feed visibility rules work with
func GetViewerID(r *http.Request) *string {
	if userID := GetUserID(r); userID != "" {
		return &userID
	}
	return nil
}

// SetTestUserID sets the user id in the context for tests only
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"A valid session is required"}`))
}
