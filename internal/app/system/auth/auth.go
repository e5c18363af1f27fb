// Package auth implements bearer-token authentication: issuing and
// verifying the signed JWT that carries {id, role, name}, and the
// middleware that loads the token's user into the request context.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SessionUser is what the bearer token carries and what handlers read
// from the request context.
type SessionUser struct {
	ID   string
	Name string
	Role string
}

// Claims is the JWT payload. Subject holds the user's ObjectID hex.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user from context and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user into the request context, bypassing token
// verification. For handler tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// TokenManager signs and verifies bearer tokens with an HMAC secret.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

// NewTokenManager builds a TokenManager. The secret must be non-empty;
// short secrets are accepted with a warning so local dev keeps working.
// Expiry is used as given; the configuration layer supplies the 24h
// default.
func NewTokenManager(secret string, expiry time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty; provide >=32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	return &TokenManager{secret: []byte(secret), expiry: expiry, log: logger}, nil
}

// Issue signs a token for the given user.
func (tm *TokenManager) Issue(userID, name, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
		},
		Name: name,
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Verify parses and validates a token string, returning the user it carries.
func (tm *TokenManager) Verify(raw string) (*SessionUser, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("malformed claims")
	}
	return &SessionUser{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}

// LoadBearerUser injects the token's user into context when a valid
// Authorization header is present. Requests without a token pass
// through unauthenticated; RequireSignedIn handles rejection.
func (tm *TokenManager) LoadBearerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := bearerToken(r); raw != "" {
			if u, err := tm.Verify(raw); err == nil {
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn rejects requests without a verifiable bearer token.
// The message distinguishes a missing header from a bad token, matching
// what the SPA's interceptor expects.
func (tm *TokenManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		if bearerToken(r) == "" {
			httpx.Error(w, http.StatusUnauthorized, "No token")
			return
		}
		httpx.Error(w, http.StatusUnauthorized, "Invalid token")
	})
}

// RequireRole rejects authenticated callers whose role is not allowed.
// Unauthenticated callers get 401 semantics, wrong role gets 403.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				httpx.Error(w, http.StatusUnauthorized, "No token")
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				httpx.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
