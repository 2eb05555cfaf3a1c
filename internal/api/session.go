package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieName carries the signed session token.
	CookieName = "smartlearn_session"
	// HeaderSessionID lets API clients name their session directly.
	HeaderSessionID = "X-Session-ID"

	issuer          = "smartlearn"
	maxSessionIDLen = 128
)

type contextKey string

const sessionKey contextKey = "session_id"

// SessionID returns the session attached by the session middleware.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}

// Sessions issues and verifies session cookies. The cookie holds an
// HS256 JWT whose subject is the session id.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

// Issue signs a token for sessionID.
func (s *Sessions) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the session id in a token issued by Issue.
func (s *Sessions) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// Middleware resolves the caller's session. The X-Session-ID header wins;
// otherwise a valid cookie is used, and failing that a new session is
// started and its cookie set.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := strings.TrimSpace(r.Header.Get(HeaderSessionID)); h != "" {
			if len(h) > maxSessionIDLen {
				writeError(w, r, http.StatusBadRequest, CodeValidation, "Session id is too long")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, h)))
			return
		}

		if c, err := r.Cookie(CookieName); err == nil {
			if id, err := s.Verify(c.Value); err == nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
				return
			}
		}

		id := uuid.NewString()
		token, err := s.Issue(id)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, CodeInternal, "Could not start session")
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(s.ttl.Seconds()),
			HttpOnly: true,
			Secure:   s.secure,
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
	})
}
