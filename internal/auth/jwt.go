package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = time.Hour

var (
	// ErrMissingToken means no bearer token was presented at all.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken means the token is malformed or its signature does not match.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token was valid but its expiry has passed.
	ErrExpiredToken = errors.New("expired token")
)

// Principal represents the authenticated caller decoded from a JWT.
type Principal struct {
	UserID   int64
	Username string
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 JWT for the given user, expiring after TokenTTL.
func IssueToken(secret string, userID int64, username string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := tokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseFromHeader extracts and validates a Bearer JWT from an Authorization
// header value. An absent header, a non-Bearer scheme, or an empty token all
// yield ErrMissingToken; a present token that fails verification yields
// ErrInvalidToken or ErrExpiredToken.
func ParseFromHeader(header, secret string) (*Principal, error) {
	if strings.TrimSpace(header) == "" {
		return nil, ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrMissingToken
	}
	tokenStr := strings.TrimSpace(parts[1])
	if tokenStr == "" {
		return nil, ErrMissingToken
	}
	return ParseToken(tokenStr, secret)
}

// ParseToken validates and extracts the principal from a JWT string.
func ParseToken(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	c, _ := tok.Claims.(*tokenClaims)
	if c == nil || c.Username == "" || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Principal{UserID: id, Username: c.Username}, nil
}
