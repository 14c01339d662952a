package oauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
)

var (
	// ErrInvalidToken is returned when a presented token is unknown.
	ErrInvalidToken = errors.New("Invalid token")
	// ErrTokenExpired is returned when a presented token has expired.
	ErrTokenExpired = errors.New("Token expired")
)

// Validator checks bearer tokens against the static legacy token and
// the live token store. It implements TokenValidator.
type Validator struct {
	tokens      *TokenStore
	staticToken string
	now         func() time.Time
}

// NewValidator creates a Validator. staticToken may be empty, in which
// case only OAuth-issued tokens are accepted.
func NewValidator(tokens *TokenStore, staticToken string) *Validator {
	if tokens == nil {
		panic("token store cannot be nil")
	}
	return &Validator{
		tokens:      tokens,
		staticToken: staticToken,
		now:         time.Now,
	}
}

// ValidateToken checks the presented token. The static legacy token is
// checked first and short-circuits the store lookup. Expired tokens are
// deleted as they are discovered.
func (v *Validator) ValidateToken(ctx context.Context, token string) (*AccessToken, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	if v.staticToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(v.staticToken)) == 1 {
		return nil, nil
	}

	rec, err := v.tokens.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, internalerrors.ErrNotFound) {
			slog.Error("token lookup failed", "error", err)
		}
		return nil, ErrInvalidToken
	}

	if rec.Expired(v.now()) {
		if err := v.tokens.Delete(ctx, token); err != nil {
			slog.Warn("expired token cleanup failed", "error", err)
		}
		return nil, ErrTokenExpired
	}

	return rec, nil
}
