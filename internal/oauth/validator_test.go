package oauth

import (
	"context"
	"errors"
	"testing"
	"time"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/store"
)

func TestValidateTokenStatic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tokens := NewTokenStore(store.NewMemoryWithClock(time.Now))
	v := NewValidator(tokens, "legacy-static-token")

	rec, err := v.ValidateToken(ctx, "legacy-static-token")
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if rec != nil {
		t.Errorf("static token returned record %+v, want nil", rec)
	}
}

func TestValidateTokenOAuth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tokens := NewTokenStore(store.NewMemoryWithClock(time.Now))
	v := NewValidator(tokens, "legacy-static-token")

	stored := &AccessToken{
		AccessToken: "live-token",
		ClientID:    "client_abc",
		Scope:       "mcp:read",
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
	}
	if err := tokens.Put(ctx, "live-token", stored); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	rec, err := v.ValidateToken(ctx, "live-token")
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if rec == nil || rec.ClientID != "client_abc" {
		t.Errorf("ValidateToken record = %+v", rec)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tokens := NewTokenStore(store.NewMemoryWithClock(time.Now))
	v := NewValidator(tokens, "legacy-static-token")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty token", token: "", wantErr: ErrInvalidToken},
		{name: "unknown token", token: "nobody-issued-this", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := v.ValidateToken(ctx, tt.token); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateToken(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tokens := NewTokenStore(store.NewMemoryWithClock(time.Now))
	v := NewValidator(tokens, "")

	// Record-level expiry precedes store-level TTL here, so the record
	// is still readable but logically dead.
	stored := &AccessToken{
		AccessToken: "stale-token",
		ClientID:    "client_abc",
		ExpiresAt:   time.Now().Add(-time.Minute).UnixMilli(),
	}
	if err := tokens.Put(ctx, "stale-token", stored); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	if _, err := v.ValidateToken(ctx, "stale-token"); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ValidateToken error = %v, want ErrTokenExpired", err)
	}

	// Rejection deletes the stale record.
	if _, err := tokens.Get(ctx, "stale-token"); !errors.Is(err, internalerrors.ErrNotFound) {
		t.Errorf("Get after expiry error = %v, want ErrNotFound", err)
	}
}

func TestValidateTokenNoStaticConfigured(t *testing.T) {
	t.Parallel()

	tokens := NewTokenStore(store.NewMemoryWithClock(time.Now))
	v := NewValidator(tokens, "")

	if _, err := v.ValidateToken(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken error = %v, want ErrInvalidToken", err)
	}
}

func TestAccessTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name      string
		expiresAt int64
		want      bool
	}{
		{name: "future", expiresAt: now.Add(time.Hour).UnixMilli(), want: false},
		{name: "past", expiresAt: now.Add(-time.Hour).UnixMilli(), want: true},
		{name: "exact boundary counts as expired", expiresAt: now.UnixMilli(), want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok := &AccessToken{ExpiresAt: tt.expiresAt}
			if got := tok.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
