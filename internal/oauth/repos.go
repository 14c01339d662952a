package oauth

import (
	"context"
	"encoding/json"
	"errors"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	"github.com/edugamja/gamja-mcp/internal/store"
)

// Key prefixes disambiguating the three entity kinds inside the flat
// key-value namespace. They are an implementation detail of the
// repositories; nothing outside this file builds raw keys.
const (
	codeKeyPrefix   = "code:"
	tokenKeyPrefix  = "token:"
	clientKeyPrefix = "client:"
)

// CodeStore is the typed repository for authorization codes. It owns
// the single-use invariant: codes can only be read through Take, which
// deletes them on every redemption attempt.
type CodeStore struct {
	kv store.KV
}

// NewCodeStore creates a CodeStore over the given KV capability.
func NewCodeStore(kv store.KV) *CodeStore {
	return &CodeStore{kv: kv}
}

// Put stores a code record under its store-enforced TTL.
func (s *CodeStore) Put(ctx context.Context, code string, rec *AuthorizationCode) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return internalerrors.New("oauth", "CodeStore.Put", internalerrors.ErrInternal, err)
	}
	if err := s.kv.Put(ctx, codeKeyPrefix+code, data, AuthCodeTTL); err != nil {
		return internalerrors.New("oauth", "CodeStore.Put", internalerrors.ErrInternal, err)
	}
	return nil
}

// Take fetches a code record and deletes it, regardless of what the
// caller does next. Two concurrent Takes against a store without
// conditional writes can both observe the record before either delete
// lands; that race is a property of the store, not of this repository
// (see the exchange tests).
func (s *CodeStore) Take(ctx context.Context, code string) (*AuthorizationCode, error) {
	key := codeKeyPrefix + code

	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, internalerrors.New("oauth", "CodeStore.Take", internalerrors.ErrNotFound, err)
		}
		return nil, internalerrors.New("oauth", "CodeStore.Take", internalerrors.ErrInternal, err)
	}

	// Consumed whether or not redemption succeeds.
	if err := s.kv.Delete(ctx, key); err != nil {
		return nil, internalerrors.New("oauth", "CodeStore.Take", internalerrors.ErrInternal, err)
	}

	var rec AuthorizationCode
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, internalerrors.New("oauth", "CodeStore.Take", internalerrors.ErrInternal, err)
	}
	return &rec, nil
}

// TokenStore is the typed repository for access tokens.
type TokenStore struct {
	kv store.KV
}

// NewTokenStore creates a TokenStore over the given KV capability.
func NewTokenStore(kv store.KV) *TokenStore {
	return &TokenStore{kv: kv}
}

// Put stores a token record under its store-enforced TTL.
func (s *TokenStore) Put(ctx context.Context, token string, rec *AccessToken) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return internalerrors.New("oauth", "TokenStore.Put", internalerrors.ErrInternal, err)
	}
	if err := s.kv.Put(ctx, tokenKeyPrefix+token, data, AccessTokenTTL); err != nil {
		return internalerrors.New("oauth", "TokenStore.Put", internalerrors.ErrInternal, err)
	}
	return nil
}

// Get returns the token record, or a not-found error.
func (s *TokenStore) Get(ctx context.Context, token string) (*AccessToken, error) {
	data, err := s.kv.Get(ctx, tokenKeyPrefix+token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, internalerrors.New("oauth", "TokenStore.Get", internalerrors.ErrNotFound, err)
		}
		return nil, internalerrors.New("oauth", "TokenStore.Get", internalerrors.ErrInternal, err)
	}

	var rec AccessToken
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, internalerrors.New("oauth", "TokenStore.Get", internalerrors.ErrInternal, err)
	}
	return &rec, nil
}

// Delete removes a token record. Used for lazy expiry on rejection.
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.kv.Delete(ctx, tokenKeyPrefix+token); err != nil {
		return internalerrors.New("oauth", "TokenStore.Delete", internalerrors.ErrInternal, err)
	}
	return nil
}

// ClientStore is the typed repository for dynamic client registrations.
// Records persist without TTL; no deletion path exists.
type ClientStore struct {
	kv store.KV
}

// NewClientStore creates a ClientStore over the given KV capability.
func NewClientStore(kv store.KV) *ClientStore {
	return &ClientStore{kv: kv}
}

// Put stores a registration record without expiry.
func (s *ClientStore) Put(ctx context.Context, clientID string, rec *ClientRegistration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return internalerrors.New("oauth", "ClientStore.Put", internalerrors.ErrInternal, err)
	}
	if err := s.kv.Put(ctx, clientKeyPrefix+clientID, data, 0); err != nil {
		return internalerrors.New("oauth", "ClientStore.Put", internalerrors.ErrInternal, err)
	}
	return nil
}

// Get returns the registration record, or a not-found error.
func (s *ClientStore) Get(ctx context.Context, clientID string) (*ClientRegistration, error) {
	data, err := s.kv.Get(ctx, clientKeyPrefix+clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, internalerrors.New("oauth", "ClientStore.Get", internalerrors.ErrNotFound, err)
		}
		return nil, internalerrors.New("oauth", "ClientStore.Get", internalerrors.ErrInternal, err)
	}

	var rec ClientRegistration
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, internalerrors.New("oauth", "ClientStore.Get", internalerrors.ErrInternal, err)
	}
	return &rec, nil
}
