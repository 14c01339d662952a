// Package oauth implements the gateway's OAuth 2.1 authorization
// subsystem: the authorize/login/token state machine with PKCE, dynamic
// client registration, and bearer-token validation, all backed by the
// key-value store capability from internal/store.
package oauth

import (
	"context"
	"time"
)

// Record lifetimes. The store enforces both as TTLs; AccessToken expiry
// is additionally checked explicitly (epoch milliseconds) by the token
// validator so a stale replica cannot extend a token's life unnoticed.
const (
	// AuthCodeTTL bounds the lifetime of an authorization code.
	AuthCodeTTL = 600 * time.Second

	// AccessTokenTTL bounds the lifetime of an access token.
	AccessTokenTTL = 3600 * time.Second
)

// Generated credential lengths, in characters of the random alphabet.
const (
	authCodeLength    = 32
	accessTokenLength = 48
	clientIDLength    = 24
)

// AuthorizationCode is the record stored between login submission and
// token exchange. Single-use: the code repository deletes it on the
// first redemption attempt, success or failure.
type AuthorizationCode struct {
	ClientID            string `json:"clientId"`
	RedirectURI         string `json:"redirectUri"`
	CodeChallenge       string `json:"codeChallenge"`
	CodeChallengeMethod string `json:"codeChallengeMethod"`
	Scope               string `json:"scope"`

	// ExpiresAt is epoch milliseconds. The store TTL is authoritative;
	// this field records the intended deadline for diagnostics.
	ExpiresAt int64 `json:"expiresAt"`
}

// AccessToken is the record created on successful code redemption.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
	ClientID    string `json:"clientId"`
	Scope       string `json:"scope"`

	// ExpiresAt is epoch milliseconds, compared explicitly by the
	// token validator.
	ExpiresAt int64 `json:"expiresAt"`
}

// Expired reports whether the token's deadline has passed at the given
// time.
func (t *AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt <= now.UnixMilli()
}

// ClientRegistration is the record created by dynamic client
// registration (RFC 7591). It persists without TTL. Field names are the
// registration wire format.
type ClientRegistration struct {
	ClientID                string   `json:"client_id"`
	ClientName              string   `json:"client_name,omitempty"`
	RedirectURIs            []string `json:"redirect_uris"`
	GrantTypes              []string `json:"grant_types"`
	ResponseTypes           []string `json:"response_types"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method"`
	ClientIDIssuedAt        int64    `json:"client_id_issued_at"`
}

// TokenValidator validates bearer tokens presented to the protected
// MCP endpoint. Implementations accept either the configured static
// legacy token or a live OAuth-issued access token.
type TokenValidator interface {
	// ValidateToken checks the presented token. It returns the access
	// token record for OAuth tokens, or nil for the static legacy
	// token. Validation failures return an error whose message is the
	// client-visible reason ("Token expired", "Invalid token").
	ValidateToken(ctx context.Context, token string) (*AccessToken, error)
}

// CredentialsProvider supplies the process-wide login credentials and
// the static legacy bearer token. It exists so tests can substitute
// values without environment mutation.
type CredentialsProvider interface {
	// Verify reports whether the username/password pair matches the
	// configured credentials.
	Verify(username, password string) bool

	// StaticToken returns the legacy bearer token, or "" if none is
	// configured.
	StaticToken() string
}

// staticCredentials is the config-backed CredentialsProvider.
type staticCredentials struct {
	username string
	password string
	token    string
}

// NewStaticCredentials creates a CredentialsProvider over fixed values.
func NewStaticCredentials(username, password, token string) CredentialsProvider {
	return &staticCredentials{username: username, password: password, token: token}
}

func (c *staticCredentials) Verify(username, password string) bool {
	return username == c.username && password == c.password
}

func (c *staticCredentials) StaticToken() string {
	return c.token
}
