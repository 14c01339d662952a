package oauth

import (
	"github.com/edugamja/gamja-mcp/internal/store"
)

// Config holds the configuration needed to construct OAuth services.
type Config struct {
	// StaticToken is the legacy pre-shared bearer token. Empty disables
	// the static bypass.
	StaticToken string

	// Username and Password gate the authorize endpoint's login form.
	Username string
	Password string
}

// Services bundles the constructed OAuth components for injection into
// the transport layer.
type Services struct {
	Authorizer  *Authorizer
	Validator   TokenValidator
	Credentials CredentialsProvider
	Codes       *CodeStore
	Tokens      *TokenStore
	Clients     *ClientStore
}

// NewServices creates all OAuth services over the given key-value
// store. This is a convenience function for dependency injection.
func NewServices(cfg *Config, kv store.KV) *Services {
	codes := NewCodeStore(kv)
	tokens := NewTokenStore(kv)
	clients := NewClientStore(kv)

	return &Services{
		Authorizer:  NewAuthorizer(codes, tokens, clients),
		Validator:   NewValidator(tokens, cfg.StaticToken),
		Credentials: NewStaticCredentials(cfg.Username, cfg.Password, cfg.StaticToken),
		Codes:       codes,
		Tokens:      tokens,
		Clients:     clients,
	}
}
