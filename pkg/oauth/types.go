// Package oauth provides shared OAuth 2.1 types and constants for the
// Gamja MCP gateway.
package oauth

// OAuth 2.1 scope constants for MCP operations.
const (
	// ScopeRead allows reading MCP resources.
	ScopeRead = "mcp:read"

	// ScopeWrite allows modifying MCP resources.
	ScopeWrite = "mcp:write"
)

// Scopes lists every scope this gateway supports, in the order they are
// advertised in metadata documents.
var Scopes = []string{ScopeRead, ScopeWrite}

// Token type constants as defined in RFC 6750.
const (
	// TokenTypeBearer is the OAuth 2.1 Bearer token type.
	TokenTypeBearer = "Bearer"
)

// Grant types as defined in OAuth 2.1.
const (
	// GrantTypeAuthorizationCode is the authorization code grant type.
	// This is the only grant type the gateway supports.
	GrantTypeAuthorizationCode = "authorization_code"
)

// Response types as defined in OAuth 2.1.
const (
	// ResponseTypeCode is the authorization code response type.
	// OAuth 2.1 only supports the code response type (implicit grant is removed).
	ResponseTypeCode = "code"
)

// PKCE code challenge methods as defined in RFC 7636.
// OAuth 2.1 requires S256 only (plain method is prohibited).
const (
	// CodeChallengeMethodS256 is the SHA-256 code challenge method.
	// This is the only allowed method in OAuth 2.1.
	CodeChallengeMethodS256 = "S256"
)

// Token endpoint auth methods as defined in RFC 7591.
const (
	// TokenEndpointAuthNone means the client is public and authenticates
	// with PKCE only. This is the default for dynamically registered clients.
	TokenEndpointAuthNone = "none"
)

// HTTP header names.
const (
	// HeaderAuthorization is the Authorization HTTP header name.
	HeaderAuthorization = "Authorization"

	// HeaderWWWAuthenticate is the WWW-Authenticate HTTP header name.
	HeaderWWWAuthenticate = "WWW-Authenticate"

	// HeaderContentType is the Content-Type HTTP header name.
	HeaderContentType = "Content-Type"
)

// Content type constants.
const (
	// ContentTypeJSON is the application/json content type.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is the application/x-www-form-urlencoded content type.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeHTML is the text/html content type with UTF-8 charset,
	// used for the login, home, and health pages.
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Well-known endpoint paths per RFC 9728 and RFC 8414.
const (
	// PathProtectedResourceMetadata serves the protected resource metadata.
	PathProtectedResourceMetadata = "/.well-known/oauth-protected-resource"

	// PathAuthorizationServerMetadata serves the authorization server metadata.
	PathAuthorizationServerMetadata = "/.well-known/oauth-authorization-server"
)

// OAuth endpoint paths served by the gateway.
const (
	// PathAuthorize is the authorization endpoint.
	PathAuthorize = "/oauth/authorize"

	// PathToken is the token endpoint.
	PathToken = "/oauth/token"

	// PathRegister is the dynamic client registration endpoint.
	PathRegister = "/oauth/register"

	// PathLegacyLogin is the pre-OAuth login endpoint that returns the
	// static bearer token.
	PathLegacyLogin = "/auth/login"
)
