package oauth

import (
	"net/http"

	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// ProtectedResourceMetadata is the RFC 9728 protected resource
// metadata document served from /.well-known/oauth-protected-resource.
type ProtectedResourceMetadata struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers"`
	ScopesSupported        []string `json:"scopes_supported"`
	BearerMethodsSupported []string `json:"bearer_methods_supported"`
	ResourceDocumentation  string   `json:"resource_documentation"`
}

// AuthorizationServerMetadata is the RFC 8414 authorization server
// metadata document served from /.well-known/oauth-authorization-server.
type AuthorizationServerMetadata struct {
	Issuer                            string   `json:"issuer"`
	AuthorizationEndpoint             string   `json:"authorization_endpoint"`
	TokenEndpoint                     string   `json:"token_endpoint"`
	RegistrationEndpoint              string   `json:"registration_endpoint"`
	ResponseTypesSupported            []string `json:"response_types_supported"`
	GrantTypesSupported               []string `json:"grant_types_supported"`
	CodeChallengeMethodsSupported     []string `json:"code_challenge_methods_supported"`
	TokenEndpointAuthMethodsSupported []string `json:"token_endpoint_auth_methods_supported"`
	ScopesSupported                   []string `json:"scopes_supported"`
}

// ServerURL derives the externally visible origin of the server from
// the incoming request, so metadata documents stay correct behind a
// reverse proxy and across deployments.
func ServerURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// NewProtectedResourceMetadata builds the resource metadata document
// for the given server origin.
func NewProtectedResourceMetadata(origin string) *ProtectedResourceMetadata {
	return &ProtectedResourceMetadata{
		Resource:               origin,
		AuthorizationServers:   []string{origin},
		ScopesSupported:        pkgoauth.Scopes,
		BearerMethodsSupported: []string{"header"},
		ResourceDocumentation:  origin + "/docs",
	}
}

// NewAuthorizationServerMetadata builds the authorization server
// metadata document for the given server origin.
func NewAuthorizationServerMetadata(origin string) *AuthorizationServerMetadata {
	return &AuthorizationServerMetadata{
		Issuer:                            origin,
		AuthorizationEndpoint:             origin + pkgoauth.PathAuthorize,
		TokenEndpoint:                     origin + pkgoauth.PathToken,
		RegistrationEndpoint:              origin + pkgoauth.PathRegister,
		ResponseTypesSupported:            []string{pkgoauth.ResponseTypeCode},
		GrantTypesSupported:               []string{pkgoauth.GrantTypeAuthorizationCode},
		CodeChallengeMethodsSupported:     []string{pkgoauth.CodeChallengeMethodS256},
		TokenEndpointAuthMethodsSupported: []string{pkgoauth.TokenEndpointAuthNone},
		ScopesSupported:                   pkgoauth.Scopes,
	}
}

// ResourceMetadataURL returns the absolute URL of the protected
// resource metadata document, used in WWW-Authenticate challenges.
func ResourceMetadataURL(origin string) string {
	return origin + pkgoauth.PathProtectedResourceMetadata
}
