package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// OAuth 2.1 protocol error codes as defined in RFC 6749 Section 5.2
// and RFC 7591 Section 3.2.2.
const (
	// ErrorCodeInvalidRequest indicates the request is missing a required
	// parameter or is otherwise malformed.
	ErrorCodeInvalidRequest = "invalid_request"

	// ErrorCodeInvalidGrant indicates the authorization code is invalid,
	// expired, already consumed, or fails PKCE verification.
	ErrorCodeInvalidGrant = "invalid_grant"

	// ErrorCodeUnsupportedGrantType indicates a grant type other than
	// authorization_code was requested.
	ErrorCodeUnsupportedGrantType = "unsupported_grant_type"

	// ErrorCodeInvalidClientMetadata indicates dynamic client registration
	// metadata failed validation.
	ErrorCodeInvalidClientMetadata = "invalid_client_metadata"
)

// OAuthError represents an RFC 6749 compliant OAuth error response.
// It carries the HTTP status to respond with alongside the wire-level
// error code and description.
type OAuthError struct {
	// Status is the HTTP status code for the error response.
	// Not part of the wire format.
	Status int `json:"-"`

	// ErrorCode is the OAuth error code (e.g., "invalid_grant").
	ErrorCode string `json:"error"`

	// ErrorDescription is a human-readable description of the error.
	ErrorDescription string `json:"error_description,omitempty"`
}

// Error implements the error interface.
func (e *OAuthError) Error() string {
	if e.ErrorDescription != "" {
		return fmt.Sprintf("%s: %s", e.ErrorCode, e.ErrorDescription)
	}
	return e.ErrorCode
}

// NewOAuthError creates a new OAuthError with the given HTTP status,
// error code, and description.
func NewOAuthError(status int, errorCode, errorDescription string) *OAuthError {
	return &OAuthError{
		Status:           status,
		ErrorCode:        errorCode,
		ErrorDescription: errorDescription,
	}
}

// InvalidRequest returns a 400 invalid_request error.
func InvalidRequest(description string) *OAuthError {
	return NewOAuthError(http.StatusBadRequest, ErrorCodeInvalidRequest, description)
}

// InvalidGrant returns a 400 invalid_grant error.
func InvalidGrant(description string) *OAuthError {
	return NewOAuthError(http.StatusBadRequest, ErrorCodeInvalidGrant, description)
}

// UnsupportedGrantType returns a 400 unsupported_grant_type error.
func UnsupportedGrantType(description string) *OAuthError {
	return NewOAuthError(http.StatusBadRequest, ErrorCodeUnsupportedGrantType, description)
}

// InvalidClientMetadata returns a 400 invalid_client_metadata error.
func InvalidClientMetadata(description string) *OAuthError {
	return NewOAuthError(http.StatusBadRequest, ErrorCodeInvalidClientMetadata, description)
}

// WWWAuthenticate formats a WWW-Authenticate header value per RFC 6750
// with the resource_metadata parameter per RFC 9728. The header points
// clients at the protected resource metadata document for discovery.
//
// Example output:
//
//	Bearer resource_metadata="https://example.com/.well-known/oauth-protected-resource"
func WWWAuthenticate(resourceMetadataURL string) string {
	if resourceMetadataURL == "" {
		return "Bearer"
	}
	return fmt.Sprintf(`Bearer resource_metadata="%s"`, escapeQuotes(resourceMetadataURL))
}

// escapeQuotes escapes double quotes in strings for use in header values.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
