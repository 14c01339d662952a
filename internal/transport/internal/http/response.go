package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	internaloauth "github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/transport/transportcore"
	"github.com/edugamja/gamja-mcp/pkg/oauth"
)

// errorResponse represents a JSON error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// errorResponder implements transportcore.ErrorResponder.
// It is stateless: the resource metadata URL in WWW-Authenticate
// challenges is derived per request from the request's own origin, so
// the responder stays correct behind proxies and across hostnames.
type errorResponder struct{}

// NewErrorResponder creates a new error responder.
func NewErrorResponder() transportcore.ErrorResponder {
	return &errorResponder{}
}

// Unauthorized sends a 401 Unauthorized response with a WWW-Authenticate
// header pointing at the protected resource metadata document per
// RFC 9728. The body carries the validation failure reason verbatim.
func (e *errorResponder) Unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	metadataURL := internaloauth.ResourceMetadataURL(internaloauth.ServerURL(r))

	w.Header().Set(oauth.HeaderWWWAuthenticate, internalerrors.WWWAuthenticate(metadataURL))
	w.Header().Set(oauth.HeaderContentType, oauth.ContentTypeJSON)
	w.WriteHeader(http.StatusUnauthorized)

	slog.Warn("unauthorized request",
		"error", err,
		"path", r.URL.Path,
	)

	message := "Unauthorized"
	if err != nil {
		message = err.Error()
	}
	writeJSON(w, errorResponse{Error: message})
}

// OAuthError sends an RFC 6749 error body with the error's HTTP status.
func (e *errorResponder) OAuthError(w http.ResponseWriter, oerr *internalerrors.OAuthError) {
	w.Header().Set(oauth.HeaderContentType, oauth.ContentTypeJSON)
	w.WriteHeader(oerr.Status)

	slog.Warn("oauth request failed",
		"error_code", oerr.ErrorCode,
		"description", oerr.ErrorDescription,
	)

	writeJSON(w, oerr)
}

// MethodNotAllowed sends a 405 response with an Allow header and a JSON
// body carrying the endpoint-specific message.
func (e *errorResponder) MethodNotAllowed(w http.ResponseWriter, allow, message string) {
	w.Header().Set("Allow", allow)
	w.Header().Set(oauth.HeaderContentType, oauth.ContentTypeJSON)
	w.WriteHeader(http.StatusMethodNotAllowed)

	writeJSON(w, errorResponse{Error: message})
}

// NotFound sends a 404 Not Found response with a JSON body.
func (e *errorResponder) NotFound(w http.ResponseWriter) {
	w.Header().Set(oauth.HeaderContentType, oauth.ContentTypeJSON)
	w.WriteHeader(http.StatusNotFound)

	writeJSON(w, errorResponse{Error: "Not found"})
}

// InternalError sends a 500 Internal Server Error response.
func (e *errorResponder) InternalError(w http.ResponseWriter, err error) {
	w.Header().Set(oauth.HeaderContentType, oauth.ContentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)

	slog.Error("internal server error", "error", err)

	writeJSON(w, errorResponse{Error: "Internal server error"})
}

// writeJSON encodes v to the response body, logging encode failures
// since headers are already written.
func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
