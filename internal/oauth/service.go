package oauth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	internalerrors "github.com/edugamja/gamja-mcp/internal/errors"
	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// AuthorizeRequest carries the parameters of a successful login
// submission on the authorize endpoint.
type AuthorizeRequest struct {
	ClientID            string
	RedirectURI         string
	CodeChallenge       string
	CodeChallengeMethod string
	Scope               string
}

// TokenRequest carries the parameters of a token exchange, read from
// either a JSON or a form-encoded body.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	Code         string `json:"code"`
	CodeVerifier string `json:"code_verifier"`
	ClientID     string `json:"client_id"`
	RedirectURI  string `json:"redirect_uri"`
}

// TokenResponse is the successful token exchange response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// RegistrationRequest is the dynamic client registration request body
// per RFC 7591. redirect_uris is the only required field.
type RegistrationRequest struct {
	ClientName              string   `json:"client_name"`
	RedirectURIs            []string `json:"redirect_uris" validate:"required,min=1"`
	GrantTypes              []string `json:"grant_types"`
	ResponseTypes           []string `json:"response_types"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method"`
}

// Authorizer implements the authorization-code state machine:
// code issuance on login, code-for-token exchange with PKCE, and
// dynamic client registration.
type Authorizer struct {
	codes    *CodeStore
	tokens   *TokenStore
	clients  *ClientStore
	validate *validator.Validate
	now      func() time.Time
}

// NewAuthorizer creates an Authorizer over the typed repositories.
func NewAuthorizer(codes *CodeStore, tokens *TokenStore, clients *ClientStore) *Authorizer {
	if codes == nil || tokens == nil || clients == nil {
		panic("repositories cannot be nil")
	}
	return &Authorizer{
		codes:    codes,
		tokens:   tokens,
		clients:  clients,
		validate: validator.New(),
		now:      time.Now,
	}
}

// IssueCode generates an authorization code for an authenticated login
// and stores its record under the code TTL. The redirect URI is stored
// as presented and is not checked against any registered client record.
func (a *Authorizer) IssueCode(ctx context.Context, req AuthorizeRequest) (string, error) {
	code, err := RandomString(authCodeLength)
	if err != nil {
		return "", internalerrors.New("oauth", "IssueCode", internalerrors.ErrInternal, err)
	}

	rec := &AuthorizationCode{
		ClientID:            req.ClientID,
		RedirectURI:         req.RedirectURI,
		CodeChallenge:       req.CodeChallenge,
		CodeChallengeMethod: req.CodeChallengeMethod,
		Scope:               req.Scope,
		ExpiresAt:           a.now().Add(AuthCodeTTL).UnixMilli(),
	}
	if err := a.codes.Put(ctx, code, rec); err != nil {
		return "", err
	}

	slog.Info("authorization code issued", "client_id", req.ClientID)
	return code, nil
}

// Exchange redeems an authorization code for an access token. The code
// is consumed on every attempt: a PKCE or client-binding failure still
// burns it, so the exchange cannot be retried.
func (a *Authorizer) Exchange(ctx context.Context, req TokenRequest) (*TokenResponse, *internalerrors.OAuthError) {
	if req.GrantType != pkgoauth.GrantTypeAuthorizationCode {
		return nil, internalerrors.UnsupportedGrantType("Only authorization_code is supported")
	}
	if req.Code == "" || req.CodeVerifier == "" {
		return nil, internalerrors.InvalidRequest("Missing code or code_verifier")
	}

	rec, err := a.codes.Take(ctx, req.Code)
	if err != nil {
		if errors.Is(err, internalerrors.ErrNotFound) {
			return nil, internalerrors.InvalidGrant("Invalid or expired authorization code")
		}
		slog.Error("code lookup failed", "error", err)
		return nil, internalerrors.InvalidGrant("Invalid or expired authorization code")
	}

	if !VerifyPKCE(req.CodeVerifier, rec.CodeChallenge, rec.CodeChallengeMethod) {
		return nil, internalerrors.InvalidGrant("PKCE verification failed")
	}

	// Optional client binding: when the caller supplies client_id or
	// redirect_uri they must match the stored record exactly.
	if req.ClientID != "" && req.ClientID != rec.ClientID {
		return nil, internalerrors.InvalidGrant("Client ID mismatch")
	}
	if req.RedirectURI != "" && req.RedirectURI != rec.RedirectURI {
		return nil, internalerrors.InvalidGrant("Redirect URI mismatch")
	}

	token, err := RandomString(accessTokenLength)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		return nil, internalerrors.InvalidGrant("Invalid or expired authorization code")
	}

	tokenRec := &AccessToken{
		AccessToken: token,
		ClientID:    rec.ClientID,
		Scope:       rec.Scope,
		ExpiresAt:   a.now().Add(AccessTokenTTL).UnixMilli(),
	}
	if err := a.tokens.Put(ctx, token, tokenRec); err != nil {
		slog.Error("token store failed", "error", err)
		return nil, internalerrors.InvalidGrant("Invalid or expired authorization code")
	}

	slog.Info("access token issued", "client_id", rec.ClientID, "scope", rec.Scope)
	return &TokenResponse{
		AccessToken: token,
		TokenType:   pkgoauth.TokenTypeBearer,
		ExpiresIn:   int(AccessTokenTTL / time.Second),
		Scope:       rec.Scope,
	}, nil
}

// Register performs dynamic client registration. Missing redirect_uris
// is the only rejection; everything else is defaulted.
func (a *Authorizer) Register(ctx context.Context, req RegistrationRequest) (*ClientRegistration, *internalerrors.OAuthError) {
	if err := a.validate.Struct(req); err != nil {
		return nil, internalerrors.InvalidClientMetadata("redirect_uris is required")
	}

	suffix, err := RandomString(clientIDLength)
	if err != nil {
		return nil, internalerrors.InvalidClientMetadata("client id generation failed")
	}
	clientID := "client_" + suffix

	rec := &ClientRegistration{
		ClientID:                clientID,
		ClientName:              req.ClientName,
		RedirectURIs:            req.RedirectURIs,
		GrantTypes:              req.GrantTypes,
		ResponseTypes:           req.ResponseTypes,
		TokenEndpointAuthMethod: req.TokenEndpointAuthMethod,
		ClientIDIssuedAt:        a.now().Unix(),
	}
	if len(rec.GrantTypes) == 0 {
		rec.GrantTypes = []string{pkgoauth.GrantTypeAuthorizationCode}
	}
	if len(rec.ResponseTypes) == 0 {
		rec.ResponseTypes = []string{pkgoauth.ResponseTypeCode}
	}
	if rec.TokenEndpointAuthMethod == "" {
		rec.TokenEndpointAuthMethod = pkgoauth.TokenEndpointAuthNone
	}

	if err := a.clients.Put(ctx, clientID, rec); err != nil {
		slog.Error("client registration store failed", "error", err)
		return nil, internalerrors.InvalidClientMetadata("registration could not be stored")
	}

	slog.Info("client registered", "client_id", clientID, "client_name", rec.ClientName)
	return rec, nil
}
