package oauth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	pkgoauth "github.com/edugamja/gamja-mcp/pkg/oauth"
)

// VerifyPKCE checks a code_verifier against the stored code_challenge
// per RFC 7636. Only the S256 method is accepted; any other method
// fails verification regardless of verifier content, per OAuth 2.1.
func VerifyPKCE(codeVerifier, codeChallenge, method string) bool {
	if method != pkgoauth.CodeChallengeMethodS256 {
		return false
	}
	computed := ComputeCodeChallenge(codeVerifier)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(codeChallenge)) == 1
}

// ComputeCodeChallenge derives the S256 challenge for a verifier:
// SHA-256, then base64url without padding.
func ComputeCodeChallenge(codeVerifier string) string {
	sum := sha256.Sum256([]byte(codeVerifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
