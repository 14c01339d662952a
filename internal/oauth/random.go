package oauth

import (
	"crypto/rand"
	"fmt"
)

// alphabet is the character set for generated codes, tokens, and client
// ids: uppercase, lowercase, digits.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a string of length n sampled from the alphabet,
// one CSPRNG byte per character reduced modulo the alphabet size. The
// reduction is slightly biased (62 does not divide 256); with ~5.95
// bits of entropy per character the bias is accepted for this threat
// model rather than paying for rejection sampling.
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
