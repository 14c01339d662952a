package oauth

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 24, 32, 48} {
		got, err := RandomString(n)
		if err != nil {
			t.Fatalf("RandomString(%d) error: %v", n, err)
		}
		if len(got) != n {
			t.Errorf("RandomString(%d) length = %d", n, len(got))
		}
		for _, c := range got {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("RandomString(%d) produced %q outside alphabet", n, c)
			}
		}
	}
}

func TestRandomStringUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := RandomString(32)
		if err != nil {
			t.Fatalf("RandomString error: %v", err)
		}
		if seen[s] {
			t.Fatalf("duplicate random string %q", s)
		}
		seen[s] = true
	}
}

func TestRandomStringInvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		if _, err := RandomString(n); err == nil {
			t.Errorf("RandomString(%d) expected error", n)
		}
	}
}
