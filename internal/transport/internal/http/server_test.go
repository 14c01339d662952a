package http

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/edugamja/gamja-mcp/internal/config"
)

// newTestServer creates a test server with the given address and handler.
func newTestServer(addr string, handler http.Handler) *server {
	cfg := &config.Config{
		Addr:         addr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	router := NewRouter()
	router.Handle("/", handler)
	return NewServer(cfg, router).(*server)
}

func TestServer_StartAndShutdown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Port 0 picks a random available port
	server := newTestServer(":0", handler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	time.Sleep(50 * time.Millisecond)

	addr := server.Addr()
	if addr == "" {
		t.Fatal("Server did not return an address")
	}

	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Fatalf("Could not connect to server: %v", err)
	}
	_ = conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown error: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Start returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Start did not return after shutdown")
	}
}

func TestServer_AddrBeforeStart(t *testing.T) {
	t.Parallel()

	server := newTestServer(":9090", http.NotFoundHandler())

	if got := server.Addr(); got != ":9090" {
		t.Errorf("Addr = %q, want :9090", got)
	}
}
