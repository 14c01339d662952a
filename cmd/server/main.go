// Package main provides the entry point for the Gamja MCP gateway.
// It wires together all components using dependency injection and manages
// the server lifecycle with graceful shutdown.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/edugamja/gamja-mcp/internal/config"
	"github.com/edugamja/gamja-mcp/internal/content"
	"github.com/edugamja/gamja-mcp/internal/mcp"
	"github.com/edugamja/gamja-mcp/internal/oauth"
	"github.com/edugamja/gamja-mcp/internal/store"
	"github.com/edugamja/gamja-mcp/internal/tools"
	"github.com/edugamja/gamja-mcp/internal/transport"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slog.Info("server configuration loaded",
		"addr", cfg.Addr,
		"content_api_url", cfg.ContentAPIURL,
		"redis", cfg.RedisAddr != "",
	)

	kv, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to create store: %v", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			slog.Warn("store close failed", "error", err)
		}
	}()

	oauthServices := oauth.NewServices(&oauth.Config{
		StaticToken: cfg.StaticToken,
		Username:    cfg.Username,
		Password:    cfg.Password,
	}, kv)

	slog.Info("oauth services initialized",
		"static_token_configured", cfg.StaticToken != "",
	)

	mcpHandler, toolRegistry := mcp.NewMCPServices(&mcp.Config{
		ServerName:    "gamja-mcp-server",
		ServerVersion: "1.0.0",
	})

	contentClient := content.NewClient(cfg.ContentAPIURL, cfg.ContentAPIKey)
	if err := tools.Register(toolRegistry, contentClient); err != nil {
		log.Fatalf("failed to register tools: %v", err)
	}

	slog.Info("mcp services initialized",
		"tools", len(toolRegistry.ListTools()),
	)

	server, _, err := transport.NewTransportServices(&transport.Config{
		ServerConfig: cfg,
		Validator:    oauthServices.Validator,
		Authorizer:   oauthServices.Authorizer,
		Credentials:  oauthServices.Credentials,
		MCPHandler:   mcpHandler,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("failed to create transport services: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.Addr)
		if err := server.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping server gracefully...")
	case err := <-serverErrCh:
		slog.Error("server error", "error", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped successfully")
}

// newStore selects the OAuth state backend: Redis when configured,
// otherwise the in-process store. Single-instance deployments work fine
// on memory; anything load-balanced needs Redis so codes issued by one
// instance redeem on another.
func newStore(cfg *config.Config) (store.KV, error) {
	if cfg.RedisAddr == "" {
		slog.Info("using in-memory oauth store")
		return store.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	kv, err := store.NewRedis(ctx, store.RedisConfig{
		Addr:      cfg.RedisAddr,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("using redis oauth store", "addr", cfg.RedisAddr)
	return kv, nil
}
