// Package server wires the HTTP routes, middleware, and lifecycle of the
// Slack bridge.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mdasif-me/slack-bot/internal/handlers"
	"github.com/mdasif-me/slack-bot/internal/metrics"
	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
)

const (
	// ServiceName identifies the service in health responses and logs.
	ServiceName = "slack-bridge"
	// ServiceVersion is the service version reported by /healthz.
	ServiceVersion = "1.0.0"

	// shutdownTimeout bounds the graceful drain on shutdown.
	shutdownTimeout = 10 * time.Second
)

// Config holds the configuration for creating a new Server.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// SlackToken is the Slack bot token for API authentication.
	SlackToken string
	// DefaultChannel is the fallback channel for webhook payloads.
	DefaultChannel string
	// RequestTimeout bounds each inbound request end to end.
	RequestTimeout time.Duration
}

// Server is the HTTP front of the bridge.
type Server struct {
	httpServer  *http.Server
	slackClient slackclient.ClientInterface
	logger      *zap.Logger
}

// New creates a new Server with a real Slack client built from the config.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	if cfg.SlackToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is required")
	}

	client := slackclient.NewClient(cfg.SlackToken)
	return NewWithClient(cfg, client, logger), nil
}

// NewWithClient creates a new Server with a custom Slack client.
// This is primarily useful for testing with mock clients.
func NewWithClient(cfg Config, client slackclient.ClientInterface, logger *zap.Logger) *Server {
	s := &Server{
		slackClient: client,
		logger:      logger,
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           http.TimeoutHandler(s.routes(cfg), timeout, `{"ok":false,"error":"timeout","message":"request timed out"}`),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          zap.NewStdLog(logger),
	}

	return s
}

// routes builds the route table and middleware chain.
func (s *Server) routes(cfg Config) http.Handler {
	resolver := slackclient.NewResolver(s.slackClient, s.logger)

	sendMessage := handlers.NewSendMessageHandler(s.slackClient, resolver, s.logger)
	history := handlers.NewHistoryHandler(s.slackClient, resolver, s.logger)
	listChannels := handlers.NewListChannelsHandler(s.slackClient, s.logger)
	resolveChannel := handlers.NewResolveChannelHandler(resolver, s.logger)
	webhook := handlers.NewWebhookHandler(s.slackClient, resolver, cfg.DefaultChannel, s.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/messages", sendMessage.Handle)
	mux.HandleFunc("GET /api/v1/channels", listChannels.Handle)
	mux.HandleFunc("GET /api/v1/channels/resolve", resolveChannel.Handle)
	mux.HandleFunc("GET /api/v1/channels/{id}/history", history.Handle)
	mux.HandleFunc("POST /webhook", webhook.Handle)
	mux.HandleFunc("GET /healthz", handlers.Health(ServiceName, ServiceVersion))
	mux.Handle("GET /metrics", metrics.Handler())

	return chain(mux, s.logger)
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Handler exposes the full route table. Useful for tests via httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
