// Package http exposes the webhook callback endpoint together with health,
// readiness, and metrics routes.
package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/aviation-weather-bot/internal/adapter/line"
	"github.com/couchcryptid/aviation-weather-bot/internal/observability"
)

// EventHandler answers one text message event from a verified webhook.
type EventHandler interface {
	HandleTextMessage(ctx context.Context, replyToken, text string)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the /callback webhook plus health, readiness, and metrics
// HTTP endpoints.
type Server struct {
	httpServer    *http.Server
	channelSecret string
	events        EventHandler
	logger        *slog.Logger
	metrics       *observability.Metrics
}

// NewServer creates the bot's HTTP server.
func NewServer(addr, channelSecret string, events EventHandler, ready ReadinessChecker, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		channelSecret: channelSecret,
		events:        events,
		logger:        logger,
		metrics:       metrics,
	}

	mux.HandleFunc("POST /callback", s.handleCallback)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleCallback verifies, parses, and dispatches one webhook delivery.
// Events are handled synchronously before the 200 is written, so the reply
// has been attempted by the time the platform sees the acknowledgement.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.metrics.WebhookRequests.WithLabelValues("bad_payload").Inc()
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if !line.ValidateSignature(s.channelSecret, body, r.Header.Get(line.SignatureHeader)) {
		s.metrics.WebhookRequests.WithLabelValues("bad_signature").Inc()
		s.logger.Warn("webhook signature mismatch", "remote", r.RemoteAddr)
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	events, err := line.ParseWebhook(body)
	if err != nil {
		s.metrics.WebhookRequests.WithLabelValues("bad_payload").Inc()
		s.logger.Warn("malformed webhook envelope", "error", err)
		http.Error(w, "malformed payload", http.StatusBadRequest)
		return
	}
	s.metrics.WebhookRequests.WithLabelValues("ok").Inc()

	for _, ev := range events {
		switch {
		case ev.IsTextMessage():
			s.metrics.EventsReceived.WithLabelValues("text").Inc()
			s.events.HandleTextMessage(r.Context(), ev.ReplyToken, ev.Message.Text)
		case ev.ReplyToken == "":
			// Endpoint-verification events carry no reply token.
			s.metrics.EventsReceived.WithLabelValues("verification").Inc()
		default:
			s.metrics.EventsReceived.WithLabelValues("ignored").Inc()
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK")) //nolint:errcheck // best-effort acknowledgement
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
