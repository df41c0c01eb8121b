// Package bot contains the platform-agnostic query pipeline: validate the
// station identifier, fetch bulletins, format the reply, send it, and record
// the query.
package bot

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/aviation-weather-bot/internal/domain"
	"github.com/couchcryptid/aviation-weather-bot/internal/observability"
)

// WeatherFetcher retrieves both bulletins for a station.
type WeatherFetcher interface {
	Fetch(ctx context.Context, station domain.Station) (domain.Report, error)
}

// Replier delivers one text reply for an inbound event's reply token.
type Replier interface {
	Reply(ctx context.Context, replyToken, text string) error
}

// QueryLogger publishes query records to the query-log topic.
type QueryLogger interface {
	Publish(ctx context.Context, rec domain.QueryRecord) error
}

// Handler runs the query pipeline for one text message at a time. It keeps
// no state between messages.
type Handler struct {
	fetcher  WeatherFetcher
	replier  Replier
	querylog QueryLogger // nil when query-log publishing is disabled
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Handler. Pass a nil querylog to disable query-log publishing.
func New(fetcher WeatherFetcher, replier Replier, querylog QueryLogger, logger *slog.Logger, metrics *observability.Metrics) *Handler {
	return &Handler{
		fetcher:  fetcher,
		replier:  replier,
		querylog: querylog,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness reports the handler ready: the pipeline is stateless and
// serves from the moment it is constructed.
func (h *Handler) CheckReadiness(_ context.Context) error {
	return nil
}

// HandleTextMessage answers one text message event. Every outcome, including
// validation and fetch failures, becomes a reply; only reply delivery itself
// can fail, and that is logged rather than retried because the token is
// single-use.
func (h *Handler) HandleTextMessage(ctx context.Context, replyToken, text string) {
	station, err := domain.ParseStation(text)
	if err != nil {
		h.metrics.Queries.WithLabelValues("invalid").Inc()
		h.logger.Debug("rejected message text", "error", err)
		h.reply(ctx, replyToken, UsageReply)
		return
	}

	report, fetchErr := h.fetcher.Fetch(ctx, station)

	var replyText string
	if fetchErr != nil {
		h.logger.Warn("weather lookup failed", "station", station, "error", fetchErr)
		replyText = FormatFailure(fetchErr)
	} else {
		replyText = FormatReport(report)
	}

	rec := domain.NewQueryRecord(station, report, fetchErr)
	h.metrics.Queries.WithLabelValues(rec.Outcome).Inc()

	h.reply(ctx, replyToken, replyText)
	h.publish(ctx, rec)
}

func (h *Handler) reply(ctx context.Context, replyToken, text string) {
	if err := h.replier.Reply(ctx, replyToken, text); err != nil {
		// The reply token is one-shot; once the call fails there is no
		// user-visible recovery. Log and move on.
		h.metrics.Replies.WithLabelValues("failed").Inc()
		h.logger.Error("reply delivery failed", "error", err)
		return
	}
	h.metrics.Replies.WithLabelValues("sent").Inc()
}

func (h *Handler) publish(ctx context.Context, rec domain.QueryRecord) {
	if h.querylog == nil {
		return
	}
	if err := h.querylog.Publish(ctx, rec); err != nil {
		// Telemetry only: a publish failure never affects the user reply.
		h.metrics.QueryLogErrors.Inc()
		h.logger.Warn("query-log publish failed", "station", rec.Station, "error", err)
		return
	}
	h.metrics.QueryLogPublished.Inc()
}
