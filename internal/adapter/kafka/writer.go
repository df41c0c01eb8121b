// Package kafka publishes query-log records to the query-log topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/aviation-weather-bot/internal/config"
	"github.com/couchcryptid/aviation-weather-bot/internal/domain"
)

// Writer produces query-log records to a Kafka topic. It implements
// bot.QueryLogger.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured query-log topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.QueryLogTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes one query record and writes it to the query-log topic.
func (w *Writer) Publish(ctx context.Context, rec domain.QueryRecord) error {
	msg, err := serializeToMessage(rec)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a QueryRecord into a Kafka message keyed by
// station, so per-station history lands on one partition.
func serializeToMessage(rec domain.QueryRecord) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize query record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.Station),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "outcome", Value: []byte(rec.Outcome)},
			{Key: "answered_at", Value: []byte(rec.AnsweredAt.Format(time.RFC3339))},
		},
	}, nil
}
