package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/refet-weather-etl/internal/config"
	"github.com/couchcryptid/refet-weather-etl/internal/domain"
)

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic. Messages
// are hashed by station key so each station's output stays ordered.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes normalized stations to the sink topic in
// a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, stations []domain.NormalizedStation) error {
	if len(stations) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(stations))
	for i := range stations {
		msg, err := serializeToMessage(stations[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d messages: %w", len(msgs), err)
	}
	w.logger.Debug("batch loaded", "size", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a NormalizedStation into a Kafka message keyed
// by station.
func serializeToMessage(st domain.NormalizedStation) (kafkago.Message, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize station %s: %w", st.StationKey, err)
	}
	return kafkago.Message{
		Key:   []byte(st.StationKey),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station", Value: []byte(st.StationKey)},
			{Key: "record_count", Value: []byte(strconv.Itoa(len(st.Records)))},
			{Key: "processed_at", Value: []byte(st.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
