package events

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-currency-display/internal/logger"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaSink forwards bus events to a Kafka topic.
type KafkaSink struct {
	writer KafkaWriter
}

// NewKafkaSink creates a sink; a nil writer turns Handle into a no-op.
func NewKafkaSink(writer KafkaWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

// Handle publishes one event. Failures are logged and swallowed so a broker
// outage never affects page rendering.
func (s *KafkaSink) Handle(ctx context.Context, e Event) {
	if s.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", e.ID, "type", e.Type)
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", e.ID, "error", err)
		return
	}

	key := e.VisitorID
	if key == "" {
		key = e.Type
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", e.ID, "type", e.Type, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", e.ID, "type", e.Type)
}

// Close closes the underlying writer.
func (s *KafkaSink) Close() error {
	if s.writer == nil {
		return nil
	}
	return s.writer.Close()
}
