package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/segmentio/kafka-go"
)

// Writer settings keep a publish off the request path: messages are queued
// and flushed by the writer in the background.
const (
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaWriteTimeout = 5 * time.Second
	kafkaMaxAttempts  = 3
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// AfterCommitFunc defers fn until the transaction bound to ctx commits.
// It runs fn immediately when ctx carries no transaction.
type AfterCommitFunc func(ctx context.Context, fn func())

// NewKafkaWriter returns an asynchronous writer for topic. Delivery failures
// are reported through the completion callback and logged.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: kafkaBatchTimeout,
		WriteTimeout: kafkaWriteTimeout,
		MaxAttempts:  kafkaMaxAttempts,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Failed to deliver user events", "count", len(messages), "error", err)
			}
		},
	}
}

// EventPublisher sends user lifecycle events to Kafka.
// A nil *EventPublisher is valid and drops every event.
type EventPublisher struct {
	writer      KafkaWriter
	afterCommit AfterCommitFunc
}

// NewEventPublisher returns a publisher writing to writer. When afterCommit
// is set, events are sent only once the request transaction has committed.
func NewEventPublisher(writer KafkaWriter, afterCommit AfterCommitFunc) *EventPublisher {
	return &EventPublisher{writer: writer, afterCommit: afterCommit}
}

// Publish sends an event of the given type for user. Failures are logged only.
// Events of a rolled back transaction are dropped.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, user models.User) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", user.ID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal user event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(user.ID, 10)),
		Value: data,
	}

	send := func() {
		// the request may already be answered when this runs
		if err := p.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
			logger.Log.Errorw("Failed to publish user event", "event_id", event.EventID, "type", eventType, "error", err)
			return
		}
		logger.Log.Infow("User event published", "event_id", event.EventID, "type", eventType, "user_id", user.ID)
	}

	if p.afterCommit == nil {
		send()
		return
	}
	p.afterCommit(ctx, send)
}
