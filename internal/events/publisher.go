package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Publisher delivers roster events downstream.
type Publisher interface {
	Publish(ctx context.Context, evt RosterChanged) error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

// Publish performs no action.
func (NoopPublisher) Publish(context.Context, RosterChanged) error { return nil }

// MessageWriter is the subset of kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes roster events to Kafka, lazily creating one writer per topic.
type KafkaPublisher struct {
	brokers []string
	topic   string

	mu        sync.Mutex
	writers   map[string]MessageWriter
	newWriter func(brokers []string, topic string) MessageWriter
}

// NewKafkaPublisher creates a KafkaPublisher targeting topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers:   brokers,
		topic:     topic,
		writers:   make(map[string]MessageWriter),
		newWriter: newKafkaWriter,
	}
}

func newKafkaWriter(brokers []string, topic string) MessageWriter {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
	}
}

// Publish encodes evt as JSON keyed by activity so a roster's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, evt RosterChanged) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s: %w", evt.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.Activity),
		Value: payload,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
			{Key: "event_id", Value: []byte(evt.EventID)},
		},
	}
	if err := p.writerForTopic(p.topic).WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s to %s: %w", evt.Type, p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) writerForTopic(topic string) MessageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}
	writer := p.newWriter(p.brokers, topic)
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
