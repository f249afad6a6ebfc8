// Package consumer tails roster events from Kafka for auditing.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"example.com/clubsignup/internal/events"
)

// Reader exposes the minimal kafka.Reader interface needed by the processor.
type Reader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Handler receives decoded roster events.
type Handler interface {
	Handle(context.Context, Message) error
}

// Message is a decoded roster event with its Kafka coordinates.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Event     events.RosterChanged
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report errors.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// Processor pulls messages from Kafka, decodes them, and dispatches to a Handler.
type Processor struct {
	reader  Reader
	handler Handler
	logger  zerolog.Logger
}

// NewProcessor constructs a Processor with the provided reader and handler.
func NewProcessor(reader Reader, handler Handler, opts ...Option) *Processor {
	p := &Processor{
		reader:  reader,
		handler: handler,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts a blocking loop that processes Kafka messages until the context is cancelled.
func (p *Processor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := p.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			p.logger.Warn().Err(err).Msg("fetch error")
			continue
		}

		decoded, decodeErr := decodeMessage(msg)
		if decodeErr != nil {
			p.logger.Error().
				Err(decodeErr).
				Str("topic", msg.Topic).
				Int("partition", msg.Partition).
				Int64("offset", msg.Offset).
				Msg("decode error")
			recordDecodeError(msg.Topic)
			// Malformed messages are committed so they cannot block the partition.
			if commitErr := p.reader.CommitMessages(ctx, msg); commitErr != nil {
				p.logger.Error().Err(commitErr).Msg("commit error after decode failure")
			}
			continue
		}

		if handleErr := p.handler.Handle(ctx, decoded); handleErr != nil {
			p.logger.Error().
				Err(handleErr).
				Str("event_type", string(decoded.Event.Type)).
				Str("activity", decoded.Event.Activity).
				Msg("handler error")
			recordHandlerError(decoded)
			continue
		}

		if commitErr := p.reader.CommitMessages(ctx, msg); commitErr != nil {
			p.logger.Error().Err(commitErr).Msg("commit error")
		} else {
			recordProcessed(decoded)
		}
	}
}

func decodeMessage(msg kafka.Message) (Message, error) {
	var evt events.RosterChanged
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return Message{}, fmt.Errorf("invalid payload: %w", err)
	}
	if evt.Type == "" {
		if header, ok := headerValue(msg, "event_type"); ok {
			evt.Type = events.Type(header)
		}
	}
	switch evt.Type {
	case events.TypeSignedUp, events.TypeRemoved:
	default:
		return Message{}, fmt.Errorf("unknown event type %q", evt.Type)
	}
	if evt.Activity == "" {
		return Message{}, errors.New("missing activity")
	}

	return Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
		Event:     evt,
	}, nil
}

func headerValue(msg kafka.Message, key string) ([]byte, bool) {
	for _, header := range msg.Headers {
		if header.Key == key {
			return header.Value, true
		}
	}
	return nil, false
}
