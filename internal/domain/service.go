// Package domain defines the business logic for the club signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"example.com/clubsignup/internal/events"
	"example.com/clubsignup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotEnrolled is returned when removing an email that is not on the roster.
	ErrParticipantNotEnrolled = errors.New("participant not enrolled")
)

// Repository captures roster storage operations. Implementations return
// ErrActivityNotFound and ErrParticipantNotEnrolled unwrapped or wrapped with %w.
type Repository interface {
	List(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, activity, email string) (Activity, error)
	RemoveParticipant(ctx context.Context, activity, email string) (Activity, error)
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithLogger overrides the logger used to report publish failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source stamped on roster events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates roster workflows.
type Service struct {
	repo      Repository
	publisher events.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService constructs a Service. A nil publisher disables roster events.
func NewService(repo Repository, publisher events.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	s := &Service{
		repo:      repo,
		publisher: publisher,
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// SignUp appends email to the roster of the named activity. Duplicates and
// signups past capacity are accepted.
func (s *Service) SignUp(ctx context.Context, activity, email string) (string, error) {
	updated, err := s.repo.AddParticipant(ctx, activity, email)
	if err != nil {
		observability.RecordRosterRejected(observability.OperationSignup, rejectReason(err))
		return "", err
	}

	observability.RecordRosterChange(observability.OperationSignup, updated.Name, len(updated.Participants))
	s.publish(ctx, events.TypeSignedUp, updated, email)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// RemoveParticipant deletes one occurrence of email from the named activity.
func (s *Service) RemoveParticipant(ctx context.Context, activity, email string) (string, error) {
	updated, err := s.repo.RemoveParticipant(ctx, activity, email)
	if err != nil {
		observability.RecordRosterRejected(observability.OperationRemoval, rejectReason(err))
		return "", err
	}

	observability.RecordRosterChange(observability.OperationRemoval, updated.Name, len(updated.Participants))
	s.publish(ctx, events.TypeRemoved, updated, email)
	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}

func (s *Service) publish(ctx context.Context, eventType events.Type, activity Activity, email string) {
	evt := events.RosterChanged{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Activity:   activity.Name,
		Email:      email,
		RosterSize: len(activity.Participants),
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		observability.RecordPublishFailure(string(eventType))
		s.logger.Error().
			Err(err).
			Str("event_id", evt.EventID).
			Str("event_type", string(eventType)).
			Str("activity", activity.Name).
			Msg("roster event publish failed")
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrParticipantNotEnrolled):
		return "not_enrolled"
	default:
		return "error"
	}
}
