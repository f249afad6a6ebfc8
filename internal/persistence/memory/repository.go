// Package memory holds the process-lifetime activity table.
package memory

import (
	"context"
	"fmt"
	"sync"

	"example.com/clubsignup/internal/domain"
)

// Repository stores activities in memory. The activity set is fixed at
// construction; only rosters change afterwards.
type Repository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewRepository constructs a repository populated with the supplied activities.
func NewRepository(seed []domain.Activity) (*Repository, error) {
	repo := &Repository{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		if _, exists := repo.activities[activity.Name]; exists {
			return nil, fmt.Errorf("duplicate activity %q", activity.Name)
		}
		clone := activity.Clone()
		repo.activities[activity.Name] = &clone
	}
	return repo, nil
}

// List implements domain.Repository.
func (r *Repository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// AddParticipant implements domain.Repository.
func (r *Repository) AddParticipant(ctx context.Context, name, email string) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, fmt.Errorf("%w: %s", domain.ErrActivityNotFound, name)
	}
	activity.Participants = append(activity.Participants, email)
	return activity.Clone(), nil
}

// RemoveParticipant implements domain.Repository. Only the first matching entry is removed.
func (r *Repository) RemoveParticipant(ctx context.Context, name, email string) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, fmt.Errorf("%w: %s", domain.ErrActivityNotFound, name)
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return activity.Clone(), nil
		}
	}
	return domain.Activity{}, fmt.Errorf("%w: %s in %s", domain.ErrParticipantNotEnrolled, email, name)
}
