package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/clubsignup/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository([]domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			MaxParticipants: 20,
		},
	})
	require.NoError(t, err)
	return repo
}

func TestNewRepositoryRejectsDuplicates(t *testing.T) {
	_, err := NewRepository([]domain.Activity{{Name: "Art Club"}, {Name: "Art Club"}})
	require.Error(t, err)
}

func TestNewRepositoryCopiesSeed(t *testing.T) {
	seed := []domain.Activity{{Name: "Art Club", Participants: []string{"a@mergington.edu"}}}
	repo, err := NewRepository(seed)
	require.NoError(t, err)

	seed[0].Participants[0] = "mutated"

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu"}, list["Art Club"].Participants)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	chess := list["Chess Club"]
	chess.Participants[0] = "someone.else@mergington.edu"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", again["Chess Club"].Participants[0])
}

func TestAddParticipantAppends(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	updated, err := repo.AddParticipant(ctx, "Programming Class", "test.student@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"test.student@mergington.edu"}, updated.Participants)

	// duplicates are accepted
	updated, err = repo.AddParticipant(ctx, "Programming Class", "test.student@mergington.edu")
	require.NoError(t, err)
	require.Len(t, updated.Participants, 2)
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.AddParticipant(ctx, "Underwater Basket Weaving", "x@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRemoveParticipantRemovesOneOccurrence(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.AddParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	updated, err := repo.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"daniel@mergington.edu", "michael@mergington.edu"}, updated.Participants)
}

func TestRemoveParticipantErrors(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.RemoveParticipant(ctx, "Chess Club", "nobody@mergington.edu")
	require.ErrorIs(t, err, domain.ErrParticipantNotEnrolled)
	require.NotErrorIs(t, err, domain.ErrActivityNotFound)

	_, err = repo.RemoveParticipant(ctx, "Nope", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestConcurrentSignupsAreAllRecorded(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.AddParticipant(ctx, "Programming Class", fmt.Sprintf("student%d@mergington.edu", i))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list["Programming Class"].Participants, n)
}
