package vote

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type voteKey struct {
	pollID int64
	userID int64
}

type memoryVoteRepo struct {
	mu     sync.Mutex
	status map[int64]string
	votes  map[voteKey]*Vote
}

func newMemoryVoteRepo() *memoryVoteRepo {
	return &memoryVoteRepo{
		status: make(map[int64]string),
		votes:  make(map[voteKey]*Vote),
	}
}

func (r *memoryVoteRepo) Upsert(ctx context.Context, v *Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := voteKey{v.PollID, v.UserID}
	if existing, ok := r.votes[key]; ok {
		existing.Rating = v.Rating
		existing.UpdatedAt = time.Now()
		v.CreatedAt = existing.CreatedAt
		v.UpdatedAt = existing.UpdatedAt
		return nil
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	copyVote := *v
	r.votes[key] = &copyVote
	return nil
}

func (r *memoryVoteRepo) PollStatus(ctx context.Context, pollID int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status, ok := r.status[pollID]
	if !ok {
		return "", ErrPollNotFound
	}
	return status, nil
}

func TestCastRejectsOutOfRangeRating(t *testing.T) {
	repo := newMemoryVoteRepo()
	repo.status[1] = "OPEN"
	svc := NewService(repo)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		if _, err := svc.Cast(ctx, 1, 42, rating); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	if len(repo.votes) != 0 {
		t.Fatalf("expected no votes persisted, got %d", len(repo.votes))
	}
}

func TestCastGatesOnPollState(t *testing.T) {
	repo := newMemoryVoteRepo()
	repo.status[1] = "CLOSED"
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Cast(ctx, 1, 42, 3); !errors.Is(err, ErrPollClosed) {
		t.Fatalf("expected ErrPollClosed, got %v", err)
	}
	if _, err := svc.Cast(ctx, 999, 42, 3); !errors.Is(err, ErrPollNotFound) {
		t.Fatalf("expected ErrPollNotFound, got %v", err)
	}
}

func TestCastUpsertsSingleRow(t *testing.T) {
	repo := newMemoryVoteRepo()
	repo.status[1] = "OPEN"
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Cast(ctx, 1, 42, 3)
	if err != nil {
		t.Fatalf("first cast: %v", err)
	}
	if first.Rating != 3 {
		t.Fatalf("expected rating 3, got %d", first.Rating)
	}

	// same rating again: idempotent, still one row
	if _, err := svc.Cast(ctx, 1, 42, 3); err != nil {
		t.Fatalf("repeat cast: %v", err)
	}
	if len(repo.votes) != 1 {
		t.Fatalf("expected one vote row, got %d", len(repo.votes))
	}

	second, err := svc.Cast(ctx, 1, 42, 5)
	if err != nil {
		t.Fatalf("update cast: %v", err)
	}
	if second.Rating != 5 {
		t.Fatalf("expected updated rating 5, got %d", second.Rating)
	}
	if len(repo.votes) != 1 {
		t.Fatalf("expected rating overwrite to keep one row, got %d", len(repo.votes))
	}

	stored := repo.votes[voteKey{1, 42}]
	if stored.Rating != 5 {
		t.Fatalf("expected stored rating 5, got %d", stored.Rating)
	}
	if !second.CreatedAt.Equal(stored.CreatedAt) {
		t.Fatalf("expected vote identity (created_at) preserved across updates")
	}

	// a second user on the same poll is a separate row
	if _, err := svc.Cast(ctx, 1, 43, 4); err != nil {
		t.Fatalf("second user cast: %v", err)
	}
	if len(repo.votes) != 2 {
		t.Fatalf("expected two vote rows, got %d", len(repo.votes))
	}
}
