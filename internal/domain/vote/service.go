package vote

import (
	"context"
	"errors"
)

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrPollClosed    = errors.New("poll is not open for voting")
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
)

const (
	minRating  = 1
	maxRating  = 5
	statusOpen = "OPEN"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Cast records or updates the user's vote on a poll. At most one vote per
// (user, poll) exists; a repeat cast overwrites the rating and keeps the
// vote identity. Votes are only accepted while the poll is OPEN.
func (s *Service) Cast(ctx context.Context, pollID, userID int64, rating int) (*Vote, error) {
	if rating < minRating || rating > maxRating {
		return nil, ErrInvalidRating
	}

	status, err := s.repo.PollStatus(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if status != statusOpen {
		return nil, ErrPollClosed
	}

	v := &Vote{
		PollID: pollID,
		UserID: userID,
		Rating: rating,
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
