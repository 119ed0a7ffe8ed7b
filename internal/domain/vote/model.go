package vote

import (
	"context"
	"time"
)

type Vote struct {
	PollID    int64     `json:"poll_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	// Upsert inserts the vote or overwrites the rating of an existing one,
	// keyed by (poll_id, user_id), as a single atomic statement.
	Upsert(ctx context.Context, v *Vote) error
	PollStatus(ctx context.Context, pollID int64) (string, error)
}
