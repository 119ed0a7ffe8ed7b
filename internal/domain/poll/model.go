package poll

import (
	"context"
	"time"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

const (
	MaxTitleLen       = 80
	MaxDescriptionLen = 500
)

type Poll struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary is the list-view projection: poll fields plus aggregates and
// whether the requesting user has voted.
type Summary struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Avg          float64 `json:"avg"`
	Count        int64   `json:"count"`
	UserHasVoted bool    `json:"user_has_voted"`
}

// Detail is the detail-view projection with the full rating distribution
// and the requesting user's own vote, if any.
type Detail struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Status       string    `json:"status"`
	CreatedBy    int64     `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	Avg          float64   `json:"avg"`
	Count        int64     `json:"count"`
	Distribution []Bucket  `json:"distribution"`
	UserVote     *int      `json:"user_vote,omitempty"`
}

type Repository interface {
	Create(ctx context.Context, p *Poll) error
	GetByID(ctx context.Context, id int64) (*Poll, error)
	List(ctx context.Context) ([]Poll, error)
	Close(ctx context.Context, id int64) (*Poll, error)
	Delete(ctx context.Context, id int64) error
}

// StatsRepository reads vote aggregates. Implemented by the vote repository,
// aggregates are never stored, always recomputed from the votes table.
type StatsRepository interface {
	StatsByPoll(ctx context.Context) (map[int64]Stats, error)
	RatingCounts(ctx context.Context, pollID int64) (map[int]int64, error)
	VotedPolls(ctx context.Context, userID int64) (map[int64]struct{}, error)
	UserRating(ctx context.Context, pollID, userID int64) (*int, error)
}
