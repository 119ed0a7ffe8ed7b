package poll

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotFound           = errors.New("poll not found")
	ErrAlreadyClosed      = errors.New("poll already closed")
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrTitleTooLong       = errors.New("title must be at most 80 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters")
)

type Service struct {
	repo  Repository
	stats StatsRepository
}

func NewService(repo Repository, stats StatsRepository) *Service {
	return &Service{repo: repo, stats: stats}
}

type CreateInput struct {
	Title       string
	Description *string
	CreatedBy   int64
}

// Create validates the input defensively (the HTTP layer validates request
// bodies too) and persists a new poll, always in status OPEN.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Detail, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return nil, ErrTitleTooLong
	}

	description := normalizeDescription(in.Description)
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}

	p := &Poll{
		Title:       title,
		Description: description,
		Status:      StatusOpen,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &Detail{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Status:       p.Status,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		Distribution: ZeroDistribution(),
	}, nil
}

// List returns all polls annotated with aggregates and whether userID has
// voted on each. Vote membership comes from a single query, not one per poll.
func (s *Service) List(ctx context.Context, userID int64) ([]Summary, error) {
	polls, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.StatsByPoll(ctx)
	if err != nil {
		return nil, err
	}
	voted, err := s.stats.VotedPolls(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]Summary, 0, len(polls))
	for _, p := range polls {
		st := stats[p.ID]
		_, hasVoted := voted[p.ID]
		res = append(res, Summary{
			ID:           p.ID,
			Title:        p.Title,
			Status:       p.Status,
			Avg:          RoundAvg(st.Avg),
			Count:        st.Count,
			UserHasVoted: hasVoted,
		})
	}
	return res, nil
}

// Get returns the poll detail with the full five-bucket distribution and
// the requesting user's vote, if any.
func (s *Service) Get(ctx context.Context, id, userID int64) (*Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.stats.RatingCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	userVote, err := s.stats.UserRating(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	st := StatsFrom(counts)
	return &Detail{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Status:       p.Status,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		Avg:          st.Avg,
		Count:        st.Count,
		Distribution: DistributionFrom(counts),
		UserVote:     userVote,
	}, nil
}

// Close transitions an OPEN poll to CLOSED. The transition is one-way: a
// second close fails with ErrAlreadyClosed, there is no reopen.
func (s *Service) Close(ctx context.Context, id int64) (*Poll, error) {
	return s.repo.Close(ctx, id)
}

// Delete removes a poll. Its votes go with it via the cascade constraint.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalizeDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
