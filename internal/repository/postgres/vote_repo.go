package postgres

import (
	"context"
	"database/sql"
	"errors"

	"polls-api/internal/domain/poll"
	"polls-api/internal/domain/vote"
)

type VoteRepo struct {
	db *sql.DB
}

func NewVoteRepo(db *sql.DB) *VoteRepo {
	return &VoteRepo{db: db}
}

// Upsert is a single atomic statement: the (poll_id, user_id) primary key
// makes concurrent casts from the same user converge on one row.
func (r *VoteRepo) Upsert(ctx context.Context, v *vote.Vote) error {
	query := `
        INSERT INTO votes (poll_id, user_id, rating)
        VALUES ($1, $2, $3)
        ON CONFLICT (poll_id, user_id) DO UPDATE
        SET rating = EXCLUDED.rating, updated_at = now()
        RETURNING created_at, updated_at
    `
	return r.db.QueryRowContext(ctx, query, v.PollID, v.UserID, v.Rating).
		Scan(&v.CreatedAt, &v.UpdatedAt)
}

func (r *VoteRepo) PollStatus(ctx context.Context, pollID int64) (string, error) {
	var status string
	err := r.db.QueryRowContext(ctx, `SELECT status FROM polls WHERE id = $1`, pollID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", vote.ErrPollNotFound
	}
	return status, err
}

// StatsByPoll returns raw count and mean per poll in one grouped query.
// Rounding is the aggregator's job, not the repository's.
func (r *VoteRepo) StatsByPoll(ctx context.Context) (map[int64]poll.Stats, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT poll_id, COUNT(*), AVG(rating)
        FROM votes
        GROUP BY poll_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[int64]poll.Stats)
	for rows.Next() {
		var pollID int64
		var st poll.Stats
		if err := rows.Scan(&pollID, &st.Count, &st.Avg); err != nil {
			return nil, err
		}
		res[pollID] = st
	}
	return res, rows.Err()
}

func (r *VoteRepo) RatingCounts(ctx context.Context, pollID int64) (map[int]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT rating, COUNT(*)
        FROM votes
        WHERE poll_id = $1
        GROUP BY rating
    `, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[int]int64)
	for rows.Next() {
		var rating int
		var c int64
		if err := rows.Scan(&rating, &c); err != nil {
			return nil, err
		}
		res[rating] = c
	}
	return res, rows.Err()
}

// VotedPolls returns the set of poll ids the user has voted on, so the list
// view resolves user_has_voted with one query instead of one per poll.
func (r *VoteRepo) VotedPolls(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT poll_id FROM votes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[int64]struct{})
	for rows.Next() {
		var pollID int64
		if err := rows.Scan(&pollID); err != nil {
			return nil, err
		}
		res[pollID] = struct{}{}
	}
	return res, rows.Err()
}

func (r *VoteRepo) UserRating(ctx context.Context, pollID, userID int64) (*int, error) {
	var rating int
	err := r.db.QueryRowContext(ctx, `
        SELECT rating FROM votes WHERE poll_id = $1 AND user_id = $2
    `, pollID, userID).Scan(&rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
