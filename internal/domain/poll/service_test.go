package poll

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type memoryPollRepo struct {
	mu     sync.Mutex
	polls  map[int64]*Poll
	nextID int64
}

func newMemoryPollRepo() *memoryPollRepo {
	return &memoryPollRepo{
		polls:  make(map[int64]*Poll),
		nextID: 1,
	}
}

func (r *memoryPollRepo) Create(ctx context.Context, p *Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	copyPoll := *p
	r.polls[p.ID] = &copyPoll
	return nil
}

func (r *memoryPollRepo) GetByID(ctx context.Context, id int64) (*Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[id]
	if !ok {
		return nil, ErrNotFound
	}
	copyPoll := *p
	return &copyPoll, nil
}

func (r *memoryPollRepo) List(ctx context.Context) ([]Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []Poll{}
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.polls[id]; ok {
			res = append(res, *p)
		}
	}
	return res, nil
}

func (r *memoryPollRepo) Close(ctx context.Context, id int64) (*Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Status != StatusOpen {
		return nil, ErrAlreadyClosed
	}
	p.Status = StatusClosed
	p.UpdatedAt = time.Now()
	copyPoll := *p
	return &copyPoll, nil
}

func (r *memoryPollRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[id]; !ok {
		return ErrNotFound
	}
	delete(r.polls, id)
	return nil
}

type memoryStatsRepo struct {
	mu    sync.Mutex
	votes map[int64]map[int64]int // poll id -> user id -> rating
}

func newMemoryStatsRepo() *memoryStatsRepo {
	return &memoryStatsRepo{votes: make(map[int64]map[int64]int)}
}

func (r *memoryStatsRepo) vote(pollID, userID int64, rating int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.votes[pollID] == nil {
		r.votes[pollID] = make(map[int64]int)
	}
	r.votes[pollID][userID] = rating
}

func (r *memoryStatsRepo) StatsByPoll(ctx context.Context) (map[int64]Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[int64]Stats)
	for pollID, votes := range r.votes {
		var sum int64
		for _, rating := range votes {
			sum += int64(rating)
		}
		if len(votes) == 0 {
			continue
		}
		res[pollID] = Stats{
			Count: int64(len(votes)),
			Avg:   float64(sum) / float64(len(votes)),
		}
	}
	return res, nil
}

func (r *memoryStatsRepo) RatingCounts(ctx context.Context, pollID int64) (map[int]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[int]int64)
	for _, rating := range r.votes[pollID] {
		res[rating]++
	}
	return res, nil
}

func (r *memoryStatsRepo) VotedPolls(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[int64]struct{})
	for pollID, votes := range r.votes {
		if _, ok := votes[userID]; ok {
			res[pollID] = struct{}{}
		}
	}
	return res, nil
}

func (r *memoryStatsRepo) UserRating(ctx context.Context, pollID, userID int64) (*int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rating, ok := r.votes[pollID][userID]
	if !ok {
		return nil, nil
	}
	return &rating, nil
}

func newTestService() (*Service, *memoryPollRepo, *memoryStatsRepo) {
	repo := newMemoryPollRepo()
	stats := newMemoryStatsRepo()
	return NewService(repo, stats), repo, stats
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Title: ""}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Title: "   "}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle for whitespace title, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Title: strings.Repeat("x", 81)}); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}

	longDesc := strings.Repeat("d", 501)
	if _, err := svc.Create(ctx, CreateInput{Title: "ok", Description: &longDesc}); !errors.Is(err, ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestCreateNormalizesAndZeroesStats(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	empty := "   "
	d, err := svc.Create(ctx, CreateInput{Title: "  Reading  ", Description: &empty, CreatedBy: 7})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	if d.Title != "Reading" {
		t.Fatalf("expected trimmed title, got %q", d.Title)
	}
	if d.Description != nil {
		t.Fatalf("expected blank description normalized to nil, got %q", *d.Description)
	}
	if d.Status != StatusOpen {
		t.Fatalf("expected new poll to be OPEN, got %s", d.Status)
	}
	if d.Count != 0 || d.Avg != 0 {
		t.Fatalf("expected zeroed stats, got count=%d avg=%v", d.Count, d.Avg)
	}
	if len(d.Distribution) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(d.Distribution))
	}
	for i, b := range d.Distribution {
		if b.Rating != i+1 || b.Count != 0 {
			t.Fatalf("unexpected bucket %+v at %d", b, i)
		}
	}
}

func TestCloseLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Title: "Lifecycle", CreatedBy: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	closed, err := svc.Close(ctx, created.ID)
	if err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if closed.Status != StatusClosed {
		t.Fatalf("expected CLOSED, got %s", closed.Status)
	}

	if _, err := svc.Close(ctx, created.ID); !errors.Is(err, ErrAlreadyClosed) {
		t.Fatalf("expected ErrAlreadyClosed on second close, got %v", err)
	}
	if _, err := svc.Close(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing poll, got %v", err)
	}
}

func TestListAnnotatesVotes(t *testing.T) {
	svc, _, stats := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{Title: "A", CreatedBy: 1})
	b, _ := svc.Create(ctx, CreateInput{Title: "B", CreatedBy: 1})

	stats.vote(a.ID, 10, 5)
	stats.vote(a.ID, 11, 4)

	items, err := svc.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 polls, got %d", len(items))
	}

	byID := make(map[int64]Summary)
	for _, it := range items {
		byID[it.ID] = it
	}

	got := byID[a.ID]
	if got.Count != 2 || got.Avg != 4.5 {
		t.Fatalf("expected count=2 avg=4.5, got count=%d avg=%v", got.Count, got.Avg)
	}
	if !got.UserHasVoted {
		t.Fatalf("expected user 10 marked as voted on poll A")
	}
	if byID[b.ID].UserHasVoted || byID[b.ID].Count != 0 || byID[b.ID].Avg != 0 {
		t.Fatalf("expected untouched poll B with zero stats, got %+v", byID[b.ID])
	}
}

func TestGetDetailDistribution(t *testing.T) {
	svc, _, stats := newTestService()
	ctx := context.Background()

	p, _ := svc.Create(ctx, CreateInput{Title: "Survey", CreatedBy: 1})
	stats.vote(p.ID, 10, 5)
	stats.vote(p.ID, 11, 4)

	d, err := svc.Get(ctx, p.ID, 11)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Count != 2 || d.Avg != 4.5 {
		t.Fatalf("expected count=2 avg=4.5, got count=%d avg=%v", d.Count, d.Avg)
	}

	want := []Bucket{{1, 0}, {2, 0}, {3, 0}, {4, 1}, {5, 1}}
	if len(d.Distribution) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(d.Distribution))
	}
	for i := range want {
		if d.Distribution[i] != want[i] {
			t.Fatalf("bucket %d: expected %+v, got %+v", i, want[i], d.Distribution[i])
		}
	}
	if d.UserVote == nil || *d.UserVote != 4 {
		t.Fatalf("expected user vote 4, got %v", d.UserVote)
	}

	other, err := svc.Get(ctx, p.ID, 99)
	if err != nil {
		t.Fatalf("get as non-voter: %v", err)
	}
	if other.UserVote != nil {
		t.Fatalf("expected no user vote for non-voter, got %v", *other.UserVote)
	}

	if _, err := svc.Get(ctx, 9999, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
