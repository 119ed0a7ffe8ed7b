package worker

import (
	"context"
	"log/slog"

	"polls-api/internal/metrics"
)

// VoteEvent is published by the vote handler after a successful cast or update.
type VoteEvent struct {
	PollID int64
	UserID int64
	Rating int
}

// StatsWorker drains vote events and feeds the Prometheus vote counter.
// Aggregates served to clients are always recomputed from the votes table,
// the worker only maintains observability counters.
type StatsWorker struct {
	Ch <-chan VoteEvent
}

func NewStatsWorker(ch <-chan VoteEvent) *StatsWorker {
	return &StatsWorker{Ch: ch}
}

func (w *StatsWorker) Run(ctx context.Context) {
	slog.Info("stats worker started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("stats worker stopped")
			return
		case ev := <-w.Ch:
			metrics.IncVote(ev.Rating)
			slog.Debug("vote event", "poll_id", ev.PollID, "user_id", ev.UserID, "rating", ev.Rating)
		}
	}
}
