package workers

import (
	"context"
	"sort"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/rs/zerolog/log"
)

type GoalLister interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error)
}

type StreakRecorder interface {
	SetStreak(ctx context.Context, userID string, streak int) error
}

type StreakJob struct {
	UserID string
}

// StreakWorker keeps a profile's headline streak in line with its goals.
type StreakWorker struct {
	goals    GoalLister
	recorder StreakRecorder
	jobs     chan StreakJob
	now      func() time.Time
}

func NewStreakWorker(goals GoalLister, recorder StreakRecorder) *StreakWorker {
	return &StreakWorker{
		goals:    goals,
		recorder: recorder,
		jobs:     make(chan StreakJob, 100),
		now:      time.Now,
	}
}

// Run processes jobs until ctx is cancelled.
func (w *StreakWorker) Run(ctx context.Context) error {
	log.Info().Msg("streak worker started")
	for {
		select {
		case job := <-w.jobs:
			w.processJob(ctx, job)
		case <-ctx.Done():
			log.Info().Msg("streak worker shutting down")
			return nil
		}
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() { _ = w.Run(ctx) }()
}

// Drain processes every queued job on the caller's goroutine and returns once
// the queue is empty. Short-lived processes call it instead of Run.
func (w *StreakWorker) Drain(ctx context.Context) {
	for {
		select {
		case job := <-w.jobs:
			w.processJob(ctx, job)
		default:
			return
		}
	}
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Warn().Str("user_id", userID).Msg("streak worker queue full, dropping job")
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	goals, err := w.goals.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", job.UserID).Msg("streak worker: fetching goals")
		return
	}

	today := w.now()
	best := 0
	for _, g := range goals {
		current, _ := calculateStreaks(g.CompletedDates, today)
		best = max(best, current)
	}

	if err := w.recorder.SetStreak(ctx, job.UserID, best); err != nil {
		log.Error().Err(err).Str("user_id", job.UserID).Msg("streak worker: saving streak")
		return
	}
	log.Debug().Str("user_id", job.UserID).Int("streak", best).Msg("streak updated")
}

// calculateStreaks walks the completed days of one goal across months. The
// current streak stays alive while its latest day is today or yesterday.
func calculateStreaks(dates map[string]bool, now time.Time) (int, int) {
	var sortedDates []time.Time
	for key, done := range dates {
		if !done {
			continue
		}
		t, err := time.Parse(domain.DateLayout, key)
		if err != nil {
			continue
		}
		sortedDates = append(sortedDates, t)
	}

	if len(sortedDates) == 0 {
		return 0, 0
	}

	sort.Slice(sortedDates, func(i, j int) bool {
		return sortedDates[i].After(sortedDates[j])
	})

	today, _ := time.Parse(domain.DateLayout, domain.DateKey(now))
	currentStreak := 0
	diff := today.Sub(sortedDates[0]).Hours() / 24

	if diff >= 0 && diff <= 1 {
		currentStreak = 1
		for i := 0; i < len(sortedDates)-1; i++ {
			if sortedDates[i].Sub(sortedDates[i+1]).Hours() == 24 {
				currentStreak++
			} else {
				break
			}
		}
	}

	longestStreak := 0
	tempStreak := 1
	for i := 0; i < len(sortedDates)-1; i++ {
		if sortedDates[i].Sub(sortedDates[i+1]).Hours() == 24 {
			tempStreak++
		} else {
			longestStreak = max(longestStreak, tempStreak)
			tempStreak = 1
		}
	}
	longestStreak = max(longestStreak, tempStreak)

	return currentStreak, longestStreak
}
