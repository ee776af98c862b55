// Package scheduler drives recurring newsletter generation: on every tick
// it enumerates all topics, decides which are due, and runs the pipeline
// for each due topic with per-topic failure isolation.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Atyab124/Automated-Newsletter/internal/domain"
)

// TopicStore provides topic enumeration and lookup.
type TopicStore interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Get(ctx context.Context, id int64) (*domain.Topic, error)
}

// PipelineRunner executes the full generation pipeline for one topic.
type PipelineRunner interface {
	Run(ctx context.Context, topicID int64, topicName string) (*domain.RunStats, error)
}

type Scheduler struct {
	topics   TopicStore
	runner   PipelineRunner
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

func NewScheduler(topics TopicStore, runner PipelineRunner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		topics:   topics,
		runner:   runner,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches the recurring due-check on a background goroutine and
// returns immediately. Calling Start while running is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})

	go s.loop(s.stop)
	s.logger.Info("scheduler started", "interval", s.interval)
}

// Stop halts future due-checks. Idempotent. A check already mid-execution
// is not interrupted; its per-topic runs complete or fail on their own.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stop)
	s.running = false
	s.logger.Info("scheduler stopped")
}

// Running reports whether the recurring check is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// RunManual synchronously executes the pipeline for one topic regardless
// of due status. A missing topic fails with ErrTopicNotFound before any
// side effect; pipeline failures are returned to the caller directly.
func (s *Scheduler) RunManual(ctx context.Context, topicID int64) (*domain.RunStats, error) {
	topic, err := s.topics.Get(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return s.runner.Run(ctx, topic.ID, topic.Name)
}

func (s *Scheduler) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.runDueTopics(context.Background())
		}
	}
}

// runDueTopics executes one due-check tick. A failure in one topic's run
// never prevents the remaining topics from being checked or run.
func (s *Scheduler) runDueTopics(ctx context.Context) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		s.logger.Error("failed to list topics", "error", err)
		return
	}

	now := s.now()
	due := 0
	for _, topic := range topics {
		if !IsDue(topic, now) {
			continue
		}
		due++

		if _, err := s.runner.Run(ctx, topic.ID, topic.Name); err != nil {
			s.logger.Error("pipeline run failed",
				"topic_id", topic.ID,
				"topic", topic.Name,
				"error", err,
			)
		}
	}

	s.logger.Info("due-check completed", "topics", len(topics), "due", due)
}
