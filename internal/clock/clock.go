package clock

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// TickSource delivers a periodic signal to subscribers. The function
// returned by Subscribe cancels the subscription; once it returns, no
// further ticks are delivered to fn.
type TickSource interface {
	Subscribe(fn func()) (func(), error)
}

// Scheduler is the production TickSource, one gocron job per subscription.
type Scheduler struct {
	scheduler gocron.Scheduler
	interval  time.Duration
}

func NewScheduler(interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		interval = time.Second
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Scheduler{scheduler: s, interval: interval}, nil
}

func (s *Scheduler) Subscribe(fn func()) (func(), error) {
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(fn),
		gocron.WithName("tick"),
	)
	if err != nil {
		return nil, fmt.Errorf("create tick job: %w", err)
	}

	id := job.ID()
	return func() {
		_ = s.scheduler.RemoveJob(id)
	}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
