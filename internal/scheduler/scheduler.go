package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"weatherguide/internal/collector"
)

// Scheduler periodically runs the dataset collector for the configured cities.
type Scheduler struct {
	scheduler *gocron.Scheduler
	collector *collector.Collector
	cities    []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(cities []string, interval time.Duration, c *collector.Collector) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		collector: c,
		cities:    cities,
		interval:  interval,
	}
}

// Start schedules the periodic collection job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no cities configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running dataset collection job")

		// Generous bound: the run is rate limited to roughly one city per second.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := s.collector.Run(ctx, s.cities); err != nil {
			log.Printf("scheduler: collection run failed: %v", err)
		}

		log.Println("scheduler: completed dataset collection job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
