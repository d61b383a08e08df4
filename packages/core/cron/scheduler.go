package cron

import (
	"log"
	"time"

	"core/session"

	"github.com/robfig/cron/v3"
)

// sessionIdleTTL is how long a session may sit unused before the janitor
// evicts it (flushing any pending debounced team-name write first).
const sessionIdleTTL = 2 * time.Hour

type Scheduler struct {
	cron     *cron.Cron
	sessions *session.Manager
}

func NewScheduler(sessions *session.Manager) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:     c,
		sessions: sessions,
	}
}

// Start registers and starts the scheduled jobs.
func (s *Scheduler) Start() error {
	// At minute 0 of every hour.
	_, err := s.cron.AddFunc("0 0 * * * *", s.runSessionJanitor)
	if err != nil {
		log.Printf("Error scheduling session janitor: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started")

	return nil
}

// Stop shuts the scheduler down.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runSessionJanitor() {
	evicted := s.sessions.EvictIdle(sessionIdleTTL)
	if evicted > 0 {
		log.Printf("Session janitor evicted %d idle session(s), %d resident", evicted, s.sessions.Count())
	}
}

// RunNow triggers the janitor immediately (useful for testing).
func (s *Scheduler) RunNow() {
	s.runSessionJanitor()
}
