package bot

import (
	"giveaway-bot/tasks"
	"giveaway-bot/utils"
	"log"
	"sync"
	"time"
)

// Scheduler drives the periodic giveaway expiry sweep.
type Scheduler struct {
	interval time.Duration
	now      func() time.Time
	ready    func() bool
	sweep    func(now time.Time)
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewScheduler wires the sweep against a live bot.
func NewScheduler(b *Bot) *Scheduler {
	messenger := tasks.SessionMessenger{Session: b.Session}
	return &Scheduler{
		interval: b.Config.SweepInterval,
		now:      func() time.Time { return time.Now().UTC() },
		ready:    func() bool { return b.Session.DataReady },
		sweep: func(now time.Time) {
			if err := tasks.CheckGiveaways(messenger, b.DB, now); err != nil {
				log.Printf("Giveaway sweep failed: %v", err)
				if b.Config.LogWebhookURL != "" {
					if logErr := utils.LogError(b.Config.LogWebhookURL, "Scheduler", "Sweep", err.Error()); logErr != nil {
						log.Printf("Failed to send sweep failure log: %v", logErr)
					}
				}
			}
		},
		done: make(chan struct{}),
	}
}

// Start begins the sweep loop.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
}

func (s *Scheduler) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Until the gateway reports ready, the tick is skipped whole.
			if !s.ready() {
				continue
			}
			// The sweep runs inside the select loop, so a second sweep can
			// never start while one is still in flight. A tick that fires
			// during a long sweep is dropped, not queued.
			s.sweep(s.now())
		case <-s.done:
			return
		}
	}
}

// Stop terminates the sweep loop and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}
