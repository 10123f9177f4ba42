package compliance

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"uaetax/internal/logger"
)

// DefaultInterval is the fixed re-evaluation cadence.
const DefaultInterval = time.Minute

// StateFunc supplies the current evaluation state on each tick. It is read
// outside the Set's lock, so implementations must be safe for concurrent
// calls.
type StateFunc func() EvaluationState

// Scheduler re-evaluates the notification rules on a fixed interval and on
// explicit triggers (e.g. a profile change). All evaluations funnel into
// Set.Apply, whose mutex serializes timer ticks against trigger ticks.
type Scheduler struct {
	set      *Set
	state    StateFunc
	interval time.Duration
	trigger  chan struct{}
	log      zerolog.Logger
}

// NewScheduler creates a scheduler over an existing set. A non-positive
// interval falls back to DefaultInterval.
func NewScheduler(set *Set, state StateFunc, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		set:      set,
		state:    state,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		log:      logger.WithComponent("compliance-scheduler"),
	}
}

// Trigger requests an immediate re-evaluation, e.g. after a profile change.
// Coalesces with a pending trigger; never blocks.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run evaluates once immediately, then loops on the interval and on
// triggers until the context is cancelled. Single goroutine: ticks are
// processed one at a time.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info().
		Dur("interval", s.interval).
		Msg("Starting compliance notification scheduler")

	s.evaluate()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Compliance notification scheduler stopped")
			return
		case <-ticker.C:
			s.evaluate()
		case <-s.trigger:
			s.evaluate()
		}
	}
}

func (s *Scheduler) evaluate() {
	now := time.Now()
	generated := Generate(s.state(), now)
	s.set.Apply(generated)
	s.log.Debug().
		Int("generated", len(generated)).
		Int("unread", s.set.Unread()).
		Msg("Notification set re-evaluated")
}
