package showcase

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Sampler draws the simulated concurrent-viewer count. Injectable so tests
// can supply a deterministic source.
type Sampler interface {
	// Sample returns a value in [min, max] inclusive.
	Sample(min, max int) int
}

// UniformSampler draws uniformly distributed counts.
type UniformSampler struct{}

// Sample implements Sampler.
func (UniformSampler) Sample(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

// SimulatorConfig holds the timing of the viewer-count notification.
// HideAfter must stay strictly below Interval so a notification is always
// hidden before the next one fires.
type SimulatorConfig struct {
	FirstDelay time.Duration
	Interval   time.Duration
	HideAfter  time.Duration
}

// DefaultSimulatorConfig returns the production timings.
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		FirstDelay: 1500 * time.Millisecond,
		Interval:   58 * time.Second,
		HideAfter:  5 * time.Second,
	}
}

// Simulator periodically surfaces a randomized "N pessoas" notification while
// a detail view is open. Start and Stop are strictly paired: starting again
// or stopping cancels the running schedule and any pending auto-hide, so a
// torn-down view can never receive a stale notification.
type Simulator struct {
	cfg     SimulatorConfig
	sampler Sampler
	show    func(count int)
	hide    func()

	mu   sync.Mutex
	done chan struct{}
}

// NewSimulator wires a simulator to its display callbacks. Nil callbacks are
// replaced with no-ops.
func NewSimulator(cfg SimulatorConfig, sampler Sampler, show func(count int), hide func()) *Simulator {
	if sampler == nil {
		sampler = UniformSampler{}
	}
	if show == nil {
		show = func(int) {}
	}
	if hide == nil {
		hide = func() {}
	}
	return &Simulator{cfg: cfg, sampler: sampler, show: show, hide: hide}
}

// Start begins the notification schedule for the given viewer bounds. Any
// previous schedule is canceled first.
func (s *Simulator) Start(min, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	done := make(chan struct{})
	s.done = done
	go s.run(done, min, max)
}

// Stop cancels the schedule and hides any visible notification. Safe to call
// repeatedly or without a prior Start.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.hide()
}

// Running reports whether a schedule is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}

func (s *Simulator) cancelLocked() {
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

func (s *Simulator) run(done chan struct{}, min, max int) {
	first := time.NewTimer(s.cfg.FirstDelay)
	defer first.Stop()
	select {
	case <-first.C:
	case <-done:
		return
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		if !s.fire(done, min, max) {
			return
		}
		select {
		case <-ticker.C:
		case <-done:
			return
		}
	}
}

// fire shows one notification and hides it after the configured delay.
// HideAfter < Interval keeps firings non-overlapping.
func (s *Simulator) fire(done chan struct{}, min, max int) bool {
	s.show(s.sampler.Sample(min, max))
	hide := time.NewTimer(s.cfg.HideAfter)
	defer hide.Stop()
	select {
	case <-hide.C:
		s.hide()
		return true
	case <-done:
		return false
	}
}
