package quiz

import (
	"fmt"
	"sync"
	"time"
)

// Timer is the single countdown clock for an entire quiz run. It emits one
// tick per interval through onTick and a final onExpire when it hits zero.
// Callbacks run outside the timer's own lock; callers guard their handlers
// with their run-phase check so a late tick never mutates a finished run.
type Timer struct {
	interval time.Duration
	onTick   func(remaining int)
	onExpire func()

	mu        sync.Mutex
	remaining int
	running   bool
	stop      chan struct{}
}

// NewTimer builds a timer ticking every interval. An interval of zero disables
// the internal scheduler; Tick must then be driven manually (used in tests).
func NewTimer(interval time.Duration, onTick func(remaining int), onExpire func()) *Timer {
	if onTick == nil {
		onTick = func(int) {}
	}
	if onExpire == nil {
		onExpire = func() {}
	}
	return &Timer{interval: interval, onTick: onTick, onExpire: onExpire}
}

// Start resets the countdown and begins ticking. No-op while already running.
func (t *Timer) Start(durationSeconds int) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.remaining = durationSeconds
	t.running = true
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	// Initial display update before the first scheduled tick.
	t.onTick(durationSeconds)

	if t.interval > 0 {
		go t.loop(stop)
	}
}

// Stop cancels future ticks. Idempotent and safe while stopped.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Remaining reports the seconds left on the clock.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Tick decrements the countdown by one second. At zero it emits expiry and
// stops itself; further calls are no-ops.
func (t *Timer) Tick() {
	t.tick()
}

func (t *Timer) loop(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !t.tick() {
				return
			}
		}
	}
}

// tick reports whether the timer is still running afterwards.
func (t *Timer) tick() bool {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return false
	}
	t.remaining--
	remaining := t.remaining
	expired := remaining <= 0
	if expired {
		t.running = false
		if t.stop != nil {
			close(t.stop)
			t.stop = nil
		}
	}
	t.mu.Unlock()

	t.onTick(remaining)
	if expired {
		t.onExpire()
		return false
	}
	return true
}

// FormatSeconds renders a countdown as minutes:seconds with zero-padded
// seconds, e.g. 125 -> "2:05".
func FormatSeconds(s int) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
