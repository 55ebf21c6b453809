package schedule

import (
	"fmt"
	"sync"
	"time"
)

// Remaining is one countdown frame: whole hours, minutes and seconds
// left until class, or the terminal "class time" state.
type Remaining struct {
	Hours   int
	Minutes int
	Seconds int
	Done    bool
}

// String renders the frame the way the portal shows it.
func (r Remaining) String() string {
	if r.Done {
		return "Class time!"
	}
	return fmt.Sprintf("%02dh : %02dm : %02ds", r.Hours, r.Minutes, r.Seconds)
}

// remainingUntil splits the duration from now to target into a frame.
func remainingUntil(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{Done: true}
	}
	total := int(diff / time.Second)
	return Remaining{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Countdown drives a live per-second countdown toward one target
// instant. A session holds at most one: Start on a running countdown
// replaces it, and Stop is idempotent. It does not roll over to the
// next occurrence: when the target passes it emits the terminal frame
// and goes quiet until the caller re-resolves and starts it again.
type Countdown struct {
	mu     sync.Mutex
	stopCh chan struct{}
	doneCh chan struct{}

	now      func() time.Time // overridable in tests
	interval time.Duration
}

// NewCountdown returns a driver ticking once per wall-clock second.
func NewCountdown() *Countdown {
	return &Countdown{now: time.Now, interval: time.Second}
}

// Start begins emitting frames for target, first immediately and then
// on every tick. Any countdown already running on this driver is
// stopped before the new one begins.
func (c *Countdown) Start(target time.Time, emit func(Remaining)) {
	c.Stop()

	c.mu.Lock()
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	c.stopCh = stopCh
	c.doneCh = doneCh
	c.mu.Unlock()

	go func() {
		defer close(doneCh)

		frame := remainingUntil(target, c.now())
		emit(frame)
		if frame.Done {
			return
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				frame = remainingUntil(target, c.now())
				emit(frame)
				if frame.Done {
					return
				}
			}
		}
	}()
}

// Stop cancels the running countdown, waiting for its final emit to
// finish so no frame lands on a torn-down surface. Stopping twice, or
// with nothing running, is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	stopCh, doneCh := c.stopCh, c.doneCh
	c.stopCh, c.doneCh = nil, nil
	c.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	<-doneCh
}
