package schedule

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers frames behind a lock so test goroutines can poke
// at them safely.
type collector struct {
	mu     sync.Mutex
	frames []Remaining
}

func (c *collector) emit(r Remaining) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, r)
}

func (c *collector) snapshot() []Remaining {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Remaining, len(c.frames))
	copy(out, c.frames)
	return out
}

func TestRemainingString(t *testing.T) {
	assert.Equal(t, "01h : 02m : 03s", Remaining{Hours: 1, Minutes: 2, Seconds: 3}.String())
	assert.Equal(t, "00h : 00m : 09s", Remaining{Seconds: 9}.String())
	assert.Equal(t, "Class time!", Remaining{Done: true}.String())
}

func TestRemainingUntilSplitsDuration(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	r := remainingUntil(now.Add(3*time.Hour+25*time.Minute+7*time.Second), now)
	assert.Equal(t, Remaining{Hours: 3, Minutes: 25, Seconds: 7}, r)

	assert.True(t, remainingUntil(now, now).Done)
	assert.True(t, remainingUntil(now.Add(-time.Second), now).Done)
}

func TestCountdownEmitsImmediatelyAndTicks(t *testing.T) {
	base := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := base
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	c := &Countdown{now: clock, interval: time.Millisecond}
	col := &collector{}
	c.Start(base.Add(2*time.Second), col.emit)

	// The first frame arrives without waiting for a tick.
	require.Eventually(t, func() bool { return len(col.snapshot()) >= 1 }, time.Second, time.Millisecond)
	assert.Equal(t, Remaining{Seconds: 2}, col.snapshot()[0])

	mu.Lock()
	now = base.Add(3 * time.Second)
	mu.Unlock()

	// Ticks past the target produce the terminal frame and stop.
	require.Eventually(t, func() bool {
		s := col.snapshot()
		return len(s) > 1 && s[len(s)-1].Done
	}, time.Second, time.Millisecond)

	n := len(col.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, len(col.snapshot()), "no frames after the terminal one")
}

func TestCountdownStartReplacesRunning(t *testing.T) {
	base := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	c := &Countdown{now: func() time.Time { return base }, interval: time.Millisecond}

	first := &collector{}
	second := &collector{}
	c.Start(base.Add(time.Hour), first.emit)
	c.Start(base.Add(time.Minute), second.emit)

	require.Eventually(t, func() bool { return len(second.snapshot()) >= 3 }, time.Second, time.Millisecond)
	c.Stop()

	// The first stream saw nothing after being replaced.
	firstLen := len(first.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, firstLen, len(first.snapshot()))
	assert.Equal(t, Remaining{Minutes: 1}, second.snapshot()[0])
}

func TestCountdownStopIdempotent(t *testing.T) {
	c := NewCountdown()
	c.Stop()
	c.Stop()

	base := time.Now()
	col := &collector{}
	c.Start(base.Add(time.Hour), col.emit)
	c.Stop()
	c.Stop()

	n := len(col.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, len(col.snapshot()))
}

func TestCountdownPastTargetEmitsTerminalOnce(t *testing.T) {
	base := time.Now()
	c := &Countdown{now: func() time.Time { return base }, interval: time.Millisecond}
	col := &collector{}
	c.Start(base.Add(-time.Minute), col.emit)

	require.Eventually(t, func() bool { return len(col.snapshot()) == 1 }, time.Second, time.Millisecond)
	assert.True(t, col.snapshot()[0].Done)

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, col.snapshot(), 1)
}
