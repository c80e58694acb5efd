package indexview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct{ now time.Time }

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTimerFiresOnce(t *testing.T) {
	clk := newManualClock()
	var tm Timer
	fired := 0
	tm.Schedule(clk.Now().Add(time.Second), func() { fired++ })
	require.True(t, tm.Pending())

	assert.False(t, tm.Poll(clk.Now()))
	clk.Advance(999 * time.Millisecond)
	assert.False(t, tm.Poll(clk.Now()))
	clk.Advance(time.Millisecond)
	assert.True(t, tm.Poll(clk.Now()))
	assert.False(t, tm.Poll(clk.Now().Add(time.Hour)))
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Pending())
}

func TestTimerReschedule(t *testing.T) {
	clk := newManualClock()
	var tm Timer
	var got []string
	tm.Schedule(clk.Now().Add(time.Second), func() { got = append(got, "first") })
	tm.Schedule(clk.Now().Add(2*time.Second), func() { got = append(got, "second") })

	clk.Advance(time.Second)
	assert.False(t, tm.Poll(clk.Now()))
	clk.Advance(time.Second)
	assert.True(t, tm.Poll(clk.Now()))
	assert.Equal(t, []string{"second"}, got)
}

func TestTimerCancel(t *testing.T) {
	clk := newManualClock()
	var tm Timer
	tm.Schedule(clk.Now(), func() { t.Fatal("cancelled timer fired") })
	tm.Cancel()
	_, armed := tm.Deadline()
	assert.False(t, armed)
	assert.False(t, tm.Poll(clk.Now()))
}

func TestTimerCallbackRearms(t *testing.T) {
	clk := newManualClock()
	var tm Timer
	runs := 0
	var tick func()
	tick = func() {
		runs++
		if runs < 3 {
			tm.Schedule(clk.Now().Add(time.Second), tick)
		}
	}
	tm.Schedule(clk.Now(), tick)
	for i := 0; i < 5; i++ {
		tm.Poll(clk.Now())
		clk.Advance(time.Second)
	}
	assert.Equal(t, 3, runs)
	assert.False(t, tm.Pending())
}

func TestTween(t *testing.T) {
	start := time.Unix(0, 0)
	tw := tween{from: 0, to: 1, start: start, dur: 200 * time.Millisecond, active: true}

	v, done := tw.at(start)
	assert.False(t, done)
	assert.InDelta(t, 0, v, 1e-9)

	v, done = tw.at(start.Add(50 * time.Millisecond))
	assert.False(t, done)
	assert.InDelta(t, 0.25, v, 1e-9)

	v, done = tw.at(start.Add(200 * time.Millisecond))
	assert.True(t, done)
	assert.Equal(t, 1.0, v)

	instant := tween{from: 1, to: 0, start: start}
	v, done = instant.at(start)
	assert.True(t, done)
	assert.Equal(t, 0.0, v)
}
