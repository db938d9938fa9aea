package player

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestWallClock_NotStarted(t *testing.T) {
	c := NewWallClock()
	if got := c.CurrentTime(); got != 0 {
		t.Errorf("CurrentTime() before Start = %v, want 0", got)
	}
	if c.Started() {
		t.Error("Started() should be false")
	}
}

func TestWallClock_AdvancesAndPauses(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWallClock(WithNow(ft.now))

	c.Start()
	ft.advance(1500 * time.Millisecond)
	if got := c.CurrentTime(); got != 1.5 {
		t.Fatalf("CurrentTime() = %v, want 1.5", got)
	}

	c.Pause()
	ft.advance(10 * time.Second)
	if got := c.CurrentTime(); got != 1.5 {
		t.Fatalf("CurrentTime() while paused = %v, want 1.5", got)
	}
	if !c.Paused() {
		t.Error("Paused() should be true")
	}

	c.Resume()
	ft.advance(500 * time.Millisecond)
	if got := c.CurrentTime(); got != 2 {
		t.Fatalf("CurrentTime() after resume = %v, want 2", got)
	}
}

func TestWallClock_Toggle(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewWallClock(WithNow(ft.now))
	c.Start()

	c.Toggle()
	if !c.Paused() {
		t.Fatal("Toggle should pause a running clock")
	}
	c.Toggle()
	if c.Paused() {
		t.Fatal("Toggle should resume a paused clock")
	}
}

func TestWallClock_RestartResetsPosition(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewWallClock(WithNow(ft.now))
	c.Start()
	ft.advance(3 * time.Second)
	c.Start()
	if got := c.CurrentTime(); got != 0 {
		t.Errorf("CurrentTime() after restart = %v, want 0", got)
	}
}

func TestWallClock_PauseBeforeStartIsNoop(t *testing.T) {
	c := NewWallClock()
	c.Pause()
	if c.Paused() {
		t.Error("Pause before Start should not pause")
	}
}

var _ Clock = (*WallClock)(nil)
