package schedule

import (
	"context"
	"testing"
	"time"
)

func TestManualAdvanceRunsDueCallbacks(t *testing.T) {
	clock := NewManual()
	var order []string
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	clock.AfterFunc(time.Second, func() { order = append(order, "c") })

	clock.Advance(500 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if clock.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", clock.Pending())
	}
	clock.Advance(500 * time.Millisecond)
	if len(order) != 3 {
		t.Errorf("expected c to fire, got %v", order)
	}
	if clock.Elapsed() != time.Second {
		t.Errorf("Elapsed = %v", clock.Elapsed())
	}
}

func TestManualStop(t *testing.T) {
	clock := NewManual()
	fired := false
	task := clock.AfterFunc(time.Second, func() { fired = true })
	if !task.Stop() {
		t.Error("first Stop should report pending")
	}
	if task.Stop() {
		t.Error("second Stop should report not pending")
	}
	clock.Advance(2 * time.Second)
	if fired {
		t.Error("stopped task fired")
	}
}

func TestManualCallbackCanSchedule(t *testing.T) {
	clock := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			clock.AfterFunc(10*time.Millisecond, tick)
		}
	}
	clock.AfterFunc(10*time.Millisecond, tick)
	clock.Advance(time.Second)
	if count != 3 {
		t.Errorf("expected 3 ticks, got %d", count)
	}
}

func TestManualSleep(t *testing.T) {
	clock := NewManual()
	if err := clock.Sleep(context.Background(), 30*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := clock.Sleep(ctx, time.Second); err == nil {
		t.Error("expected cancellation error")
	}
	if len(clock.Slept) != 1 || clock.Slept[0] != 30*time.Millisecond {
		t.Errorf("Slept = %v", clock.Slept)
	}
}

func TestSystemSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (System{}).Sleep(ctx, time.Hour); err == nil {
		t.Error("expected context error")
	}
}
