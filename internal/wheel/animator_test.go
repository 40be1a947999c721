package wheel

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%v) = %v, expected %v", tt.p, got, tt.want)
		}
	}
}

func TestAnimateFrames(t *testing.T) {
	sched := &manualScheduler{}
	a := NewAnimator(sched)

	var events []string
	var angles []float64
	_, err := a.Animate(100, 500, time.Second,
		func(angle float64) {
			events = append(events, "frame")
			angles = append(angles, angle)
		},
		func() { events = append(events, "complete") },
	)
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	start := time.Unix(1000, 0)
	sched.Step(start)
	sched.Step(start.Add(500 * time.Millisecond))
	sched.Step(start.Add(2 * time.Second))

	if sched.Pending() != 0 {
		t.Errorf("no frames must be requested after completion, pending=%d", sched.Pending())
	}

	wantAngles := []float64{100, 100 + 400*0.875, 500}
	if len(angles) != len(wantAngles) {
		t.Fatalf("expected %d frames, got %d", len(wantAngles), len(angles))
	}
	for i, want := range wantAngles {
		if math.Abs(angles[i]-want) > 1e-9 {
			t.Errorf("frame %d: expected %v, got %v", i, want, angles[i])
		}
	}

	wantEvents := []string{"frame", "frame", "frame", "complete"}
	for i, e := range wantEvents {
		if events[i] != e {
			t.Errorf("event %d: expected %s, got %s", i, e, events[i])
		}
	}
	if a.Running() {
		t.Error("animator must be idle after completion")
	}
}

func TestAnimateRejectsSecondAnimation(t *testing.T) {
	sched := &manualScheduler{}
	a := NewAnimator(sched)

	noop := func(float64) {}
	if _, err := a.Animate(0, 10, time.Second, noop, func() {}); err != nil {
		t.Fatalf("Animate failed: %v", err)
	}
	if _, err := a.Animate(0, 20, time.Second, noop, func() {}); !errors.Is(err, ErrAnimationRunning) {
		t.Errorf("expected ErrAnimationRunning, got %v", err)
	}
	if sched.Pending() != 1 {
		t.Errorf("expected one pending frame, got %d", sched.Pending())
	}
}

func TestAnimationCancel(t *testing.T) {
	sched := &manualScheduler{}
	a := NewAnimator(sched)

	frames, completed := 0, 0
	anim, err := a.Animate(0, 360, time.Second, func(float64) { frames++ }, func() { completed++ })
	if err != nil {
		t.Fatalf("Animate failed: %v", err)
	}

	start := time.Unix(0, 0)
	sched.Step(start)
	anim.Cancel()
	runFrames(sched, start.Add(16*time.Millisecond))

	if frames != 1 {
		t.Errorf("expected 1 frame before cancel, got %d", frames)
	}
	if completed != 0 {
		t.Errorf("cancelled animation must not complete, got %d", completed)
	}
	if !anim.Done() {
		t.Error("cancelled animation must be done")
	}
	if a.Running() {
		t.Error("animator must accept a new animation after cancel")
	}
}
