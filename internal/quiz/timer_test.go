package quiz

import "testing"

func TestTimerCountsDownAndExpires(t *testing.T) {
	var ticks []int
	expired := 0
	timer := NewTimer(0, func(remaining int) {
		ticks = append(ticks, remaining)
	}, func() {
		expired++
	})

	timer.Start(3)
	if got := timer.Remaining(); got != 3 {
		t.Fatalf("expected 3 remaining, got %d", got)
	}

	timer.Tick()
	timer.Tick()
	timer.Tick()

	if expired != 1 {
		t.Fatalf("expected one expiry, got %d", expired)
	}
	if timer.Running() {
		t.Fatalf("expected timer stopped after expiry")
	}

	// Ticks after expiry are no-ops.
	timer.Tick()
	if expired != 1 || timer.Remaining() != 0 {
		t.Fatalf("expected idempotent expiry, expired=%d remaining=%d", expired, timer.Remaining())
	}

	want := []int{3, 2, 1, 0}
	if len(ticks) != len(want) {
		t.Fatalf("expected ticks %v, got %v", want, ticks)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("expected ticks %v, got %v", want, ticks)
		}
	}
}

func TestTimerStartWhileRunningIsNoOp(t *testing.T) {
	timer := NewTimer(0, nil, nil)
	timer.Start(10)
	timer.Tick()
	timer.Start(99)
	if got := timer.Remaining(); got != 9 {
		t.Fatalf("expected restart ignored while running, remaining=%d", got)
	}
}

func TestTimerStopIsIdempotent(t *testing.T) {
	timer := NewTimer(0, nil, nil)
	timer.Start(5)
	timer.Stop()
	timer.Stop()
	if timer.Running() {
		t.Fatalf("expected timer stopped")
	}
	timer.Tick()
	if got := timer.Remaining(); got != 5 {
		t.Fatalf("expected no tick after stop, remaining=%d", got)
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := map[int]string{
		180: "3:00",
		125: "2:05",
		60:  "1:00",
		9:   "0:09",
		0:   "0:00",
		-1:  "0:00",
	}
	for in, want := range cases {
		if got := FormatSeconds(in); got != want {
			t.Fatalf("FormatSeconds(%d)=%q, want %q", in, got, want)
		}
	}
}
