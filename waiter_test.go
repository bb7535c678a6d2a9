// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import "testing"

// tickClock advances one microsecond per Now() call, from an arbitrary
// starting value.
type tickClock struct {
	t Microseconds
}

func (c *tickClock) Now() Microseconds {
	c.t++
	return c.t
}

func TestWaitFor_conditionMet(t *testing.T) {
	c := &tickClock{}
	w := waiter{clock: c}

	polls := 0
	elapsed, ok := w.waitFor(func() bool {
		polls++
		return polls >= 10
	}, 100)
	if !ok {
		t.Fatalf("condition was met but waitFor reported timeout after %dµs", elapsed)
	}
	if elapsed >= 100 {
		t.Errorf("expected elapsed < timeout, got %dµs", elapsed)
	}
}

func TestWaitFor_timeout(t *testing.T) {
	c := &tickClock{}
	w := waiter{clock: c}

	elapsed, ok := w.waitFor(func() bool { return false }, 50)
	if ok {
		t.Fatal("condition never held but waitFor reported success")
	}
	if elapsed < 50 {
		t.Errorf("expected elapsed >= 50µs at timeout, got %dµs", elapsed)
	}
}

func TestWaitFor_conditionWinsAtBoundary(t *testing.T) {
	// The condition is checked before the deadline, so meeting it on the
	// exact timeout tick still succeeds.
	c := &tickClock{}
	w := waiter{clock: c}

	var last Microseconds
	elapsed, ok := w.waitFor(func() bool {
		last = c.t
		return last-1 >= 20 // elapsed as the waiter computed it this poll
	}, 20)
	if !ok {
		t.Fatalf("expected success at the boundary, got timeout after %dµs", elapsed)
	}
	if elapsed != 20 {
		t.Errorf("expected elapsed == 20µs, got %dµs", elapsed)
	}
}

func TestWaitFor_acrossWrap(t *testing.T) {
	// A wait that straddles the counter wrap must still measure correctly.
	c := &tickClock{t: 0xFFFFFFF0}
	w := waiter{clock: c}

	polls := 0
	elapsed, ok := w.waitFor(func() bool {
		polls++
		return polls >= 0x20
	}, 100)
	if !ok {
		t.Fatalf("unexpected timeout after %dµs", elapsed)
	}
	if c.t > 0x100 {
		t.Fatalf("test did not cross the wrap, clock at %#x", c.t)
	}
	if elapsed != Microseconds(polls) {
		t.Errorf("expected elapsed %dµs, got %dµs", polls, elapsed)
	}
}

func TestDelay(t *testing.T) {
	c := &tickClock{}
	w := waiter{clock: c}
	w.delay(1200)
	if c.t < 1200 {
		t.Errorf("expected the clock to advance at least 1200µs, advanced %d", c.t)
	}
}
