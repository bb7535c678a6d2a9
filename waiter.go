// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

// waiter busy-polls a condition against the clock. It never sleeps: the
// protocol distinguishes bits by differences of a few tens of microseconds,
// well below any scheduler granularity.
type waiter struct {
	clock Clock
}

// waitFor polls cond until it holds or timeout microseconds have passed,
// whichever comes first. The returned duration is measured from the call; ok
// reports whether the condition was met. The condition is checked before the
// deadline, so a condition that becomes true exactly at the timeout still
// succeeds. Elapsed time is a wrapping difference, which keeps the result
// correct when the counter wraps mid-wait.
func (w waiter) waitFor(cond func() bool, timeout Microseconds) (Microseconds, bool) {
	start := w.clock.Now()
	for {
		elapsed := w.clock.Now().Sub(start)
		if cond() {
			return elapsed, true
		}
		if elapsed >= timeout {
			return elapsed, false
		}
	}
}

// delay burns timeout microseconds by waiting on a condition that never
// holds.
func (w waiter) delay(timeout Microseconds) {
	w.waitFor(func() bool { return false }, timeout)
}
