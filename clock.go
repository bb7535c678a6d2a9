// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import "time"

// Microseconds is a tick count on a free-running 32 bit microsecond counter.
// The counter may wrap at any point during a read, so elapsed time between
// two instants must be computed with wrapping subtraction; plain uint32
// arithmetic provides exactly that. Ordering of two absolute values is
// meaningless except through such a difference.
type Microseconds uint32

// Sub returns the time elapsed from earlier to m, modulo 2^32.
func (m Microseconds) Sub(earlier Microseconds) Microseconds {
	return m - earlier
}

// Clock is a monotonic microsecond counter. Implementations are allowed to
// wrap around zero; the driver only ever looks at differences. Now must be
// cheap and side effect free since it is called in a tight poll loop.
type Clock interface {
	Now() Microseconds
}

// SystemClock is a Clock backed by the Go runtime's monotonic clock.
// Truncating the microsecond count to uint32 preserves the wrap behavior the
// driver's arithmetic expects.
type SystemClock struct {
	epoch time.Time
}

// NewSystemClock returns a SystemClock counting from the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// Now implements Clock.
func (c *SystemClock) Now() Microseconds {
	return Microseconds(time.Since(c.epoch) / time.Microsecond)
}
