// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import (
	"runtime"
	"runtime/debug"
)

// exclusive keeps the runtime from preempting the timing-critical span of a
// read. On a hosted target the preemption sources are the goroutine
// scheduler and the garbage collector; a pause of even a few tens of
// microseconds during edge capture corrupts the timing that separates a
// 0-bit from a 1-bit. The span must stay as short as correctness allows.
type exclusive struct {
	gcPercent int
}

// enterExclusive pins the calling goroutine to its OS thread and turns the
// garbage collector off. The caller must arrange for exit to run on every
// return path.
func enterExclusive() *exclusive {
	runtime.LockOSThread()
	return &exclusive{gcPercent: debug.SetGCPercent(-1)}
}

// exit restores the garbage collector and releases the thread. It must be
// called exactly once.
func (e *exclusive) exit() {
	debug.SetGCPercent(e.gcPercent)
	runtime.UnlockOSThread()
}
