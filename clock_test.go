// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import (
	"testing"
	"time"
)

func TestMicrosecondsSub_wrap(t *testing.T) {
	// Elapsed time across a counter wrap: the difference is what counts,
	// not the ordering of the absolute values.
	start := Microseconds(0xFFFFFFF0)
	now := Microseconds(0x00000010)
	if got := now.Sub(start); got != 0x20 {
		t.Errorf("expected 0x20, got %#x", got)
	}
	if got := Microseconds(100).Sub(40); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}
}

func TestSystemClock(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	if elapsed := b.Sub(a); elapsed < 1000 {
		t.Errorf("expected at least 1000µs to pass across a 2ms sleep, measured %dµs", elapsed)
	}
}
