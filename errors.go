// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import "fmt"

// HandshakeError reports that the sensor did not acknowledge the trigger
// pulse. Stage 0 is the wait for the sensor's response low, stage 1 the wait
// for the line to return high. The usual causes are wiring trouble or a read
// attempted less than 2 seconds after the previous one.
type HandshakeError struct {
	Stage int
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("dht22: handshake failed at stage %d", e.Stage)
}

// TimeoutError reports that a data edge was not observed within its window.
// Elapsed is the time spent waiting on the failing edge.
type TimeoutError struct {
	Elapsed Microseconds
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("dht22: timeout waiting for level change after %dµs", uint32(e.Elapsed))
}

// ChecksumError reports that all 40 bits arrived but their checksum does not
// match. Correct is the checksum byte the sensor sent, Actual the sum
// computed over the received payload.
type ChecksumError struct {
	Correct byte
	Actual  byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("dht22: checksum validation failed: correct %#02x, actual %#02x", e.Correct, e.Actual)
}
