// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

const (
	// responseBits is the payload length: 16 bits humidity, 16 bits
	// temperature, 8 bits checksum.
	responseBits = 40

	// Each bit contributes two edges, one per end of its high phase. One
	// extra leading edge marks the fall into the first bit's low phase.
	responseEdges = 2*responseBits + 1

	// edgeTimeout bounds the wait for a single transition. The longest legal
	// phase is the ~80µs preamble high.
	edgeTimeout Microseconds = 100

	// minTriggerPulse is the sensor's minimum trigger pulse width from the
	// datasheet.
	minTriggerPulse Microseconds = 1000
)

// Opts holds the configuration options for the device.
type Opts struct {
	// TriggerPulse is how long the line is held low to request a reading.
	// The sensor requires at least 1ms; 1.2ms has proven reliable. Values
	// below 1ms are rejected.
	TriggerPulse Microseconds
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	TriggerPulse: 1200,
}

// SensorReading is one decoded measurement. Both values carry the sensor's
// native 0.1 resolution.
type SensorReading struct {
	// Humidity in %RH.
	Humidity float64
	// Temperature in °C, negative temperatures supported.
	Temperature float64
}

// Dev represents a DHT22 sensor on a single data line. It owns the pin and
// clock capabilities for its whole lifetime and keeps no other state between
// reads.
type Dev struct {
	pin    Pin
	waiter waiter
	opts   Opts

	mu       sync.Mutex
	shutdown chan struct{}
}

// New returns a Dev using the default options. Construction is cheap and
// performs no I/O.
func New(pin Pin, clock Clock) *Dev {
	d, _ := NewWithOpts(pin, clock, &DefaultOpts)
	return d
}

// NewWithOpts returns a Dev with the supplied options. opts may be nil for
// the defaults.
func NewWithOpts(pin Pin, clock Clock, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.TriggerPulse < minTriggerPulse {
		return nil, fmt.Errorf("dht22: trigger pulse %dµs below the sensor minimum of %dµs", uint32(opts.TriggerPulse), uint32(minTriggerPulse))
	}
	return &Dev{pin: pin, waiter: waiter{clock: clock}, opts: *opts}, nil
}

// NewGPIO returns a Dev for a sensor wired to the given GPIO pin, using the
// host's monotonic clock. The line is released to its idle high level so the
// sensor is ready for the first read.
func NewGPIO(p gpio.PinIO) (*Dev, error) {
	if p == nil {
		return nil, errors.New("dht22: pin is nil")
	}
	pin := NewGPIOPin(p)
	if err := pin.SetHigh(); err != nil {
		return nil, fmt.Errorf("dht22: releasing line to idle: %w", err)
	}
	return New(pin, NewSystemClock()), nil
}

// Read performs one full protocol exchange with the sensor and returns the
// decoded reading. It blocks the calling goroutine for the whole exchange, a
// few milliseconds worst case, busy-polling for most of it.
//
// Consecutive reads must be at least 2 seconds apart or the sensor will not
// answer the handshake; pacing and retries are the caller's responsibility.
// Every failure is reported as a typed error (HandshakeError, TimeoutError,
// ChecksumError, or the wrapped pin error) and leaves the line released to
// its idle high level.
func (d *Dev) Read() (SensorReading, error) {
	deciRH, deciC, err := d.read()
	if err != nil {
		return SensorReading{}, err
	}
	return SensorReading{
		Humidity:    float64(deciRH) / 10,
		Temperature: float64(deciC) / 10,
	}, nil
}

// read returns humidity and temperature in tenths of their units.
func (d *Dev) read() (uint16, int16, error) {
	var cycles [responseEdges]Microseconds
	if err := d.capture(&cycles); err != nil {
		return 0, 0, err
	}

	// The leading edge only marks the start of the first low phase; its
	// duration carries no data.
	b := packBits(cycles[1:])

	correct := b[4]
	actual := b[0] + b[1] + b[2] + b[3]
	if actual != correct {
		return 0, 0, &ChecksumError{Correct: correct, Actual: actual}
	}

	deciRH := uint16(b[0])<<8 | uint16(b[1])
	// Bit 7 of the temperature high byte is a sign flag, not part of the
	// magnitude.
	deciC := int16(uint16(b[2]&0x7f)<<8 | uint16(b[3]))
	if b[2]&0x80 != 0 {
		deciC = -deciC
	}
	return deciRH, deciC, nil
}

// capture runs the trigger, the handshake and the edge loop. The line is
// released to its idle high level on every return path, after the exclusive
// region has been left; restoring the idle level is not timing-critical and
// must not extend the no-preemption span.
func (d *Dev) capture(cycles *[responseEdges]Microseconds) (err error) {
	defer func() {
		// A restore failure must not mask the first error of the exchange.
		if rerr := d.pin.SetHigh(); rerr != nil && err == nil {
			err = fmt.Errorf("dht22: restoring line to idle: %w", rerr)
		}
	}()

	excl := enterExclusive()
	defer excl.exit()

	// Trigger: hold the line low long enough for the sensor to notice, then
	// hand it back.
	if err := d.pin.SetLow(); err != nil {
		return fmt.Errorf("dht22: pulling line low for trigger: %w", err)
	}
	d.waiter.delay(d.opts.TriggerPulse)
	if err := d.pin.SetHigh(); err != nil {
		return fmt.Errorf("dht22: releasing line after trigger: %w", err)
	}

	// The sensor acknowledges by pulling the line low, then releasing it
	// again ahead of the data burst.
	if _, ok := d.waiter.waitFor(d.pin.IsLow, edgeTimeout); !ok {
		return &HandshakeError{Stage: 0}
	}
	if _, ok := d.waiter.waitFor(d.pin.IsHigh, edgeTimeout); !ok {
		return &HandshakeError{Stage: 1}
	}

	// Record the time to each transition, alternating the expected level.
	// Decoding happens outside the exclusive region.
	isHigh := true
	flipped := func() bool { return isHigh != d.pin.IsHigh() }
	for i := range cycles {
		elapsed, ok := d.waiter.waitFor(flipped, edgeTimeout)
		if !ok {
			return &TimeoutError{Elapsed: elapsed}
		}
		cycles[i] = elapsed
		isHigh = !isHigh
	}
	return nil
}

// packBits turns 80 edge-to-edge durations into 5 bytes, MSB first. The
// durations alternate (low phase, high phase) per bit. The low phase is
// fixed at ~50µs by the protocol, so it serves as the per-bit reference: a
// high phase outlasting its low phase is a 1. Comparing phases against each
// other rather than an absolute threshold tolerates jitter and clock error.
func packBits(cycles []Microseconds) [5]byte {
	var b [5]byte
	for i := 0; i < responseBits; i++ {
		low := cycles[2*i]
		high := cycles[2*i+1]
		if low < high {
			b[i/8] |= 1 << (7 - i%8)
		}
	}
	return b
}
