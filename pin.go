// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import "periph.io/x/conn/v3/gpio"

// Pin is the driver's view of the sensor's data line. The line is open drain
// with a pull-up resistor: it idles high, either side may pull it low, and
// "setting high" means releasing the line so the pull-up raises it, not
// forcing a high-current output.
type Pin interface {
	// SetLow pulls the line low.
	SetLow() error
	// SetHigh releases the line to the pull-up.
	SetHigh() error
	// IsLow samples the line level.
	IsLow() bool
	// IsHigh samples the line level.
	IsHigh() bool
}

// GPIOPin adapts a periph.io gpio.PinIO to the Pin contract. Releasing the
// line is implemented by switching the pin to input with the internal
// pull-up enabled, which emulates open drain on push-pull GPIO hardware and
// leaves the pin readable for the edge capture loop.
type GPIOPin struct {
	p gpio.PinIO
}

// NewGPIOPin wraps p. The pin is left untouched until the first SetLow or
// SetHigh call.
func NewGPIOPin(p gpio.PinIO) *GPIOPin {
	return &GPIOPin{p: p}
}

// SetLow implements Pin.
func (g *GPIOPin) SetLow() error {
	return g.p.Out(gpio.Low)
}

// SetHigh implements Pin.
func (g *GPIOPin) SetHigh() error {
	return g.p.In(gpio.PullUp, gpio.NoEdge)
}

// IsLow implements Pin.
func (g *GPIOPin) IsLow() bool {
	return g.p.Read() == gpio.Low
}

// IsHigh implements Pin.
func (g *GPIOPin) IsHigh() bool {
	return g.p.Read() == gpio.High
}

func (g *GPIOPin) String() string {
	return g.p.Name()
}
