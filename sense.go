// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht22

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// minReadInterval is the shortest spacing between reads the sensor tolerates.
const minReadInterval = 2 * time.Second

// Sense queries the sensor once and fills in temperature and humidity. The
// pressure is not measured by this device and is set to 0. Calls are
// serialized; note the sensor will not answer if polled more often than once
// every 2 seconds.
func (d *Dev) Sense(env *physic.Env) error {
	env.Temperature = 0
	env.Pressure = 0
	env.Humidity = 0

	d.mu.Lock()
	defer d.mu.Unlock()

	deciRH, deciC, err := d.read()
	if err != nil {
		return err
	}

	env.Humidity = physic.RelativeHumidity(deciRH) * physic.MilliRH
	env.Temperature = physic.ZeroCelsius + (physic.Celsius/10)*physic.Temperature(deciC)
	return nil
}

// SenseContinuous returns a channel yielding a reading per interval. The
// minimum interval is 2 seconds, the sensor's own pacing constraint. Failed
// reads are skipped, not retried early. To end the stream, call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minReadInterval {
		return nil, fmt.Errorf("dht22: invalid interval %s, minimum %s", interval, minReadInterval)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		return nil, errors.New("dht22: sense continuous already running")
	}

	d.shutdown = make(chan struct{})
	ch := make(chan physic.Env, 16)
	go func(shutdown chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				close(ch)
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil {
					ch <- e
				}
			}
		}
	}(d.shutdown)
	return ch, nil
}

// Halt interrupts a running SenseContinuous() operation.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return nil
}

// Precision returns the resolution of the device for its measured
// parameters.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = physic.Celsius / 10
	env.Pressure = 0
	env.Humidity = physic.MilliRH
}

func (d *Dev) String() string {
	return fmt.Sprintf("dht22: %s", d.pin)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
