// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dht22 reads an AOSONG DHT22/AM2302 temperature and humidity sensor
// over its single-wire timing protocol.
//
// The sensor has no bus interface: a reading is requested by pulling the data
// line low for more than a millisecond, after which the sensor answers with
// 40 bits encoded in the durations of the line's high phases. The driver
// decodes this waveform by busy-polling the line against a microsecond
// counter, so it needs exclusive use of the CPU for a few milliseconds per
// read and a pin whose level can be sampled with low latency. Memory-mapped
// GPIO works; sysfs GPIO generally does not.
//
// The dht22.Dev type implements the physic.SenseEnv interface. The physic.Env
// measurement results contain a temperature and humidity value; the pressure
// is not set.
//
// Consecutive reads must be spaced at least 2 seconds apart or the sensor
// will not answer the handshake. The driver never retries on its own.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/Digital+humidity+and+temperature+sensor+AM2302.pdf
package dht22
