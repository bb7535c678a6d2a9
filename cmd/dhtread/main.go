// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// dhtread polls a DHT22 sensor on a GPIO pin and logs the readings.
package main

import (
	"errors"
	"flag"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/dht22"
)

func main() {
	pinName := flag.String("pin", "GPIO4", "GPIO pin the sensor data line is wired to")
	interval := flag.Duration("interval", 5*time.Second, "time between reads, minimum 2s")
	count := flag.Int("count", 0, "number of reads, 0 to run until interrupted")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(colorable.NewColorableStdout())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *interval < 2*time.Second {
		log.Fatalf("interval %s too short, the sensor needs at least 2s between reads", *interval)
	}

	if _, err := host.Init(); err != nil {
		log.WithError(err).Fatal("host initialization failed")
	}
	p := gpioreg.ByName(*pinName)
	if p == nil {
		log.Fatalf("no GPIO pin named %q", *pinName)
	}

	dev, err := dht22.NewGPIO(p)
	if err != nil {
		log.WithError(err).Fatal("sensor setup failed")
	}
	log.Debugf("reading %s every %s", dev, *interval)

	for i := 0; *count == 0 || i < *count; i++ {
		if i > 0 {
			time.Sleep(*interval)
		}
		reading, err := dev.Read()
		if err != nil {
			logFailure(log, err)
			continue
		}
		log.WithFields(logrus.Fields{
			"humidity":    reading.Humidity,
			"temperature": reading.Temperature,
		}).Info("reading")
	}
}

// logFailure reports each failure class distinctly so wiring trouble is
// distinguishable from a sensor that merely needs more time between reads.
func logFailure(log *logrus.Logger, err error) {
	var hs *dht22.HandshakeError
	var to *dht22.TimeoutError
	var cs *dht22.ChecksumError
	switch {
	case errors.As(err, &hs):
		log.WithField("stage", hs.Stage).Warn("sensor did not answer the handshake; check wiring and read pacing")
	case errors.As(err, &to):
		log.WithField("elapsed_us", uint32(to.Elapsed)).Warn("sensor stopped mid transmission")
	case errors.As(err, &cs):
		log.WithFields(logrus.Fields{
			"correct": cs.Correct,
			"actual":  cs.Actual,
		}).Warn("reading corrupted in transit")
	default:
		log.WithError(err).Error("pin I/O failed")
	}
}
