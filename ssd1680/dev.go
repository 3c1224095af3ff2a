// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1680

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"
)

// ErrBusyTimeout is returned when the controller keeps the busy pin high for
// too long.
var ErrBusyTimeout = errors.New("ssd1680: timed out waiting for busy pin")

// Dev writes waveform settings to an SSD1680 controller. It does not drive
// the reset pin and never triggers a display update; both are left to the
// display driver sharing the bus.
type Dev struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	busy gpio.PinIn

	busyTimeout time.Duration
}

// NewSPI creates a handler talking to the controller on p. cs may be nil when
// chip select is handled by the SPI port.
func NewSPI(p spi.Port, dc, cs gpio.PinOut, busy gpio.PinIn) (*Dev, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1680: %w", err)
	}

	if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("ssd1680: %w", err)
	}

	return &Dev{
		c:           c,
		dc:          dc,
		cs:          cs,
		busy:        busy,
		busyTimeout: 5 * time.Second,
	}, nil
}

// NewHat creates a handler using the pins of the Waveshare e-Paper HAT.
func NewHat(p spi.Port) (*Dev, error) {
	return NewSPI(p, rpi.P1_22, rpi.P1_24, rpi.P1_18)
}

// Program writes the LUT and the voltage registers of w.
func (d *Dev) Program(w WaveformSetting) error {
	eh := errorHandler{d: *d}

	programWaveform(&eh, w)

	return eh.err
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1680.Dev{%s, %s}", d.c, d.dc)
}
