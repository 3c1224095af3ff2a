// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1680

// Registers written when programming a waveform.
const (
	gateDrivingVoltageControl   byte = 0x03
	sourceDrivingVoltageControl byte = 0x04
	writeVcomRegister           byte = 0x2C
	writeLutRegister            byte = 0x32
	endOptionEOPT               byte = 0x3F
)

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	waitUntilIdle()
}

// programWaveform loads w into the controller. The LUT goes first, the
// voltages follow in register order.
func programWaveform(ctrl controller, w WaveformSetting) {
	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(w.lut[:])
	ctrl.waitUntilIdle()

	ctrl.sendCommand(endOptionEOPT)
	ctrl.sendData([]byte{w.eopq})

	ctrl.sendCommand(gateDrivingVoltageControl)
	ctrl.sendData([]byte{w.vgh})

	ctrl.sendCommand(sourceDrivingVoltageControl)
	ctrl.sendData([]byte{w.vsh1, w.vsh2, w.vsl})

	ctrl.sendCommand(writeVcomRegister)
	ctrl.sendData([]byte{w.vcom})
}
