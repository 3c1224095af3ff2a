// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1680

// Gray4 returns the 4 level grayscale waveform used for full refreshes.
func Gray4() WaveformSetting { return gray4 }

// FastRefresh returns a short waveform for quick partial updates. It leaves
// more ghosting behind than Gray4.
func FastRefresh() WaveformSetting { return fastRefresh }

// FastRefresh2 returns an alternative fast waveform which drives every
// transition back and forth and repeats its second group once.
func FastRefresh2() WaveformSetting { return fastRefresh2 }

// Presets returns the built-in waveforms by name.
func Presets() map[string]WaveformSetting {
	return map[string]WaveformSetting{
		"gray4": gray4,
		"fast":  fastRefresh,
		"fast2": fastRefresh2,
	}
}

// Preset looks up a built-in waveform by the name used in Presets.
func Preset(name string) (WaveformSetting, bool) {
	w, ok := Presets()[name]
	return w, ok
}

// In the VS tables each byte selects the source and VCOM level of the phases
// of one timing group. Timing groups are TPa, TPb, SRab, TPc, TPd, SRcd, RP.

var gray4 = WaveformSetting{
	lut: [LUTSize]byte{
		// VS
		0x40, 0x48, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x08, 0x48, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x48, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x20, 0x48, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		// Timing
		0x0A, 0x19, 0x00, 0x03, 0x08, 0x00, 0x00,
		0x14, 0x01, 0x00, 0x14, 0x01, 0x00, 0x03,
		0x0A, 0x03, 0x00, 0x08, 0x19, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		// Frame rate
		0x22, 0x22, 0x22, 0x22, 0x22, 0x22,

		// Gate scan
		0x00, 0x00, 0x00,
	},
	eopq: 0x22,
	vgh:  0x17,
	vsh1: 0x41,
	vsh2: 0x00,
	vsl:  0x32,
	vcom: 0x1C,
}

var fastRefresh = WaveformSetting{
	lut: [LUTSize]byte{
		// VS
		0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x40, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		// Timing
		0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		// Frame rate
		0x22, 0x22, 0x22, 0x22, 0x22, 0x22,

		// Gate scan
		0x00, 0x00, 0x00,
	},
	eopq: 0x22,
	vgh:  0x17,
	vsh1: 0x41,
	vsh2: 0x00,
	vsl:  0x32,
	// 0x36 gives a darker result on some panels.
	vcom: 0x1C,
}

var fastRefresh2 = WaveformSetting{
	lut: [LUTSize]byte{
		// VS
		0x80, 0x4A, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x40, 0x4A, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x80, 0x4A, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x40, 0x4A, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		// Timing
		0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x0F, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x02,
		0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		// Frame rate
		0x22, 0x22, 0x22, 0x22, 0x22, 0x22,

		// Gate scan
		0x00, 0x00, 0x00,
	},
	eopq: 0x22,
	vgh:  0x17,
	vsh1: 0x41,
	vsh2: 0x00,
	vsl:  0x32,
	vcom: 0x1C,
}
