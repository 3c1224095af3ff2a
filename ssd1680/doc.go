// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1680 describes the waveform programs of SSD1680 e-paper
// controllers.
//
// A waveform setting is the 153 byte look-up table written to the LUT
// register followed by six voltage and control bytes: EOPQ, VGH, VSH1, VSH2,
// VSL and VCOM. The raw 159 byte form is the concatenation of both, without
// any framing.
//
// The LUT is split into four regions:
//
//	bytes   0..59  VS groups, 5 tables of 12 bytes (one byte per timing group)
//	bytes  60..143 timing groups, 12 groups of TPa TPb SRab TPc TPd SRcd RP
//	bytes 144..149 frame rate, one nibble per timing group
//	bytes 150..152 gate scan selection (XON), one bit pair per timing group
//
// Values are never range checked. Whether a setting is safe for a given panel
// depends on the panel and is the caller's responsibility.
package ssd1680
