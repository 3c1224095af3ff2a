// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1680

import (
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/epaper/common"
)

// Layout of a raw waveform setting.
const (
	// LUTSize is the number of bytes written to the LUT register.
	LUTSize = 153
	// ScalarSize is the number of voltage and control bytes following the
	// LUT.
	ScalarSize = 6
	// Size is the length of a raw waveform setting.
	Size = LUTSize + ScalarSize

	VSGroups        = 5
	VSGroupSize     = 12
	TimingGroups    = 12
	TimingGroupSize = 7
	FrameRateSize   = 6
	GateScanSize    = 3
)

const (
	timingOffset    = VSGroups * VSGroupSize
	frameRateOffset = timingOffset + TimingGroups*TimingGroupSize
	gateScanOffset  = frameRateOffset + FrameRateSize
)

// ErrInvalidLength is returned when a raw waveform setting is not exactly
// Size bytes long.
var ErrInvalidLength = errors.New("ssd1680: invalid waveform setting length")

// WaveformSetting is one complete waveform program: the LUT register content
// and the voltages used while it runs.
//
// The zero value is an all-zero setting. Values are immutable and may be
// compared with ==.
type WaveformSetting struct {
	lut [LUTSize]byte

	eopq byte
	vgh  byte
	vsh1 byte
	vsh2 byte
	vsl  byte
	vcom byte
}

// New decodes a raw waveform setting. The first LUTSize bytes become the LUT,
// the remaining bytes are EOPQ, VGH, VSH1, VSH2, VSL and VCOM in that order.
//
// raw is copied; the result does not alias it.
func New(raw [Size]byte) WaveformSetting {
	w := WaveformSetting{
		eopq: raw[LUTSize],
		vgh:  raw[LUTSize+1],
		vsh1: raw[LUTSize+2],
		vsh2: raw[LUTSize+3],
		vsl:  raw[LUTSize+4],
		vcom: raw[LUTSize+5],
	}
	copy(w.lut[:], raw[:LUTSize])
	return w
}

// Parse decodes a raw waveform setting held in a slice. It fails with
// ErrInvalidLength unless b is exactly Size bytes long.
func Parse(b []byte) (WaveformSetting, error) {
	if len(b) != Size {
		return WaveformSetting{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	return New([Size]byte(b)), nil
}

// Bytes returns the raw form of w, the inverse of New.
func (w WaveformSetting) Bytes() [Size]byte {
	var raw [Size]byte
	copy(raw[:], w.lut[:])
	s := w.Scalars()
	copy(raw[LUTSize:], s[:])
	return raw
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (w WaveformSetting) MarshalBinary() ([]byte, error) {
	raw := w.Bytes()
	return raw[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It has the same
// length requirement as Parse and leaves w untouched on error.
func (w *WaveformSetting) UnmarshalBinary(b []byte) error {
	v, err := Parse(b)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// LUT returns a copy of the look-up table.
func (w WaveformSetting) LUT() [LUTSize]byte {
	return w.lut
}

// EOPQ returns the end option byte (register 0x3F).
func (w WaveformSetting) EOPQ() byte { return w.eopq }

// VGH returns the gate driving voltage byte (register 0x03).
func (w WaveformSetting) VGH() byte { return w.vgh }

// VSH1 returns the first source driving voltage byte (register 0x04).
func (w WaveformSetting) VSH1() byte { return w.vsh1 }

// VSH2 returns the second source driving voltage byte (register 0x04).
func (w WaveformSetting) VSH2() byte { return w.vsh2 }

// VSL returns the negative source driving voltage byte (register 0x04).
func (w WaveformSetting) VSL() byte { return w.vsl }

// VCOM returns the VCOM register value (register 0x2C).
func (w WaveformSetting) VCOM() byte { return w.vcom }

// Scalars returns EOPQ, VGH, VSH1, VSH2, VSL and VCOM in wire order.
func (w WaveformSetting) Scalars() [ScalarSize]byte {
	return [ScalarSize]byte{w.eopq, w.vgh, w.vsh1, w.vsh2, w.vsl, w.vcom}
}

// WithScalars returns a copy of w using the LUT of w and the given EOPQ, VGH,
// VSH1, VSH2, VSL and VCOM bytes.
func (w WaveformSetting) WithScalars(s [ScalarSize]byte) WaveformSetting {
	w.eopq, w.vgh, w.vsh1, w.vsh2, w.vsl, w.vcom = s[0], s[1], s[2], s[3], s[4], s[5]
	return w
}

// VSGroup returns the voltage selection table n (0 to VSGroups-1). Byte i of
// the table applies to timing group i. It panics if n is out of range.
func (w WaveformSetting) VSGroup(n int) [VSGroupSize]byte {
	checkIndex("VS group", n, VSGroups)
	var g [VSGroupSize]byte
	copy(g[:], w.lut[n*VSGroupSize:(n+1)*VSGroupSize])
	return g
}

// checkIndex panics unless 0 <= n < limit. Regions are adjacent in the LUT,
// so plain slicing would silently read the next region.
func checkIndex(what string, n, limit int) {
	if uint(n) >= uint(limit) {
		panic(fmt.Sprintf("ssd1680: %s %d out of range [0, %d)", what, n, limit))
	}
}

// TimingGroup is the timing of one group of the waveform. TP values are
// phase lengths in frames, SR values repeat a pair of phases and RP repeats
// the whole group.
type TimingGroup struct {
	TPa, TPb, SRab uint8
	TPc, TPd, SRcd uint8
	RP             uint8
}

// Bytes returns the group in LUT order.
func (g TimingGroup) Bytes() [TimingGroupSize]byte {
	return [TimingGroupSize]byte{g.TPa, g.TPb, g.SRab, g.TPc, g.TPd, g.SRcd, g.RP}
}

// Frames returns the number of frames the group runs for. A repeat count of
// n means n+1 passes.
func (g TimingGroup) Frames() int {
	ab := (int(g.TPa) + int(g.TPb)) * (int(g.SRab) + 1)
	cd := (int(g.TPc) + int(g.TPd)) * (int(g.SRcd) + 1)
	return (ab + cd) * (int(g.RP) + 1)
}

// Timing returns timing group n (0 to TimingGroups-1). It panics if n is out
// of range.
func (w WaveformSetting) Timing(n int) TimingGroup {
	checkIndex("timing group", n, TimingGroups)
	b := w.lut[timingOffset+n*TimingGroupSize : timingOffset+(n+1)*TimingGroupSize]
	return TimingGroup{
		TPa:  b[0],
		TPb:  b[1],
		SRab: b[2],
		TPc:  b[3],
		TPd:  b[4],
		SRcd: b[5],
		RP:   b[6],
	}
}

// Frames returns the number of frames of a complete drive cycle.
func (w WaveformSetting) Frames() int {
	n := 0
	for i := 0; i < TimingGroups; i++ {
		n += w.Timing(i).Frames()
	}
	return n
}

// FrameRate returns the frame rate bytes.
func (w WaveformSetting) FrameRate() [FrameRateSize]byte {
	var fr [FrameRateSize]byte
	copy(fr[:], w.lut[frameRateOffset:gateScanOffset])
	return fr
}

// FrameRateOf returns the frame rate selector of a timing group. Even groups
// use the high nibble.
func (w WaveformSetting) FrameRateOf(group int) uint8 {
	checkIndex("timing group", group, TimingGroups)
	b := w.lut[frameRateOffset+group/2]
	if group%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// GateScan returns the gate scan selection bytes.
func (w WaveformSetting) GateScan() [GateScanSize]byte {
	var xon [GateScanSize]byte
	copy(xon[:], w.lut[gateScanOffset:])
	return xon
}

// GateScanOf returns the gate scan selector of a timing group. Group 0 is in
// the two most significant bits of the first byte.
func (w WaveformSetting) GateScanOf(group int) uint8 {
	checkIndex("timing group", group, TimingGroups)
	b := w.lut[gateScanOffset+group/4]
	return (b >> (6 - 2*uint(group%4))) & 0b11
}

// Fingerprint returns the CRC8 of the raw form. It is handy for telling
// settings apart in logs.
func (w WaveformSetting) Fingerprint() byte {
	raw := w.Bytes()
	return common.CRC8(raw[:])
}

// String returns the voltage bytes and the fingerprint.
func (w WaveformSetting) String() string {
	return fmt.Sprintf("ssd1680.WaveformSetting{EOPQ: 0x%02x, VGH: 0x%02x, VSH1: 0x%02x, VSH2: 0x%02x, VSL: 0x%02x, VCOM: 0x%02x, CRC8: 0x%02x}",
		w.eopq, w.vgh, w.vsh1, w.vsh2, w.vsl, w.vcom, w.Fingerprint())
}
