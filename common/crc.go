// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains helpers shared by the packages of this module.
package common

// CRC8Init is the initial value of a CRC8 computation.
const CRC8Init byte = 0xFF

const crc8Poly = 0x31

var crc8Table = func() (t [256]byte) {
	for i := range t {
		crc := byte(i)
		for range 8 {
			if crc&0x80 == 0 {
				crc <<= 1
			} else {
				crc = crc<<1 ^ crc8Poly
			}
		}
		t[i] = crc
	}
	return t
}()

// CRC8 calculates the 8-bit CRC (polynomial 0x31, initial value 0xFF) of
// bytes. Waveform tables are fingerprinted with it.
func CRC8(bytes []byte) byte {
	return CRC8Update(CRC8Init, bytes)
}

// CRC8Update continues a CRC8 computation with more bytes, so that
// CRC8Update(CRC8(a), b) == CRC8(append(a, b...)).
func CRC8Update(crc byte, bytes []byte) byte {
	for _, val := range bytes {
		crc = crc8Table[crc^val]
	}
	return crc
}
