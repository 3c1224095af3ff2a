// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epaper is a container for e-paper controller support.
//
// ssd1680 holds the waveform settings of SSD1680 controllers and writes them
// over SPI; its subpackages read and print them. The ssd1680wave command
// wraps all of it.
package epaper
