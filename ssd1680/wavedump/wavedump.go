// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package wavedump prints SSD1680 waveform settings as tables, optionally
// with ANSI colors for terminals.
package wavedump

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/GermanBionicSystems/epaper/ssd1680"
)

// Opts represents the options available for a dump.
type Opts struct {
	// Color prefixes every VS byte with a colored block.
	Color bool
	// Palette used when Color is set. Defaults to ansi256.Default.
	Palette *ansi256.Palette
	// All prints timing groups which are all zero too.
	All bool

	_ struct{}
}

const reset = "\033[0m"

// NewTerminal returns a writer to stdout which understands ANSI colors on
// every platform.
func NewTerminal() io.Writer {
	return colorable.NewColorableStdout()
}

// Write prints w as a table.
func Write(dst io.Writer, w ssd1680.WaveformSetting, opts *Opts) error {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}

	// Build the dump in memory so dst sees a single write.
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "VS")
	for n := 0; n < ssd1680.VSGroups; n++ {
		fmt.Fprintf(&buf, "  LUT%d ", n)
		for _, b := range w.VSGroup(n) {
			if opts.Color {
				buf.WriteString(p.Block(levelColor(b)))
				buf.WriteString(reset)
			}
			fmt.Fprintf(&buf, " %02x", b)
		}
		buf.WriteByte('\n')
	}

	fmt.Fprintln(&buf, "Timing     TPa TPb SRab TPc TPd SRcd  RP frames")
	for n := 0; n < ssd1680.TimingGroups; n++ {
		g := w.Timing(n)
		if g == (ssd1680.TimingGroup{}) && !opts.All {
			continue
		}
		fmt.Fprintf(&buf, "  group %-2d %3d %3d %4d %3d %3d %4d %3d %6d\n",
			n, g.TPa, g.TPb, g.SRab, g.TPc, g.TPd, g.SRcd, g.RP, g.Frames())
	}

	fr := w.FrameRate()
	xon := w.GateScan()
	fmt.Fprintf(&buf, "FR    % x\n", fr[:])
	fmt.Fprintf(&buf, "XON   % x\n", xon[:])
	fmt.Fprintf(&buf, "EOPQ 0x%02x  VGH 0x%02x  VSH1 0x%02x  VSH2 0x%02x  VSL 0x%02x  VCOM 0x%02x\n",
		w.EOPQ(), w.VGH(), w.VSH1(), w.VSH2(), w.VSL(), w.VCOM())
	fmt.Fprintf(&buf, "frames %d  crc8 0x%02x\n", w.Frames(), w.Fingerprint())

	_, err := buf.WriteTo(dst)
	return err
}

// levelColor maps a VS byte to a color, two bits per channel. Equal bytes
// share a color.
func levelColor(b byte) color.NRGBA {
	if b == 0 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{
		R: (b >> 6 & 3) * 85,
		G: (b >> 4 & 3) * 85,
		B: (b >> 2 & 3) * 85,
		A: 255 - (b&3)*64,
	}
}
