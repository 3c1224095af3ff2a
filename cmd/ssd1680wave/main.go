// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ssd1680wave inspects, converts and loads SSD1680 waveform settings.
//
// The waveform is taken from a built-in preset, a raw 159 byte blob or a
// named entry of a YAML document. It is printed as a table and can be written
// back as a blob or YAML, or programmed into a panel on the Waveshare HAT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/epaper/ssd1680"
	"github.com/GermanBionicSystems/epaper/ssd1680/wavedump"
	"github.com/GermanBionicSystems/epaper/ssd1680/wavefile"
)

type source struct {
	preset string
	blob   string
	config string
	name   string
}

// load returns the selected waveform and a name describing it.
func (s *source) load() (ssd1680.WaveformSetting, string, error) {
	n := 0
	for _, v := range []string{s.preset, s.blob, s.config} {
		if v != "" {
			n++
		}
	}
	if n > 1 {
		return ssd1680.WaveformSetting{}, "", errors.New("use only one of -preset, -blob and -config")
	}

	switch {
	case s.blob != "":
		w, err := wavefile.LoadBlob(s.blob)
		return w, s.blob, err
	case s.config != "":
		if s.name == "" {
			return ssd1680.WaveformSetting{}, "", errors.New("-config requires -name")
		}
		d, err := wavefile.Load(s.config)
		if err != nil {
			return ssd1680.WaveformSetting{}, "", err
		}
		w, err := d.Resolve(s.name)
		return w, s.name, err
	default:
		name := s.preset
		if name == "" {
			name = "gray4"
		}
		w, ok := ssd1680.Preset(name)
		if !ok {
			return ssd1680.WaveformSetting{}, "", fmt.Errorf("unknown preset %q", name)
		}
		return w, name, nil
	}
}

func presetNames() []string {
	var names []string
	for name := range ssd1680.Presets() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func program(spiID string, w ssd1680.WaveformSetting) error {
	if _, err := host.Init(); err != nil {
		return err
	}

	b, err := spireg.Open(spiID)
	if err != nil {
		return err
	}
	defer b.Close()

	dev, err := ssd1680.NewHat(b)
	if err != nil {
		return err
	}
	log.Printf("programming %s on %s", w, dev)
	return dev.Program(w)
}

func mainImpl() error {
	var src source
	flag.StringVar(&src.preset, "preset", "", "built-in waveform; one of gray4, fast, fast2")
	flag.StringVar(&src.blob, "blob", "", "read a raw 159 byte waveform")
	flag.StringVar(&src.config, "config", "", "read waveforms from a YAML document")
	flag.StringVar(&src.name, "name", "", "waveform to use from -config")
	list := flag.Bool("list", false, "list available waveforms and exit")
	out := flag.String("o", "", "write the waveform as a raw blob")
	asYAML := flag.Bool("yaml", false, "print the waveform as a YAML document instead of a table")
	color := flag.Bool("color", false, "color VS bytes in the table")
	all := flag.Bool("all", false, "print empty timing groups")
	prog := flag.Bool("program", false, "program the waveform into the panel")
	spiID := flag.String("spi", "", "SPI port to use with -program")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	if *list {
		names := presetNames()
		if src.config != "" {
			d, err := wavefile.Load(src.config)
			if err != nil {
				return err
			}
			names = d.Names()
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	w, name, err := src.load()
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %s", name, w)

	if *out != "" {
		if err := wavefile.SaveBlob(*out, w); err != nil {
			return err
		}
		log.Printf("wrote %s", *out)
	}

	if *asYAML {
		if err := wavefile.Encode(os.Stdout, name, w); err != nil {
			return err
		}
	} else {
		if err := wavedump.Write(wavedump.NewTerminal(), w, &wavedump.Opts{Color: *color, All: *all}); err != nil {
			return err
		}
	}

	if *prog {
		return program(*spiID, w)
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "ssd1680wave: %s.\n", err)
		os.Exit(1)
	}
}
