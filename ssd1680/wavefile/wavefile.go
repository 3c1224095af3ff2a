// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package wavefile reads and writes SSD1680 waveform settings.
//
// Two formats are supported. A blob is the raw 159 byte form, without
// header or checksum. A YAML document holds named waveforms, each taken from
// a built-in preset, a blob file or inline hex, with optional voltage
// overrides:
//
//	waveforms:
//	  - name: night
//	    preset: gray4
//	    override:
//	      vcom: 0x24
//	  - name: panel-otp
//	    blob: otp.bin
//	  - name: custom
//	    hex: |
//	      40 48 80 00 00 00 00 00 00 00 00 00
//	      ...
//
// Blob paths are relative to the directory of the document.
package wavefile

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GermanBionicSystems/epaper/ssd1680"
)

// ErrUnknownWaveform is returned by Resolve for names not in the document.
var ErrUnknownWaveform = errors.New("wavefile: unknown waveform")

// Document is a set of named waveform definitions.
type Document struct {
	Waveforms []Entry `yaml:"waveforms"`

	dir string
}

// Entry defines one waveform. Exactly one of Preset, Blob and Hex must be
// set.
type Entry struct {
	Name     string    `yaml:"name"`
	Preset   string    `yaml:"preset,omitempty"`
	Blob     string    `yaml:"blob,omitempty"`
	Hex      string    `yaml:"hex,omitempty"`
	Override *Override `yaml:"override,omitempty"`
}

// Override replaces voltage bytes of the waveform it is attached to. Nil
// fields keep the original value.
type Override struct {
	EOPQ *uint8 `yaml:"eopq,omitempty"`
	VGH  *uint8 `yaml:"vgh,omitempty"`
	VSH1 *uint8 `yaml:"vsh1,omitempty"`
	VSH2 *uint8 `yaml:"vsh2,omitempty"`
	VSL  *uint8 `yaml:"vsl,omitempty"`
	VCOM *uint8 `yaml:"vcom,omitempty"`
}

func (o *Override) apply(w ssd1680.WaveformSetting) ssd1680.WaveformSetting {
	if o == nil {
		return w
	}
	s := w.Scalars()
	for i, v := range []*uint8{o.EOPQ, o.VGH, o.VSH1, o.VSH2, o.VSL, o.VCOM} {
		if v != nil {
			s[i] = *v
		}
	}
	return w.WithScalars(s)
}

// ReadBlob reads a raw waveform setting. r must hold exactly ssd1680.Size
// bytes.
func ReadBlob(r io.Reader) (ssd1680.WaveformSetting, error) {
	// One extra byte is enough to tell an oversized input apart.
	b, err := io.ReadAll(io.LimitReader(r, ssd1680.Size+1))
	if err != nil {
		return ssd1680.WaveformSetting{}, fmt.Errorf("wavefile: %w", err)
	}
	w, err := ssd1680.Parse(b)
	if err != nil {
		return ssd1680.WaveformSetting{}, fmt.Errorf("wavefile: %w", err)
	}
	return w, nil
}

// LoadBlob reads a raw waveform setting from a file.
func LoadBlob(path string) (ssd1680.WaveformSetting, error) {
	f, err := os.Open(path)
	if err != nil {
		return ssd1680.WaveformSetting{}, fmt.Errorf("wavefile: %w", err)
	}
	defer f.Close()

	w, err := ReadBlob(f)
	if err != nil {
		return ssd1680.WaveformSetting{}, fmt.Errorf("%w (%s)", err, path)
	}
	return w, nil
}

// WriteBlob writes the raw form of w.
func WriteBlob(dst io.Writer, w ssd1680.WaveformSetting) error {
	raw := w.Bytes()
	if _, err := dst.Write(raw[:]); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	return nil
}

// SaveBlob writes the raw form of w to path. The file is replaced atomically.
func SaveBlob(path string, w ssd1680.WaveformSetting) error {
	var buf bytes.Buffer
	if err := WriteBlob(&buf, w); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".wavefile-*.tmp")
	if err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("wavefile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	return nil
}

// ParseHex decodes a waveform setting written as hex. Bytes may be separated
// by white space or commas and may carry a 0x prefix. Without separators
// every byte takes two digits.
func ParseHex(s string) (ssd1680.WaveformSetting, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	raw := make([]byte, 0, ssd1680.Size)
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		if len(f) <= 2 {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return ssd1680.WaveformSetting{}, fmt.Errorf("wavefile: invalid hex byte %q", f)
			}
			raw = append(raw, byte(v))
			continue
		}
		b, err := hex.DecodeString(f)
		if err != nil {
			return ssd1680.WaveformSetting{}, fmt.Errorf("wavefile: %w", err)
		}
		raw = append(raw, b...)
	}

	w, err := ssd1680.Parse(raw)
	if err != nil {
		return ssd1680.WaveformSetting{}, fmt.Errorf("wavefile: %w", err)
	}
	return w, nil
}

// FormatHex writes w as hex, twelve bytes per line. The result is accepted by
// ParseHex.
func FormatHex(w ssd1680.WaveformSetting) string {
	raw := w.Bytes()

	var sb strings.Builder
	for i, b := range raw {
		switch {
		case i == 0:
		case i%12 == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Load reads a YAML document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wavefile: %w", err)
	}
	d, err := Decode(bytes.NewReader(data), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return d, nil
}

// Decode reads a single YAML document. Relative blob paths are resolved against
// dir. Input holding more than one document is rejected.
func Decode(r io.Reader, dir string) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	switch err := dec.Decode(&d); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("wavefile: %w", err)
	default:
		// A second document would be ignored otherwise.
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if err != nil {
				return nil, fmt.Errorf("wavefile: %w", err)
			}
			return nil, errors.New("wavefile: more than one YAML document")
		}
	}
	d.dir = dir

	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Document) validate() error {
	seen := map[string]bool{}
	for i, e := range d.Waveforms {
		if e.Name == "" {
			return fmt.Errorf("wavefile: waveform %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("wavefile: duplicate waveform %q", e.Name)
		}
		seen[e.Name] = true

		n := 0
		for _, s := range []string{e.Preset, e.Blob, e.Hex} {
			if s != "" {
				n++
			}
		}
		if n != 1 {
			return fmt.Errorf("wavefile: waveform %q needs exactly one of preset, blob and hex", e.Name)
		}
		if e.Preset != "" {
			if _, ok := ssd1680.Preset(e.Preset); !ok {
				return fmt.Errorf("wavefile: waveform %q: unknown preset %q", e.Name, e.Preset)
			}
		}
	}
	return nil
}

// Names returns the waveform names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Waveforms))
	for _, e := range d.Waveforms {
		names = append(names, e.Name)
	}
	return names
}

// Resolve builds the waveform called name, reading blob files as needed.
func (d *Document) Resolve(name string) (ssd1680.WaveformSetting, error) {
	for _, e := range d.Waveforms {
		if e.Name == name {
			w, err := d.resolve(&e)
			if err != nil {
				return ssd1680.WaveformSetting{}, fmt.Errorf("%w (waveform %q)", err, name)
			}
			return e.Override.apply(w), nil
		}
	}
	return ssd1680.WaveformSetting{}, fmt.Errorf("%w %q", ErrUnknownWaveform, name)
}

func (d *Document) resolve(e *Entry) (ssd1680.WaveformSetting, error) {
	switch {
	case e.Preset != "":
		w, _ := ssd1680.Preset(e.Preset)
		return w, nil
	case e.Blob != "":
		p := e.Blob
		if !filepath.IsAbs(p) {
			p = filepath.Join(d.dir, p)
		}
		return LoadBlob(p)
	default:
		return ParseHex(e.Hex)
	}
}

// Encode writes a document holding w as inline hex under name.
func Encode(dst io.Writer, name string, w ssd1680.WaveformSetting) error {
	enc := yaml.NewEncoder(dst)
	enc.SetIndent(2)
	d := Document{Waveforms: []Entry{{Name: name, Hex: FormatHex(w)}}}
	if err := enc.Encode(&d); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavefile: %w", err)
	}
	return nil
}
