// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package wavefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/epaper/ssd1680"
)

func sequence() ssd1680.WaveformSetting {
	var raw [ssd1680.Size]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	return ssd1680.New(raw)
}

func TestReadBlob(t *testing.T) {
	w := sequence()
	raw := w.Bytes()

	for _, tc := range []struct {
		name    string
		input   []byte
		wantErr bool
	}{
		{name: "exact", input: raw[:]},
		{name: "empty", input: nil, wantErr: true},
		{name: "158", input: raw[:ssd1680.Size-1], wantErr: true},
		{name: "160", input: append(raw[:], 0xAA), wantErr: true},
		{name: "much longer", input: bytes.Repeat(raw[:], 4), wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadBlob(bytes.NewReader(tc.input))
			if tc.wantErr {
				if !errors.Is(err, ssd1680.ErrInvalidLength) {
					t.Errorf("ReadBlob() error = %v, want ErrInvalidLength", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBlob() failed: %v", err)
			}
			if got != w {
				t.Errorf("ReadBlob() = %v, want %v", got, w)
			}
		})
	}
}

func TestBlobFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray4.bin")

	if err := SaveBlob(path, ssd1680.Gray4()); err != nil {
		t.Fatalf("SaveBlob() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := ssd1680.Gray4().Bytes()
	if diff := cmp.Diff(data, want[:]); diff != "" {
		t.Errorf("file content difference (-got +want):\n%s", diff)
	}

	got, err := LoadBlob(path)
	if err != nil {
		t.Fatalf("LoadBlob() failed: %v", err)
	}
	if got != ssd1680.Gray4() {
		t.Errorf("LoadBlob() = %v, want %v", got, ssd1680.Gray4())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("SaveBlob() left %d files behind, want 1", len(entries))
	}

	if _, err := LoadBlob(filepath.Join(dir, "missing.bin")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadBlob(missing) error = %v, want ErrNotExist", err)
	}
}

func TestHex(t *testing.T) {
	w := sequence()
	raw := w.Bytes()

	text := FormatHex(w)
	if got := strings.Count(text, "\n"); got != 14 {
		t.Errorf("FormatHex() has %d lines, want 14", got)
	}
	if !strings.HasPrefix(text, "00 01 02 03 04 05 06 07 08 09 0a 0b\n0c ") {
		t.Errorf("FormatHex() = %q", text)
	}

	var comma []string
	for _, b := range raw {
		comma = append(comma, fmt.Sprintf("0x%02X", b))
	}

	for _, tc := range []struct {
		name  string
		input string
	}{
		{name: "formatted", input: text},
		{name: "commas", input: strings.Join(comma, ", ")},
		{name: "packed", input: strings.ReplaceAll(strings.ReplaceAll(text, " ", ""), "\n", "")},
		{name: "short tokens", input: "0 1 2 3 4 5 6 7 8 9 a b " + strings.Join(strings.Fields(text)[12:], " ")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHex(tc.input)
			if err != nil {
				t.Fatalf("ParseHex() failed: %v", err)
			}
			if got != w {
				t.Errorf("ParseHex() = %v, want %v", got, w)
			}
		})
	}

	if _, err := ParseHex("00 01 02"); !errors.Is(err, ssd1680.ErrInvalidLength) {
		t.Errorf("ParseHex(short) error = %v, want ErrInvalidLength", err)
	}
	if _, err := ParseHex("zz"); err == nil {
		t.Errorf("ParseHex(zz) succeeded")
	}
	if _, err := ParseHex("abc"); err == nil {
		t.Errorf("ParseHex(abc) succeeded")
	}
}

func TestDocument(t *testing.T) {
	dir := t.TempDir()
	if err := SaveBlob(filepath.Join(dir, "seq.bin"), sequence()); err != nil {
		t.Fatal(err)
	}

	doc := `waveforms:
  - name: full
    preset: gray4
  - name: night
    preset: fast2
    override:
      vcom: 0x24
      vgh: 0x19
  - name: file
    blob: seq.bin
  - name: inline
    hex: |
` + indent(FormatHex(ssd1680.FastRefresh()), "      ")

	path := filepath.Join(dir, "waveforms.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if diff := cmp.Diff(d.Names(), []string{"full", "night", "file", "inline"}); diff != "" {
		t.Errorf("Names() difference (-got +want):\n%s", diff)
	}

	night := ssd1680.FastRefresh2()
	s := night.Scalars()
	s[1], s[5] = 0x19, 0x24
	night = night.WithScalars(s)

	for _, tc := range []struct {
		name string
		want ssd1680.WaveformSetting
	}{
		{"full", ssd1680.Gray4()},
		{"night", night},
		{"file", sequence()},
		{"inline", ssd1680.FastRefresh()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := d.Resolve(tc.name)
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Resolve() = %v, want %v", got, tc.want)
			}
		})
	}

	if _, err := d.Resolve("missing"); !errors.Is(err, ErrUnknownWaveform) {
		t.Errorf("Resolve(missing) error = %v, want ErrUnknownWaveform", err)
	}
}

func TestDocumentBrokenBlob(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "short.bin"), make([]byte, 158), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Decode(strings.NewReader("waveforms:\n  - name: short\n    blob: short.bin\n"), dir)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if _, err := d.Resolve("short"); !errors.Is(err, ssd1680.ErrInvalidLength) {
		t.Errorf("Resolve() error = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
	}{
		{name: "no name", doc: "waveforms:\n  - preset: gray4\n"},
		{name: "duplicate", doc: "waveforms:\n  - name: a\n    preset: gray4\n  - name: a\n    preset: fast\n"},
		{name: "no source", doc: "waveforms:\n  - name: a\n"},
		{name: "two sources", doc: "waveforms:\n  - name: a\n    preset: gray4\n    blob: a.bin\n"},
		{name: "unknown preset", doc: "waveforms:\n  - name: a\n    preset: sepia\n"},
		{name: "unknown field", doc: "waveforms:\n  - name: a\n    preset: gray4\n    colour: red\n"},
		{name: "override out of range", doc: "waveforms:\n  - name: a\n    preset: gray4\n    override:\n      vcom: 300\n"},
		{name: "not yaml", doc: "waveforms: [\n"},
		{name: "two documents", doc: "waveforms:\n  - name: a\n    preset: gray4\n---\nwaveforms:\n  - name: b\n    preset: fast\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tc.doc), "."); err == nil {
				t.Errorf("Decode() succeeded")
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	d, err := Decode(strings.NewReader(""), ".")
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if len(d.Names()) != 0 {
		t.Errorf("Names() = %v, want none", d.Names())
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "gray4-copy", ssd1680.Gray4()); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	d, err := Decode(&buf, ".")
	if err != nil {
		t.Fatalf("Decode() failed: %v\n%s", err, buf.String())
	}
	got, err := d.Resolve("gray4-copy")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got != ssd1680.Gray4() {
		t.Errorf("Resolve() = %v, want %v", got, ssd1680.Gray4())
	}
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "") + "\n"
}
