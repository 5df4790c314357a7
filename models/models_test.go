// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

type record struct {
	cmd  byte
	args []byte
}

// fakeIface records the command stream instead of talking to hardware.
type fakeIface struct {
	records []record
	// failAt makes SendCommand fail on the n-th call (1-based). 0 disables.
	failAt int
	calls  int
	err    error
}

func (f *fakeIface) SendCommand(cmd byte, args ...byte) error {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		if f.err == nil {
			f.err = errors.New("bus error")
		}
		return f.err
	}
	f.records = append(f.records, record{cmd: cmd, args: append([]byte(nil), args...)})
	return nil
}

func (f *fakeIface) SendPixels(data []byte) error {
	return errors.New("unexpected pixel data")
}

func (f *fakeIface) SendRepeatedPixel(word []byte, count int) error {
	return errors.New("unexpected pixel data")
}

// noDelay skips settle delays in tests.
type noDelay struct {
	slept time.Duration
}

func (d *noDelay) Sleep(t time.Duration) {
	d.slept += t
}

func TestST7789Init(t *testing.T) {
	iface := &fakeIface{}
	delay := &noDelay{}
	opts := &options.ModelOptions{Width: 240, Height: 320, Inversion: options.InversionOn}

	m := ST7789{}
	if err := m.Init(iface, opts, pixel.RGB565, delay); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	want := []record{
		{cmd: dcs.SLPOUT},
		{cmd: dcs.MADCTL, args: []byte{0x00}},
		{cmd: dcs.INVON},
		{cmd: dcs.COLMOD, args: []byte{0x55}},
		{cmd: dcs.NORON},
		{cmd: dcs.DISPON},
	}
	if diff := cmp.Diff(iface.records, want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("Init() command stream difference (-got +want):\n%s", diff)
	}
	if want := 300 * time.Millisecond; delay.slept != want {
		t.Errorf("Init() slept %v, want %v", delay.slept, want)
	}
}

func TestILI9341Init(t *testing.T) {
	iface := &fakeIface{}
	delay := &noDelay{}
	opts := &options.ModelOptions{
		Width:       240,
		Height:      320,
		ColorOrder:  options.BGR,
		Orientation: options.Orientation{Rotation: options.Rotate90},
	}

	m := ILI9341{}
	if err := m.Init(iface, opts, pixel.RGB666, delay); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	want := []record{
		{cmd: dcs.MADCTL, args: []byte{0x28}},
		{cmd: 0xB4, args: []byte{0x00}},
		{cmd: dcs.INVOFF},
		{cmd: dcs.COLMOD, args: []byte{0x66}},
		{cmd: dcs.NORON},
		{cmd: dcs.SLPOUT},
		{cmd: dcs.DISPON},
	}
	if diff := cmp.Diff(iface.records, want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("Init() command stream difference (-got +want):\n%s", diff)
	}
}

func TestILI948xInit(t *testing.T) {
	for _, m := range []Model{ILI9486{}, ILI9488{}} {
		t.Run(m.String(), func(t *testing.T) {
			iface := &fakeIface{}
			opts := &options.ModelOptions{Width: 320, Height: 480}

			if err := m.Init(iface, opts, pixel.RGB666, &noDelay{}); err != nil {
				t.Fatalf("Init() failed: %v", err)
			}
			want := []record{
				{cmd: dcs.SLPOUT},
				{cmd: dcs.COLMOD, args: []byte{0x66}},
				{cmd: dcs.MADCTL, args: []byte{0x00}},
				{cmd: dcs.INVOFF},
				{cmd: 0xB6, args: []byte{0x02, 0x02, 0x3B}},
				{cmd: dcs.NORON},
				{cmd: dcs.DISPON},
			}
			if diff := cmp.Diff(iface.records, want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
				t.Errorf("Init() command stream difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestInitSurfacesTransportError(t *testing.T) {
	iface := &fakeIface{failAt: 2, err: errors.New("spi: broken wire")}
	m := ST7789{}
	opts := &options.ModelOptions{Width: 240, Height: 320}

	err := m.Init(iface, opts, pixel.RGB565, &noDelay{})
	if !errors.Is(err, iface.err) {
		t.Errorf("Init() = %v, want %v", err, iface.err)
	}
	// The sequence must stop at the failing command.
	if got := len(iface.records); got != 1 {
		t.Errorf("commands after failure = %d, want 1", got)
	}
}

func TestSetAddressWindow(t *testing.T) {
	iface := &fakeIface{}
	m := ST7789{}
	if err := m.SetAddressWindow(iface, 10, 10, 19, 19); err != nil {
		t.Fatalf("SetAddressWindow() failed: %v", err)
	}
	want := []record{
		{cmd: dcs.CASET, args: []byte{0x00, 0x0A, 0x00, 0x13}},
		{cmd: dcs.RASET, args: []byte{0x00, 0x0A, 0x00, 0x13}},
	}
	if diff := cmp.Diff(iface.records, want, cmp.AllowUnexported(record{})); diff != "" {
		t.Errorf("SetAddressWindow() difference (-got +want):\n%s", diff)
	}
}

func TestSetAddressWindowRejectsInvalid(t *testing.T) {
	iface := &fakeIface{}
	m := ILI9486{}
	if err := m.SetAddressWindow(iface, 20, 0, 10, 0); !errors.Is(err, dcs.ErrInvalidParameter) {
		t.Errorf("SetAddressWindow() = %v, want ErrInvalidParameter", err)
	}
	if len(iface.records) != 0 {
		t.Errorf("commands issued despite invalid window: %v", iface.records)
	}
}

func TestModelDeclarations(t *testing.T) {
	for _, tc := range []struct {
		m       Model
		name    string
		w, h    int
		formats []pixel.Format
	}{
		{ST7789{}, "ST7789", 240, 320, []pixel.Format{pixel.RGB565}},
		{ST7735S{}, "ST7735S", 132, 162, []pixel.Format{pixel.RGB565}},
		{ILI9341{}, "ILI9341", 240, 320, []pixel.Format{pixel.RGB565, pixel.RGB666}},
		{ILI9342C{}, "ILI9342C", 320, 240, []pixel.Format{pixel.RGB565, pixel.RGB666}},
		{ILI9486{}, "ILI9486", 320, 480, []pixel.Format{pixel.RGB565, pixel.RGB666}},
		{ILI9488{}, "ILI9488", 320, 480, []pixel.Format{pixel.RGB565, pixel.RGB666}},
		{ST7796{}, "ST7796", 320, 480, []pixel.Format{pixel.RGB565}},
		{GC9A01{}, "GC9A01", 240, 240, []pixel.Format{pixel.RGB565}},
		{GC9107{}, "GC9107", 128, 160, []pixel.Format{pixel.RGB565}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.name {
				t.Errorf("String() = %q, want %q", got, tc.name)
			}
			w, h := tc.m.Size()
			if w != tc.w || h != tc.h {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tc.w, tc.h)
			}
			if diff := cmp.Diff(tc.m.Formats(), tc.formats); diff != "" {
				t.Errorf("Formats() difference (-got +want):\n%s", diff)
			}
			if !Supports(tc.m, tc.formats[0]) {
				t.Errorf("Supports(%s) = false for preferred format", tc.formats[0])
			}
			if Supports(tc.m, pixel.Format(9)) {
				t.Error("Supports() accepted an unknown format")
			}
		})
	}
}

func TestST7789Pico1Offset(t *testing.T) {
	for _, tc := range []struct {
		r    options.Rotation
		x, y int
	}{
		{options.Rotate0, 52, 40},
		{options.Rotate90, 40, 53},
		{options.Rotate180, 53, 40},
		{options.Rotate270, 40, 52},
	} {
		x, y := ST7789Pico1Offset(options.Orientation{Rotation: tc.r})
		if x != tc.x || y != tc.y {
			t.Errorf("ST7789Pico1Offset(%s) = (%d,%d), want (%d,%d)", tc.r, x, y, tc.x, tc.y)
		}
	}
}
