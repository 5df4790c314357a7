// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package models

import (
	"time"

	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

// ILI9341 drives the Ilitek ILI9341 (240x320 GRAM).
type ILI9341 struct{}

func (ILI9341) String() string {
	return "ILI9341"
}

// Size implements Model.
func (ILI9341) Size() (int, int) {
	return 240, 320
}

// Formats implements Model.
func (ILI9341) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565, pixel.RGB666}
}

// Init implements Model.
func (ILI9341) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	return ili934xInit(iface, opts, format, delay)
}

// SetAddressWindow implements Model.
func (ILI9341) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}

// ILI9342C drives the Ilitek ILI9342C (320x240 GRAM), the landscape-native
// sibling of the ILI9341.
type ILI9342C struct{}

func (ILI9342C) String() string {
	return "ILI9342C"
}

// Size implements Model.
func (ILI9342C) Size() (int, int) {
	return 320, 240
}

// Formats implements Model.
func (ILI9342C) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565, pixel.RGB666}
}

// Init implements Model.
func (ILI9342C) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	return ili934xInit(iface, opts, format, delay)
}

// SetAddressWindow implements Model.
func (ILI9342C) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}

// ili934xInit is the power-up sequence shared by the ILI934x family.
//
// Datasheet timing: 5ms must pass after reset before commands are accepted,
// 120ms between a reset-implied sleep-in and SLPOUT, and 60ms+80ms for the
// power-on sequence after SLPOUT.
func ili934xInit(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	s := seq{iface: iface, delay: delay}

	s.sleep(5 * time.Millisecond)

	s.madctl(opts)
	s.cmd(0xB4, 0x00) // display inversion control
	s.invert(opts.Inversion)
	s.pixelFormat(format)
	s.cmd(dcs.NORON)
	s.sleep(120 * time.Millisecond)
	s.cmd(dcs.SLPOUT)
	s.sleep(140 * time.Millisecond)
	s.cmd(dcs.DISPON)

	return s.err
}
