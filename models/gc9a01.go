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

// GC9A01 drives the Galaxycore GC9A01 (240x240 GRAM), common on round IPS
// panels.
type GC9A01 struct{}

func (GC9A01) String() string {
	return "GC9A01"
}

// Size implements Model.
func (GC9A01) Size() (int, int) {
	return 240, 240
}

// Formats implements Model.
func (GC9A01) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565}
}

// Init implements Model. The controller needs a long undocumented vendor
// register sequence; values are the manufacturer's reference settings.
func (GC9A01) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	s := seq{iface: iface, delay: delay}

	s.sleep(200 * time.Millisecond)

	s.cmd(0xEF) // inter register enable 2
	s.cmd(0xEB, 0x14)
	s.cmd(0xFE) // inter register enable 1
	s.cmd(0xEF) // inter register enable 2
	s.cmd(0xEB, 0x14)

	s.cmd(0x84, 0x40)
	s.cmd(0x85, 0xFF)
	s.cmd(0x86, 0xFF)
	s.cmd(0x87, 0xFF)
	s.cmd(0x88, 0x0A)
	s.cmd(0x89, 0x21)
	s.cmd(0x8A, 0x00)
	s.cmd(0x8B, 0x80)
	s.cmd(0x8C, 0x01)
	s.cmd(0x8D, 0x01)
	s.cmd(0x8E, 0xFF)
	s.cmd(0x8F, 0xFF)

	s.cmd(0xB6, 0x00, 0x20) // display function control

	s.madctl(opts)
	s.pixelFormat(format)

	s.cmd(0x90, 0x08, 0x08, 0x08, 0x08)
	s.cmd(0xBD, 0x06)
	s.cmd(0xBC, 0x00)
	s.cmd(0xFF, 0x60, 0x01, 0x04)

	s.cmd(0xC3, 0x13) // power control 2
	s.cmd(0xC4, 0x13) // power control 3
	s.cmd(0xC9, 0x22) // power control 4

	s.cmd(0xBE, 0x11)
	s.cmd(0xE1, 0x10, 0x0E)
	s.cmd(0xDF, 0x20, 0x0C, 0x02)

	s.cmd(0xF0, 0x45, 0x09, 0x08, 0x08, 0x26, 0x2A) // gamma 1
	s.cmd(0xF1, 0x43, 0x70, 0x72, 0x36, 0x37, 0x6F) // gamma 2
	s.cmd(0xF2, 0x45, 0x09, 0x08, 0x08, 0x26, 0x2A) // gamma 3
	s.cmd(0xF3, 0x43, 0x70, 0x72, 0x36, 0x37, 0x6F) // gamma 4

	s.cmd(0xED, 0x18, 0x0B)
	s.cmd(0xAE, 0x77)
	s.cmd(0xCD, 0x63)

	s.cmd(0x70, 0x07, 0x07, 0x04, 0x0E, 0x0F, 0x09, 0x07, 0x08, 0x03)

	s.cmd(0xE8, 0x34) // frame rate

	s.cmd(0x62,
		0x18, 0x0D, 0x71, 0xED, 0x70, 0x70,
		0x18, 0x0F, 0x71, 0xEF, 0x70, 0x70)
	s.cmd(0x63,
		0x18, 0x11, 0x71, 0xF1, 0x70, 0x70,
		0x18, 0x13, 0x71, 0xF3, 0x70, 0x70)
	s.cmd(0x64, 0x28, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x07)
	s.cmd(0x66, 0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00)
	s.cmd(0x67, 0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98)

	s.cmd(0x74, 0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00)
	s.cmd(0x98, 0x3E, 0x07)

	s.invert(opts.Inversion)

	s.cmd(dcs.SLPOUT)
	s.sleep(120 * time.Millisecond)
	s.cmd(dcs.DISPON)

	return s.err
}

// SetAddressWindow implements Model.
func (GC9A01) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}
