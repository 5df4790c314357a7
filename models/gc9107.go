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

// GC9107 drives the Galaxycore GC9107 (128x160 GRAM), found on small 0.85"
// IPS panels.
type GC9107 struct{}

func (GC9107) String() string {
	return "GC9107"
}

// Size implements Model.
func (GC9107) Size() (int, int) {
	return 128, 160
}

// Formats implements Model.
func (GC9107) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565}
}

// Init implements Model. Like its GC9A01 sibling the controller needs a
// vendor register sequence; values are the manufacturer's reference
// settings.
func (GC9107) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	s := seq{iface: iface, delay: delay}

	s.sleep(200 * time.Millisecond)

	s.cmd(0xFE) // inter register enable 1
	s.sleep(5 * time.Millisecond)
	s.cmd(0xEF) // inter register enable 2
	s.sleep(5 * time.Millisecond)

	s.cmd(0xB0, 0xC0)
	s.cmd(0xB2, 0x2F)
	s.cmd(0xB3, 0x03)
	s.cmd(0xB6, 0x19)
	s.cmd(0xB7, 0x01)

	s.madctl(opts)

	s.cmd(0xAC, 0xCB)
	s.cmd(0xAB, 0x0E)

	s.cmd(0xB4, 0x04)

	s.cmd(0xA8, 0x19)

	s.pixelFormat(format)

	s.cmd(0xB8, 0x08)

	s.cmd(0xE8, 0x24)
	s.cmd(0xE9, 0x48)
	s.cmd(0xEA, 0x22)

	s.cmd(0xC6, 0x30)
	s.cmd(0xC7, 0x18)

	s.cmd(0xF0, // gamma 1
		0x01, 0x2B, 0x23, 0x3C, 0xB7, 0x12, 0x17,
		0x60, 0x00, 0x06, 0x0C, 0x17, 0x12, 0x1F)
	s.cmd(0xF1, // gamma 2
		0x05, 0x2E, 0x2D, 0x44, 0xD6, 0x15, 0x17,
		0xA0, 0x02, 0x0D, 0x0D, 0x1A, 0x18, 0x1F)

	s.invert(opts.Inversion)

	s.cmd(dcs.SLPOUT)
	s.sleep(120 * time.Millisecond)
	s.cmd(dcs.DISPON)

	return s.err
}

// SetAddressWindow implements Model.
func (GC9107) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}
