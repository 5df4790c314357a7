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

// ST7735S drives the Sitronix ST7735S (132x162 GRAM), common on 0.96"-1.8"
// TFT modules.
type ST7735S struct{}

func (ST7735S) String() string {
	return "ST7735S"
}

// Size implements Model.
func (ST7735S) Size() (int, int) {
	return 132, 162
}

// Formats implements Model.
func (ST7735S) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565}
}

// Init implements Model. Frame rate, power control and gamma values are the
// manufacturer's reference settings.
func (ST7735S) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	s := seq{iface: iface, delay: delay}

	s.sleep(200 * time.Millisecond)
	s.cmd(dcs.SLPOUT)
	s.sleep(120 * time.Millisecond)

	s.invert(opts.Inversion)
	s.cmd(0xB1, 0x05, 0x3A, 0x3A)                   // frame rate control, normal mode
	s.cmd(0xB2, 0x05, 0x3A, 0x3A)                   // frame rate control, idle mode
	s.cmd(0xB3, 0x05, 0x3A, 0x3A, 0x05, 0x3A, 0x3A) // frame rate control, partial mode
	s.cmd(0xB4, 0x03)                               // display inversion control
	s.cmd(0xC0, 0x62, 0x02, 0x04)                   // power control 1
	s.cmd(0xC1, 0xC0)                               // power control 2
	s.cmd(0xC2, 0x0D, 0x00)                         // power control 3
	s.cmd(0xC3, 0x8D, 0x6A)                         // power control 4
	s.cmd(0xC4, 0x8D, 0xEE)                         // power control 5
	s.cmd(0xC5, 0x0E)                               // VCOM control 1
	s.cmd(0xE0, // positive gamma
		0x10, 0x0E, 0x02, 0x03, 0x0E, 0x07, 0x02, 0x07,
		0x0A, 0x12, 0x27, 0x37, 0x00, 0x0D, 0x0E, 0x10)
	s.cmd(0xE1, // negative gamma
		0x10, 0x0E, 0x03, 0x03, 0x0F, 0x06, 0x02, 0x08,
		0x0A, 0x13, 0x26, 0x36, 0x00, 0x0D, 0x0E, 0x10)
	s.pixelFormat(format)
	s.madctl(opts)
	s.cmd(dcs.DISPON)

	return s.err
}

// SetAddressWindow implements Model.
func (ST7735S) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}
