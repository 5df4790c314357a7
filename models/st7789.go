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

// ST7789 drives the Sitronix ST7789 family (240x320 GRAM), found on many
// small IPS panels.
type ST7789 struct{}

func (ST7789) String() string {
	return "ST7789"
}

// Size implements Model.
func (ST7789) Size() (int, int) {
	return 240, 320
}

// Formats implements Model.
func (ST7789) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565}
}

// Init implements Model.
//
// The delays follow the ST7789 datasheet: 10ms after SLPOUT before further
// commands and 120ms after DISPON before pixel data is safe on the bus.
func (ST7789) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	s := seq{iface: iface, delay: delay}

	s.sleep(150 * time.Millisecond)
	s.cmd(dcs.SLPOUT)
	s.sleep(10 * time.Millisecond)

	s.madctl(opts)
	s.invert(opts.Inversion)
	s.pixelFormat(format)
	s.sleep(10 * time.Millisecond)
	s.cmd(dcs.NORON)
	s.sleep(10 * time.Millisecond)
	s.cmd(dcs.DISPON)
	s.sleep(120 * time.Millisecond)

	return s.err
}

// SetAddressWindow implements Model.
func (ST7789) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}

// ST7789Pico1Offset is the window offset of the 135x240 "pico1" boards,
// whose panel is clipped out of the center of the 240x320 GRAM. Use it as
// ModelOptions.WindowOffset together with a 135x240 display size and
// inverted colors.
func ST7789Pico1Offset(o options.Orientation) (int, int) {
	switch o.Rotation {
	case options.Rotate90:
		return 40, 53
	case options.Rotate180:
		return 53, 40
	case options.Rotate270:
		return 40, 52
	default:
		return 52, 40
	}
}
