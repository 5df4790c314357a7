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

// ILI9486 drives the Ilitek ILI9486 (320x480 GRAM).
type ILI9486 struct{}

func (ILI9486) String() string {
	return "ILI9486"
}

// Size implements Model.
func (ILI9486) Size() (int, int) {
	return 320, 480
}

// Formats implements Model.
func (ILI9486) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565, pixel.RGB666}
}

// Init implements Model.
func (ILI9486) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	return ili948xInit(iface, opts, format, delay)
}

// SetAddressWindow implements Model.
func (ILI9486) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}

// ili948xInit is the power-up sequence shared by the ILI948x family.
func ili948xInit(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	s := seq{iface: iface, delay: delay}

	s.sleep(120 * time.Millisecond)
	s.cmd(dcs.SLPOUT)
	s.pixelFormat(format)
	s.madctl(opts)
	s.invert(opts.Inversion)
	s.cmd(0xB6, 0x02, 0x02, 0x3B) // display function control
	s.cmd(dcs.NORON)
	s.cmd(dcs.DISPON)
	// DISPON needs settle time before pixel data is safe on the bus.
	s.sleep(120 * time.Millisecond)

	return s.err
}
