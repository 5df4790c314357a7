// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package models

import (
	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

// ST7796 drives the Sitronix ST7796 (320x480 GRAM). The controller accepts
// the ST7789 power-up sequence on a larger framebuffer.
type ST7796 struct{}

func (ST7796) String() string {
	return "ST7796"
}

// Size implements Model.
func (ST7796) Size() (int, int) {
	return 320, 480
}

// Formats implements Model.
func (ST7796) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565}
}

// Init implements Model.
func (ST7796) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	return ST7789{}.Init(iface, opts, format, delay)
}

// SetAddressWindow implements Model.
func (ST7796) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}
