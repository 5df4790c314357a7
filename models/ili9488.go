// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package models

import (
	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

// ILI9488 drives the Ilitek ILI9488 (320x480 GRAM). It shares the ILI948x
// power-up sequence with the ILI9486.
type ILI9488 struct{}

func (ILI9488) String() string {
	return "ILI9488"
}

// Size implements Model.
func (ILI9488) Size() (int, int) {
	return 320, 480
}

// Formats implements Model.
func (ILI9488) Formats() []pixel.Format {
	return []pixel.Format{pixel.RGB565, pixel.RGB666}
}

// Init implements Model.
func (ILI9488) Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error {
	return ili948xInit(iface, opts, format, delay)
}

// SetAddressWindow implements Model.
func (ILI9488) SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	return setWindow(iface, x0, y0, x1, y1)
}
