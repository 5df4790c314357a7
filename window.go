// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import "image"

// addressWindow caches the last window programmed into the controller.
//
// RAMWR resets the controller write pointer to the window origin, so a draw
// into the same rectangle needs no CASET/RASET. The cache is dropped on any
// bus error and on every command that changes the controller's coordinate
// mapping, since the controller state can no longer be assumed to match.
type addressWindow struct {
	valid bool
	rect  image.Rectangle
}

// setWindow programs the controller address window to r, given in logical
// (oriented) coordinates. r must be non-empty and within bounds.
func (d *Display) setWindow(r image.Rectangle) error {
	if d.window.valid && d.window.rect == r {
		return nil
	}
	d.window.valid = false
	ox, oy := d.opts.Offset()
	err := d.model.SetAddressWindow(d.iface,
		r.Min.X+ox, r.Min.Y+oy, r.Max.X-1+ox, r.Max.Y-1+oy)
	if err != nil {
		return err
	}
	d.window.valid = true
	d.window.rect = r
	return nil
}
