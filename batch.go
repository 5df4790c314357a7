// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import (
	"image"
	"image/color"

	"github.com/almindor/mipidsi/dcs"
)

// fillSolid floods r, given in logical coordinates and already clipped,
// with a single color using one repeated-pixel transfer.
func (d *Display) fillSolid(r image.Rectangle, c color.Color) error {
	if r.Empty() {
		return nil
	}
	if err := d.prepare(r); err != nil {
		return err
	}
	bpp := d.format.BytesPerPixel()
	d.format.Encode(d.word[:bpp], c)
	if err := d.iface.SendRepeatedPixel(d.word[:bpp], r.Dx()*r.Dy()); err != nil {
		d.window.valid = false
		return err
	}
	return nil
}

// streamPixels writes r.Dx()*r.Dy() pixels into r in row-major order,
// sourcing each from at. r must already be clipped.
func (d *Display) streamPixels(r image.Rectangle, at func(x, y int) color.Color) error {
	if r.Empty() {
		return nil
	}
	if err := d.prepare(r); err != nil {
		return err
	}
	bpp := d.format.BytesPerPixel()
	// A chunk holds a whole number of pixels so encodings never straddle a
	// flush boundary.
	chunk := (len(d.buf) / bpp) * bpp
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d.format.Encode(d.buf[n:n+bpp], at(x, y))
			n += bpp
			if n == chunk {
				if err := d.flush(d.buf[:n]); err != nil {
					return err
				}
				n = 0
			}
		}
	}
	if n > 0 {
		return d.flush(d.buf[:n])
	}
	return nil
}

// prepare programs the address window for r and opens the pixel stream.
func (d *Display) prepare(r image.Rectangle) error {
	if err := d.ensureOn(); err != nil {
		return err
	}
	if err := d.setWindow(r); err != nil {
		return err
	}
	return d.send(dcs.RAMWR)
}

func (d *Display) flush(b []byte) error {
	if err := d.iface.SendPixels(b); err != nil {
		d.window.valid = false
		return err
	}
	return nil
}

// send issues a bare command, dropping the window cache on failure.
func (d *Display) send(cmd byte, args ...byte) error {
	if err := d.iface.SendCommand(cmd, args...); err != nil {
		d.window.valid = false
		return err
	}
	return nil
}
