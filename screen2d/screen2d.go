// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d emulates a MIPI DCS display controller and renders its
// frame memory to the terminal (stdout) using ANSI color codes.
//
// It implements the same interface contract as the SPI transport, so a
// display driver can run against it unchanged. Useful while you are waiting
// for your super nice IPS panel to come by mail.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/pixel"
)

// Opts represents the options available for this display.
type Opts struct {
	W       int
	H       int
	Format  pixel.Format
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a display controller emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	format  pixel.Format
	fb      *image.RGBA

	// Controller state driven by the command stream.
	window  image.Rectangle
	cx, cy  int
	partial []byte

	buf bytes.Buffer
}

var _ dcs.Interface = &Dev{}
var _ fmt.Stringer = &Dev{}

// New returns a Dev that displays at the console.
//
// Permits local testing of display code without hardware.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	bounds := image.Rect(0, 0, opts.W, opts.H)
	return &Dev{
		w:       colorable.NewColorableStdout(),
		palette: *p,
		format:  opts.Format,
		fb:      image.NewRGBA(bounds),
		window:  bounds,
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d, %s}", d.fb.Rect.Dx(), d.fb.Rect.Dy(), d.format)
}

// Image returns the emulated frame memory.
func (d *Dev) Image() *image.RGBA {
	return d.fb
}

// SendCommand implements dcs.Interface. Commands that do not affect the
// frame memory are accepted and ignored.
func (d *Dev) SendCommand(cmd byte, args ...byte) error {
	switch cmd {
	case dcs.CASET:
		start, end, err := span(args)
		if err != nil {
			return err
		}
		d.window.Min.X, d.window.Max.X = start, end+1
	case dcs.RASET:
		start, end, err := span(args)
		if err != nil {
			return err
		}
		d.window.Min.Y, d.window.Max.Y = start, end+1
	case dcs.RAMWR:
		// A new write always restarts at the window origin.
		d.cx, d.cy = d.window.Min.X, d.window.Min.Y
		d.partial = d.partial[:0]
	}
	return nil
}

// SendPixels implements dcs.Interface. Pixel words split across transfers
// are reassembled like a real controller shift register would.
func (d *Dev) SendPixels(data []byte) error {
	bpp := d.format.BytesPerPixel()
	d.partial = append(d.partial, data...)
	n := 0
	for ; n+bpp <= len(d.partial); n += bpp {
		d.write(d.format.Decode(d.partial[n : n+bpp]))
	}
	d.partial = append(d.partial[:0], d.partial[n:]...)
	return d.refresh()
}

// SendRepeatedPixel implements dcs.Interface.
func (d *Dev) SendRepeatedPixel(word []byte, count int) error {
	if len(word) != d.format.BytesPerPixel() {
		return fmt.Errorf("screen2d: %d byte word for format %s", len(word), d.format)
	}
	c := d.format.Decode(word)
	for i := 0; i < count; i++ {
		d.write(c)
	}
	return d.refresh()
}

// Halt clears the terminal state so it is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// write stores one pixel at the write pointer and advances it within the
// window, wrapping to the window origin like the controller GRAM does.
func (d *Dev) write(c color.RGBA) {
	if d.window.Empty() {
		return
	}
	d.fb.SetRGBA(d.cx, d.cy, c)
	d.cx++
	if d.cx >= d.window.Max.X {
		d.cx = d.window.Min.X
		d.cy++
		if d.cy >= d.window.Max.Y {
			d.cy = d.window.Min.Y
		}
	}
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	h := d.fb.Rect.Dy()
	for y := 0; y < h; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.fb.Rect.Dx(); x++ {
			px := d.fb.RGBAAt(x, y)
			_, _ = io.WriteString(&d.buf, d.palette.Block(color.NRGBA{px.R, px.G, px.B, 255}))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	// Park the cursor back at the top so the next refresh paints in place.
	fmt.Fprintf(&d.buf, "\033[%dA", h)
	_, err := d.buf.WriteTo(d.w)
	return err
}

func span(args []byte) (int, int, error) {
	if len(args) != 4 {
		return 0, 0, fmt.Errorf("screen2d: address window takes 4 bytes, got %d", len(args))
	}
	start := int(args[0])<<8 | int(args[1])
	end := int(args[2])<<8 | int(args[3])
	if start > end {
		return 0, 0, fmt.Errorf("screen2d: address window start %d after end %d", start, end)
	}
	return start, end, nil
}
