// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3/display"

	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/models"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

var _ display.Drawer = &Display{}

// ErrSleeping is returned by drawing operations while the display is in
// sleep mode. Call Wake first.
var ErrSleeping = errors.New("mipidsi: display is sleeping")

// Display is an open handle to a MIPI DCS display controller. Use New to
// construct one.
//
// A Display owns its bus connection. All operations are blocking and none
// are safe for concurrent use; callers sharing a display across goroutines
// must serialize whole drawing calls.
type Display struct {
	iface dcs.Interface
	model models.Model
	opts  options.ModelOptions
	delay models.Delay

	format   pixel.Format
	window   addressWindow
	sleeping bool
	halted   bool
	// word is the encoding scratch for a single pixel.
	word [3]byte
	// buf is the packing scratch for pixel streams. Its length is a
	// multiple of every supported pixel size.
	buf [510]byte
}

func (d *Display) String() string {
	w, h := d.opts.Size()
	return fmt.Sprintf("mipidsi.Display{%s, %dx%d}", d.model, w, h)
}

// ColorModel implements display.Drawer. Colors are quantized to the
// display's pixel format.
func (d *Display) ColorModel() color.Model {
	return d.format.Model()
}

// Bounds implements display.Drawer. The rectangle is in logical
// coordinates: it reflects the configured orientation.
func (d *Display) Bounds() image.Rectangle {
	w, h := d.opts.Size()
	return image.Rect(0, 0, w, h)
}

// Draw implements display.Drawer.
//
// Pixels outside the display are dropped. image.RGBA sources skip the
// color.Color boxing on every pixel.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	clip := r.Intersect(d.Bounds())
	if clip.Empty() {
		return nil
	}
	// Source offset of the post-clip origin.
	sp = sp.Add(clip.Min.Sub(r.Min))
	if rgba, ok := src.(*image.RGBA); ok {
		return d.streamPixels(clip, func(x, y int) color.Color {
			return rgba.RGBAAt(x-clip.Min.X+sp.X, y-clip.Min.Y+sp.Y)
		})
	}
	return d.streamPixels(clip, func(x, y int) color.Color {
		return src.At(x-clip.Min.X+sp.X, y-clip.Min.Y+sp.Y)
	})
}

// SetPixel sets a single pixel. Out of bounds coordinates are ignored.
func (d *Display) SetPixel(x, y int, c color.Color) error {
	return d.fillSolid(image.Rect(x, y, x+1, y+1).Intersect(d.Bounds()), c)
}

// FillRect floods the intersection of r with the display with a single
// color. An empty intersection issues no commands.
func (d *Display) FillRect(r image.Rectangle, c color.Color) error {
	return d.fillSolid(r.Intersect(d.Bounds()), c)
}

// Clear floods the whole display with a single color.
func (d *Display) Clear(c color.Color) error {
	return d.fillSolid(d.Bounds(), c)
}

// WritePixels writes a row-major pixel sequence into r. len(colors) must be
// r.Dx()*r.Dy(). Pixels falling outside the display are skipped, the rest
// keep their position within r.
func (d *Display) WritePixels(r image.Rectangle, colors []color.Color) error {
	if len(colors) != r.Dx()*r.Dy() {
		return fmt.Errorf("mipidsi: got %d pixels for a %dx%d rectangle", len(colors), r.Dx(), r.Dy())
	}
	clip := r.Intersect(d.Bounds())
	if clip.Empty() {
		return nil
	}
	return d.streamPixels(clip, func(x, y int) color.Color {
		return colors[(y-r.Min.Y)*r.Dx()+(x-r.Min.X)]
	})
}

// SetOrientation reprograms the memory access order of the controller. The
// logical bounds swap their axes for Rotate90 and Rotate270.
func (d *Display) SetOrientation(o options.Orientation) error {
	d.opts.Orientation = o
	d.window.valid = false
	return d.send(dcs.MADCTL, d.opts.MADCTL())
}

// Orientation returns the current orientation.
func (d *Display) Orientation() options.Orientation {
	return d.opts.Orientation
}

// InvertColors switches the controller's color inversion.
func (d *Display) InvertColors(inv options.ColorInversion) error {
	d.opts.Inversion = inv
	if inv == options.InversionOn {
		return d.send(dcs.INVON)
	}
	return d.send(dcs.INVOFF)
}

// SetTearingEffect configures the tearing effect output line.
func (d *Display) SetTearingEffect(te options.TearingEffect) error {
	switch te {
	case options.TearingOff:
		return d.send(dcs.TEOFF)
	case options.TearingVertical:
		return d.send(dcs.TEON, 0x00)
	case options.TearingHorizontalAndVertical:
		return d.send(dcs.TEON, 0x01)
	default:
		return fmt.Errorf("mipidsi: unknown tearing effect %d", te)
	}
}

// SetScrollArea defines the vertical scrolling region. The three areas are
// given in lines of the unrotated frame and must cover the framebuffer
// height exactly.
func (d *Display) SetScrollArea(topFixed, scrolling, bottomFixed int) error {
	_, h := d.model.Size()
	if topFixed+scrolling+bottomFixed != h {
		return fmt.Errorf("mipidsi: scroll areas %d+%d+%d do not cover %d lines",
			topFixed, scrolling, bottomFixed, h)
	}
	args, err := dcs.ScrollArea(topFixed, scrolling, bottomFixed)
	if err != nil {
		return err
	}
	return d.send(dcs.VSCRDEF, args...)
}

// SetGammaCurve selects one of the controller's four predefined gamma
// curves (1 to 4).
func (d *Display) SetGammaCurve(curve int) error {
	v, err := dcs.GammaCurve(curve)
	if err != nil {
		return err
	}
	return d.send(dcs.GAMSET, v)
}

// SetScrollStart sets the line of the scrolling region shown at the top of
// the display.
func (d *Display) SetScrollStart(line int) error {
	args, err := dcs.ScrollStart(line)
	if err != nil {
		return err
	}
	return d.send(dcs.VSCSAD, args...)
}

// Sleep puts the controller into its low power sleep mode. The frame memory
// is retained. Drawing operations fail with ErrSleeping until Wake.
func (d *Display) Sleep() error {
	if d.sleeping {
		return nil
	}
	if err := d.send(dcs.SLPIN); err != nil {
		return err
	}
	d.sleeping = true
	d.window.valid = false
	// Mandatory delay before the controller accepts another sleep command.
	d.delay.Sleep(120 * time.Millisecond)
	return nil
}

// Wake brings the controller out of sleep mode.
func (d *Display) Wake() error {
	if !d.sleeping {
		return nil
	}
	if err := d.send(dcs.SLPOUT); err != nil {
		return err
	}
	d.sleeping = false
	d.window.valid = false
	d.delay.Sleep(120 * time.Millisecond)
	return nil
}

// Halt implements conn.Resource by turning the display output off. The next
// drawing operation transparently turns it back on.
func (d *Display) Halt() error {
	if err := d.send(dcs.DISPOFF); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// Release returns the interface the display was built on, for callers that
// reuse the bus after the display is done. The Display must not be used
// afterwards.
func (d *Display) Release() dcs.Interface {
	return d.iface
}

func (d *Display) ensureOn() error {
	if d.sleeping {
		return ErrSleeping
	}
	if !d.halted {
		return nil
	}
	if err := d.send(dcs.DISPON); err != nil {
		return err
	}
	d.halted = false
	return nil
}
