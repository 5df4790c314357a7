// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package options holds the display configuration types shared between the
// driver façade and the controller models: orientation, color ordering,
// inversion, refresh order and the per-model size/offset options.
package options

// MADCTL register bits.
const (
	madctlMY  = 0x80 // row address order
	madctlMX  = 0x40 // column address order
	madctlMV  = 0x20 // row/column exchange
	madctlML  = 0x10 // vertical refresh order
	madctlBGR = 0x08 // BGR subpixel order
	madctlMH  = 0x04 // horizontal refresh order
)

// Rotation is the clockwise rotation of the displayed image.
type Rotation uint8

// Supported rotations.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate0:
		return "0°"
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "invalid"
	}
}

// Swapped reports whether the rotation exchanges the display axes.
func (r Rotation) Swapped() bool {
	return r == Rotate90 || r == Rotate270
}

// Orientation maps logical drawing coordinates onto the controller's memory.
//
// The mapping is performed in controller hardware through the MADCTL
// register; the driver only needs to swap its logical bounds for the 90° and
// 270° rotations. The combination of rotation and the two mirror flags
// yields 8 distinct memory access orders.
type Orientation struct {
	Rotation Rotation
	// MirrorX flips the image along the vertical axis.
	MirrorX bool
	// MirrorY flips the image along the horizontal axis.
	MirrorY bool
}

// madctl returns the MY/MX/MV bits for the orientation.
func (o Orientation) madctl() byte {
	var v byte
	switch o.Rotation {
	case Rotate0:
	case Rotate90:
		v = madctlMV
	case Rotate180:
		v = madctlMY | madctlMX
	case Rotate270:
		v = madctlMY | madctlMX | madctlMV
	}
	if o.MirrorX {
		v ^= madctlMX
	}
	if o.MirrorY {
		v ^= madctlMY
	}
	return v
}

// ColorOrder is the subpixel ordering of the panel.
type ColorOrder uint8

// Supported subpixel orderings.
const (
	RGB ColorOrder = iota
	BGR
)

func (c ColorOrder) String() string {
	if c == BGR {
		return "BGR"
	}
	return "RGB"
}

// ColorInversion selects the panel's color inversion mode. Some panels are
// wired such that they need inverted colors for a normal image.
type ColorInversion uint8

// Supported inversion modes.
const (
	InversionOff ColorInversion = iota
	InversionOn
)

func (c ColorInversion) String() string {
	if c == InversionOn {
		return "inverted"
	}
	return "normal"
}

// RefreshOrder selects the panel refresh direction.
type RefreshOrder struct {
	// BottomToTop refreshes rows from the bottom of the panel upwards.
	BottomToTop bool
	// RightToLeft refreshes columns from the right of the panel leftwards.
	RightToLeft bool
}

// TearingEffect configures the controller's tearing effect output line.
type TearingEffect uint8

// Tearing effect output modes.
const (
	// TearingOff disables the TE output.
	TearingOff TearingEffect = iota
	// TearingVertical outputs vertical blanking information.
	TearingVertical
	// TearingHorizontalAndVertical outputs horizontal and vertical blanking
	// information.
	TearingHorizontalAndVertical
)

// ModelOptions is the immutable display configuration consumed once during
// driver construction.
//
// Width, Height and the offsets are given in the controller's native
// (unrotated) frame. They default to the model's maximum addressable size
// and a zero offset; boards that expose a window into a larger controller
// GRAM override them.
type ModelOptions struct {
	Orientation Orientation
	ColorOrder  ColorOrder
	Inversion   ColorInversion
	Refresh     RefreshOrder

	// Width and Height are the visible display size in the unrotated frame.
	Width  int
	Height int
	// OffsetX and OffsetY locate the visible window inside the controller
	// GRAM in the unrotated frame.
	OffsetX int
	OffsetY int

	// WindowOffset overrides the offset calculation for boards whose window
	// position depends on the active orientation. When nil the configured
	// offsets are used as-is.
	WindowOffset func(Orientation) (x, y int)
}

// MADCTL returns the memory access control register value for the options.
func (o *ModelOptions) MADCTL() byte {
	v := o.Orientation.madctl()
	if o.ColorOrder == BGR {
		v |= madctlBGR
	}
	if o.Refresh.BottomToTop {
		v |= madctlML
	}
	if o.Refresh.RightToLeft {
		v |= madctlMH
	}
	return v
}

// Size returns the logical display size for the active orientation.
func (o *ModelOptions) Size() (w, h int) {
	if o.Orientation.Rotation.Swapped() {
		return o.Height, o.Width
	}
	return o.Width, o.Height
}

// Offset returns the address window offset for the active orientation.
func (o *ModelOptions) Offset() (x, y int) {
	if o.WindowOffset != nil {
		return o.WindowOffset(o.Orientation)
	}
	if o.Orientation.Rotation.Swapped() {
		return o.OffsetY, o.OffsetX
	}
	return o.OffsetX, o.OffsetY
}
