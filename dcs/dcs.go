// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dcs implements the MIPI Display Command Set codec and the bus
// interface contract used by the driver.
//
// The codec is a pure transform: each function encodes the fixed-arity
// parameter bytes of one named DCS command, rejecting out-of-range values
// before any I/O takes place. Coordinates and line counts are 16-bit
// big-endian per the DCS convention.
package dcs

import (
	"errors"
	"fmt"

	"github.com/almindor/mipidsi/pixel"
)

// DCS opcodes.
const (
	NOP     byte = 0x00 // no operation
	SWRESET byte = 0x01 // software reset
	SLPIN   byte = 0x10 // enter sleep mode
	SLPOUT  byte = 0x11 // exit sleep mode
	PTLON   byte = 0x12 // enter partial mode
	NORON   byte = 0x13 // enter normal mode
	INVOFF  byte = 0x20 // exit invert mode
	INVON   byte = 0x21 // enter invert mode
	GAMSET  byte = 0x26 // set gamma curve
	DISPOFF byte = 0x28 // display off
	DISPON  byte = 0x29 // display on
	CASET   byte = 0x2A // set column address
	RASET   byte = 0x2B // set page (row) address
	RAMWR   byte = 0x2C // write memory start
	VSCRDEF byte = 0x33 // set vertical scroll area
	TEOFF   byte = 0x34 // tearing effect line off
	TEON    byte = 0x35 // tearing effect line on
	MADCTL  byte = 0x36 // memory access control
	VSCSAD  byte = 0x37 // set vertical scroll start address
	IDMOFF  byte = 0x38 // exit idle mode
	IDMON   byte = 0x39 // enter idle mode
	COLMOD  byte = 0x3A // set interface pixel format
)

// ErrInvalidParameter is returned when a command parameter does not fit the
// command's encoding. It indicates a contract violation by the caller and is
// always reported before any bus traffic.
var ErrInvalidParameter = errors.New("dcs: parameter out of range")

// Interface is the physical bus transport between driver and controller.
//
// Implementations are synchronous and blocking. Errors returned by an
// implementation are propagated to the driver's caller unchanged.
type Interface interface {
	// SendCommand writes a DCS opcode followed by its parameter bytes.
	SendCommand(cmd byte, args ...byte) error
	// SendPixels streams packed pixel data into display memory. A RAMWR
	// command must have been sent beforehand. data holds whole pixel words
	// only.
	SendPixels(data []byte) error
	// SendRepeatedPixel streams one packed pixel word count times. A RAMWR
	// command must have been sent beforehand.
	SendRepeatedPixel(word []byte, count int) error
}

// ColumnAddress encodes the CASET parameters addressing columns
// [start, end], both inclusive.
func ColumnAddress(start, end int) ([]byte, error) {
	return window(CASET, start, end)
}

// PageAddress encodes the RASET parameters addressing rows [start, end],
// both inclusive.
func PageAddress(start, end int) ([]byte, error) {
	return window(RASET, start, end)
}

func window(cmd byte, start, end int) ([]byte, error) {
	if start < 0 || end > 0xFFFF || start > end {
		return nil, fmt.Errorf("dcs: command %#02x window %d..%d: %w", cmd, start, end, ErrInvalidParameter)
	}
	return []byte{
		byte(start >> 8), byte(start),
		byte(end >> 8), byte(end),
	}, nil
}

// ScrollArea encodes the VSCRDEF parameters: top fixed area, vertical
// scrolling area and bottom fixed area, in lines.
func ScrollArea(tfa, vsa, bfa int) ([]byte, error) {
	for _, v := range []int{tfa, vsa, bfa} {
		if v < 0 || v > 0xFFFF {
			return nil, fmt.Errorf("dcs: scroll area %d/%d/%d: %w", tfa, vsa, bfa, ErrInvalidParameter)
		}
	}
	return []byte{
		byte(tfa >> 8), byte(tfa),
		byte(vsa >> 8), byte(vsa),
		byte(bfa >> 8), byte(bfa),
	}, nil
}

// ScrollStart encodes the VSCSAD parameter: the line in GRAM mapped to the
// top of the scrolling area.
func ScrollStart(line int) ([]byte, error) {
	if line < 0 || line > 0xFFFF {
		return nil, fmt.Errorf("dcs: scroll start %d: %w", line, ErrInvalidParameter)
	}
	return []byte{byte(line >> 8), byte(line)}, nil
}

// PixelFormat encodes the COLMOD parameter for the given format.
func PixelFormat(f pixel.Format) (byte, error) {
	switch f {
	case pixel.RGB565:
		return 0x55, nil
	case pixel.RGB666:
		return 0x66, nil
	case pixel.RGB888:
		return 0x67, nil
	default:
		return 0, fmt.Errorf("dcs: pixel format %d: %w", f, ErrInvalidParameter)
	}
}

// GammaCurve encodes the GAMSET parameter selecting one of the four
// predefined gamma curves (1..4).
func GammaCurve(curve int) (byte, error) {
	if curve < 1 || curve > 4 {
		return 0, fmt.Errorf("dcs: gamma curve %d: %w", curve, ErrInvalidParameter)
	}
	return 1 << (curve - 1), nil
}
