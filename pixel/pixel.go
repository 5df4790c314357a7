// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pixel implements the pixel formats supported by MIPI DCS display
// controllers and their wire packing.
//
// A display transmits pixel data as fixed-width words; the byte layout of a
// word is fixed by the interface pixel format (COLMOD) programmed during
// init. The formats here cover the common TFT controllers: 16-bit RGB565,
// 18-bit RGB666 (one component per byte, left aligned) and 24-bit RGB888.
package pixel

import "image/color"

// Format describes the wire packing of one pixel.
//
// The format is fixed for the lifetime of a display driver.
type Format uint8

// Supported interface pixel formats.
const (
	// RGB565 packs a pixel into 2 bytes, big-endian: RRRRRGGG GGGBBBBB.
	RGB565 Format = iota
	// RGB666 packs a pixel into 3 bytes, one component per byte with the 6
	// significant bits left aligned.
	RGB666
	// RGB888 packs a pixel into 3 bytes, one full component per byte.
	RGB888
)

func (f Format) String() string {
	switch f {
	case RGB565:
		return "RGB565"
	case RGB666:
		return "RGB666"
	case RGB888:
		return "RGB888"
	default:
		return "Unknown"
	}
}

// Bits returns the color depth transmitted on the wire.
func (f Format) Bits() int {
	switch f {
	case RGB565:
		return 16
	case RGB666:
		return 18
	default:
		return 24
	}
}

// BytesPerPixel returns the number of bytes one packed pixel occupies.
func (f Format) BytesPerPixel() int {
	if f == RGB565 {
		return 2
	}
	return 3
}

// Encode packs c into buf, which must be at least BytesPerPixel() long.
// Components are truncated to the format's depth.
func (f Format) Encode(buf []byte, c color.Color) {
	r16, g16, b16, _ := c.RGBA()
	r := byte(r16 >> 8)
	g := byte(g16 >> 8)
	b := byte(b16 >> 8)
	switch f {
	case RGB565:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		buf[0] = byte(v >> 8)
		buf[1] = byte(v)
	case RGB666:
		buf[0] = r &^ 0x03
		buf[1] = g &^ 0x03
		buf[2] = b &^ 0x03
	default:
		buf[0] = r
		buf[1] = g
		buf[2] = b
	}
}

// Decode unpacks one pixel from buf. Truncated components are expanded by
// bit replication so that full and zero intensities decode to 0xFF and 0x00.
func (f Format) Decode(buf []byte) color.RGBA {
	switch f {
	case RGB565:
		v := uint16(buf[0])<<8 | uint16(buf[1])
		r := byte(v>>11) & 0x1F
		g := byte(v>>5) & 0x3F
		b := byte(v) & 0x1F
		return color.RGBA{
			R: r<<3 | r>>2,
			G: g<<2 | g>>4,
			B: b<<3 | b>>2,
			A: 0xFF,
		}
	case RGB666:
		r := buf[0] >> 2
		g := buf[1] >> 2
		b := buf[2] >> 2
		return color.RGBA{
			R: r<<2 | r>>4,
			G: g<<2 | g>>4,
			B: b<<2 | b>>4,
			A: 0xFF,
		}
	default:
		return color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: 0xFF}
	}
}

// Model returns the color model quantizing colors to what the format can
// represent on the wire.
func (f Format) Model() color.Model {
	switch f {
	case RGB565:
		return rgb565Model
	case RGB666:
		return rgb666Model
	default:
		return rgb888Model
	}
}

var (
	rgb565Model = color.ModelFunc(func(c color.Color) color.Color {
		var buf [2]byte
		RGB565.Encode(buf[:], c)
		return RGB565.Decode(buf[:])
	})
	rgb666Model = color.ModelFunc(func(c color.Color) color.Color {
		var buf [3]byte
		RGB666.Encode(buf[:], c)
		return RGB666.Decode(buf[:])
	})
	rgb888Model = color.ModelFunc(func(c color.Color) color.Color {
		var buf [3]byte
		RGB888.Encode(buf[:], c)
		return RGB888.Decode(buf[:])
	})
)
