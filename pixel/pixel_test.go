// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pixel

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFormatString(t *testing.T) {
	for _, tc := range []struct {
		f    Format
		want string
	}{
		{RGB565, "RGB565"},
		{RGB666, "RGB666"},
		{RGB888, "RGB888"},
		{Format(42), "Unknown"},
	} {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", tc.f, got, tc.want)
		}
	}
}

func TestBytesPerPixel(t *testing.T) {
	for _, tc := range []struct {
		f         Format
		wantBytes int
		wantBits  int
	}{
		{RGB565, 2, 16},
		{RGB666, 3, 18},
		{RGB888, 3, 24},
	} {
		if got := tc.f.BytesPerPixel(); got != tc.wantBytes {
			t.Errorf("%s.BytesPerPixel() = %d, want %d", tc.f, got, tc.wantBytes)
		}
		if got := tc.f.Bits(); got != tc.wantBits {
			t.Errorf("%s.Bits() = %d, want %d", tc.f, got, tc.wantBits)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    Format
		c    color.Color
		want []byte
	}{
		{"565 white", RGB565, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, []byte{0xFF, 0xFF}},
		{"565 black", RGB565, color.RGBA{0x00, 0x00, 0x00, 0xFF}, []byte{0x00, 0x00}},
		{"565 red", RGB565, color.RGBA{0xFF, 0x00, 0x00, 0xFF}, []byte{0xF8, 0x00}},
		{"565 green", RGB565, color.RGBA{0x00, 0xFF, 0x00, 0xFF}, []byte{0x07, 0xE0}},
		{"565 blue", RGB565, color.RGBA{0x00, 0x00, 0xFF, 0xFF}, []byte{0x00, 0x1F}},
		{"666 white", RGB666, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, []byte{0xFC, 0xFC, 0xFC}},
		{"666 mid", RGB666, color.RGBA{0x84, 0x84, 0x84, 0xFF}, []byte{0x84, 0x84, 0x84}},
		{"888 arbitrary", RGB888, color.RGBA{0x12, 0x34, 0x56, 0xFF}, []byte{0x12, 0x34, 0x56}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, tc.f.BytesPerPixel())
			tc.f.Encode(buf, tc.c)
			if !bytes.Equal(buf, tc.want) {
				t.Errorf("Encode() = %#v, want %#v", buf, tc.want)
			}
		})
	}
}

// Representable component values must survive an encode/decode cycle
// unchanged. Mid-range values are the quantized midpoints of each format.
func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    Format
		c    color.RGBA
	}{
		{"565 min", RGB565, color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"565 max", RGB565, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"565 mid", RGB565, color.RGBA{0x84, 0x82, 0x84, 0xFF}},
		{"666 min", RGB666, color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"666 max", RGB666, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"666 mid", RGB666, color.RGBA{0x82, 0x82, 0x82, 0xFF}},
		{"888 min", RGB888, color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"888 max", RGB888, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"888 mid", RGB888, color.RGBA{0x80, 0x80, 0x80, 0xFF}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, tc.f.BytesPerPixel())
			tc.f.Encode(buf, tc.c)
			got := tc.f.Decode(buf)
			if got != tc.c {
				t.Errorf("Decode(Encode(%v)) = %v", tc.c, got)
			}
		})
	}
}

// The color model must be idempotent: converting an already representable
// color is a no-op.
func TestModelIdempotent(t *testing.T) {
	for _, f := range []Format{RGB565, RGB666, RGB888} {
		m := f.Model()
		for _, c := range []color.RGBA{
			{0x00, 0x00, 0x00, 0xFF},
			{0xFF, 0xFF, 0xFF, 0xFF},
			{0x12, 0x34, 0x56, 0xFF},
		} {
			once := m.Convert(c)
			twice := m.Convert(once)
			if once != twice {
				t.Errorf("%s: Convert(Convert(%v)) = %v, want %v", f, c, twice, once)
			}
		}
	}
}
