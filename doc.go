// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mipidsi drives TFT displays whose controllers speak the MIPI
// Display Command Set over 4-wire SPI, such as the ST7789, ST7735S, ST7796,
// ILI9341, ILI9342C, ILI9486, ILI9488, GC9A01 and GC9107 families.
//
// Construct a display with New, chaining options as the panel requires:
//
//	iface, err := mipidsi.NewSPI(port, dcPin)
//	if err != nil {
//		...
//	}
//	disp, err := mipidsi.New(models.ST7789{}, iface).
//		WithInvertColors().
//		WithResetPin(rstPin).
//		Init()
//
// Display implements periph.io/x/conn/v3/display.Drawer, so any image.Image
// can be pushed with Draw. FillRect and WritePixels are batched: a solid
// fill is a single repeated-pixel transfer and pixel streams are packed
// into fixed chunks, so no full frame is ever buffered on the host.
package mipidsi
