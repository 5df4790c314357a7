// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import (
	"errors"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/almindor/mipidsi/dcs"
)

// SPIInterface talks to a display controller over 4-wire SPI, where a
// dedicated data/command pin selects between the command byte (DC low) and
// its parameters or pixel data (DC high).
type SPIInterface struct {
	c         conn.Conn
	dc        gpio.PinOut
	maxTxSize int
	// buf expands repeated pixels without a per-fill allocation.
	buf [4092]byte
}

var _ dcs.Interface = &SPIInterface{}

// NewSPI returns a display interface that communicates over 4-wire SPI.
//
// # Wiring
//
// Connect SDA to SPI_MOSI, SCL to SPI_CLK, CS to SPI_CS and DC to any free
// GPIO pin. The controller's reset pin is handled separately, see
// Builder.WithResetPin.
func NewSPI(p spi.Port, dc gpio.PinOut) (*SPIInterface, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("mipidsi: 4-wire SPI requires a data/command pin")
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	c, err := p.Connect(32*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	// Get the maxTxSize from the conn if it implements the conn.Limits
	// interface, otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Use a conservative default.
	}
	return &SPIInterface{c: c, dc: dc, maxTxSize: maxTxSize}, nil
}

func (s *SPIInterface) String() string {
	return "mipidsi.SPIInterface{" + s.c.String() + ", " + s.dc.Name() + "}"
}

// SendCommand implements dcs.Interface.
func (s *SPIInterface) SendCommand(cmd byte, args ...byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := s.c.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	return s.SendPixels(args)
}

// SendPixels implements dcs.Interface. Transfers larger than the bus limit
// are split transparently.
func (s *SPIInterface) SendPixels(data []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := len(data)
		if n > s.maxTxSize {
			n = s.maxTxSize
		}
		if err := s.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// SendRepeatedPixel implements dcs.Interface.
func (s *SPIInterface) SendRepeatedPixel(word []byte, count int) error {
	if count <= 0 || len(word) == 0 {
		return nil
	}
	// One chunk holds a whole number of words so no pixel straddles a
	// transfer boundary.
	perChunk := len(s.buf) / len(word)
	fill := perChunk
	if count < fill {
		fill = count
	}
	for i := 0; i < fill; i++ {
		copy(s.buf[i*len(word):], word)
	}
	for count > 0 {
		n := perChunk
		if count < n {
			n = count
		}
		if err := s.SendPixels(s.buf[:n*len(word)]); err != nil {
			return err
		}
		count -= n
	}
	return nil
}
