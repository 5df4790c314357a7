// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package models implements the per-controller capability of the driver.
//
// A Model declares the maximum addressable size of a controller family, the
// pixel formats it accepts, its power-up command sequence with the
// manufacturer-mandated settle delays, and the address window programming
// for the rare controllers that deviate from plain CASET/RASET. Adding
// support for a new controller means adding a Model, never changing an
// existing one.
package models

import (
	"time"

	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

// Delay blocks the caller for controller settle time between commands.
//
// Init sequences never sleep on the host clock directly; the capability is
// supplied by the caller so that targets with specialized timers can provide
// their own implementation.
type Delay interface {
	Sleep(d time.Duration)
}

// DefaultDelay implements Delay using the host clock.
type DefaultDelay struct{}

// Sleep implements Delay.
func (DefaultDelay) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Model is the capability set of one display controller family.
type Model interface {
	// String returns the controller family name.
	String() string
	// Size returns the maximum addressable GRAM size (width, height) in the
	// unrotated frame.
	Size() (w, h int)
	// Formats returns the supported pixel formats, preferred format first.
	Formats() []pixel.Format
	// Init issues the controller's power-up sequence. The configuration has
	// been validated against the model bounds before Init is called and the
	// controller has been reset.
	Init(iface dcs.Interface, opts *options.ModelOptions, format pixel.Format, delay Delay) error
	// SetAddressWindow programs the address window to the inclusive
	// rectangle (x0,y0)-(x1,y1) in physical GRAM coordinates.
	SetAddressWindow(iface dcs.Interface, x0, y0, x1, y1 int) error
}

// seq issues a command sequence, latching the first error so init code
// reads as a straight command listing.
type seq struct {
	iface dcs.Interface
	delay Delay
	err   error
}

func (s *seq) cmd(op byte, args ...byte) {
	if s.err != nil {
		return
	}
	s.err = s.iface.SendCommand(op, args...)
}

func (s *seq) sleep(d time.Duration) {
	if s.err != nil {
		return
	}
	s.delay.Sleep(d)
}

func (s *seq) madctl(opts *options.ModelOptions) {
	s.cmd(dcs.MADCTL, opts.MADCTL())
}

func (s *seq) invert(inv options.ColorInversion) {
	if inv == options.InversionOn {
		s.cmd(dcs.INVON)
	} else {
		s.cmd(dcs.INVOFF)
	}
}

func (s *seq) pixelFormat(f pixel.Format) {
	if s.err != nil {
		return
	}
	colmod, err := dcs.PixelFormat(f)
	if err != nil {
		s.err = err
		return
	}
	s.cmd(dcs.COLMOD, colmod)
}

// setWindow is the CASET/RASET address window programming shared by all
// conforming controllers.
func setWindow(iface dcs.Interface, x0, y0, x1, y1 int) error {
	ca, err := dcs.ColumnAddress(x0, x1)
	if err != nil {
		return err
	}
	if err := iface.SendCommand(dcs.CASET, ca...); err != nil {
		return err
	}
	ra, err := dcs.PageAddress(y0, y1)
	if err != nil {
		return err
	}
	return iface.SendCommand(dcs.RASET, ra...)
}

// Supports reports whether the model accepts the pixel format.
func Supports(m Model, f pixel.Format) bool {
	for _, s := range m.Formats() {
		if s == f {
			return true
		}
	}
	return false
}
