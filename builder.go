// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/almindor/mipidsi/dcs"
	"github.com/almindor/mipidsi/models"
	"github.com/almindor/mipidsi/options"
	"github.com/almindor/mipidsi/pixel"
)

// Builder assembles the configuration of a Display. Construct one with New,
// chain the With* options and finish with Init. A Builder is consumed by
// Init and must not be reused.
type Builder struct {
	iface  dcs.Interface
	model  models.Model
	opts   options.ModelOptions
	format pixel.Format
	rst    gpio.PinOut
	delay  models.Delay
}

// New starts building a display handle for the given controller model on
// the given interface.
func New(model models.Model, iface dcs.Interface) *Builder {
	w, h := model.Size()
	return &Builder{
		iface:  iface,
		model:  model,
		opts:   options.ModelOptions{Width: w, Height: h},
		format: model.Formats()[0],
	}
}

// WithOrientation sets the initial orientation. Default is Rotate0 without
// mirroring.
func (b *Builder) WithOrientation(o options.Orientation) *Builder {
	b.opts.Orientation = o
	return b
}

// WithColorOrder sets the subpixel order of the panel. Default is RGB.
func (b *Builder) WithColorOrder(c options.ColorOrder) *Builder {
	b.opts.ColorOrder = c
	return b
}

// WithInvertColors enables the controller's color inversion. Many IPS
// panels are wired so that inverted output shows correct colors.
func (b *Builder) WithInvertColors() *Builder {
	b.opts.Inversion = options.InversionOn
	return b
}

// WithRefreshOrder sets the panel refresh direction.
func (b *Builder) WithRefreshOrder(r options.RefreshOrder) *Builder {
	b.opts.Refresh = r
	return b
}

// WithPixelFormat selects the pixel format. Default is the model's
// preferred format.
func (b *Builder) WithPixelFormat(f pixel.Format) *Builder {
	b.format = f
	return b
}

// WithDisplaySize sets the visible panel size for panels smaller than the
// controller's framebuffer.
func (b *Builder) WithDisplaySize(w, h int) *Builder {
	b.opts.Width = w
	b.opts.Height = h
	return b
}

// WithDisplayOffset sets the position of the visible panel within the
// controller's framebuffer, in unrotated coordinates.
func (b *Builder) WithDisplayOffset(x, y int) *Builder {
	b.opts.OffsetX = x
	b.opts.OffsetY = y
	return b
}

// WithWindowOffsetFunc sets a per-orientation window offset, for panels
// whose framebuffer position shifts with rotation. It takes precedence over
// WithDisplayOffset.
func (b *Builder) WithWindowOffsetFunc(f func(options.Orientation) (x, y int)) *Builder {
	b.opts.WindowOffset = f
	return b
}

// WithResetPin provides the controller's hardware reset pin. Init then
// performs a hard reset instead of the software reset command.
func (b *Builder) WithResetPin(rst gpio.PinOut) *Builder {
	b.rst = rst
	return b
}

// WithDelay replaces the host clock used for controller settle delays.
func (b *Builder) WithDelay(d models.Delay) *Builder {
	b.delay = d
	return b
}

// Init validates the configuration, resets the controller, runs the model's
// power-up sequence and returns the display handle.
//
// Configuration problems are reported as *ConfigError before anything is
// written to the bus. A failed power-up sequence is reported as *InitError
// wrapping the transport error.
func (b *Builder) Init() (*Display, error) {
	maxW, maxH := b.model.Size()
	if b.opts.Width <= 0 || b.opts.Height <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("display size %dx%d", b.opts.Width, b.opts.Height)}
	}
	if b.opts.Width > maxW || b.opts.Height > maxH {
		return nil, &ConfigError{Reason: fmt.Sprintf("display size %dx%d exceeds %s framebuffer %dx%d",
			b.opts.Width, b.opts.Height, b.model, maxW, maxH)}
	}
	if b.opts.OffsetX < 0 || b.opts.OffsetY < 0 ||
		b.opts.Width+b.opts.OffsetX > maxW || b.opts.Height+b.opts.OffsetY > maxH {
		return nil, &ConfigError{Reason: fmt.Sprintf("display offset (%d,%d) places %dx%d panel outside %s framebuffer",
			b.opts.OffsetX, b.opts.OffsetY, b.opts.Width, b.opts.Height, b.model)}
	}
	if !models.Supports(b.model, b.format) {
		return nil, &ConfigError{Reason: fmt.Sprintf("%s does not support pixel format %s", b.model, b.format)}
	}
	delay := b.delay
	if delay == nil {
		delay = models.DefaultDelay{}
	}

	if err := b.reset(delay); err != nil {
		return nil, &InitError{Model: b.model.String(), Err: err}
	}
	if err := b.model.Init(b.iface, &b.opts, b.format, delay); err != nil {
		return nil, &InitError{Model: b.model.String(), Err: err}
	}
	return &Display{
		iface:  b.iface,
		model:  b.model,
		opts:   b.opts,
		delay:  delay,
		format: b.format,
	}, nil
}

func (b *Builder) reset(delay models.Delay) error {
	if b.rst == nil {
		if err := b.iface.SendCommand(dcs.SWRESET); err != nil {
			return err
		}
		delay.Sleep(150 * time.Millisecond)
		return nil
	}
	if err := b.rst.Out(gpio.High); err != nil {
		return err
	}
	delay.Sleep(10 * time.Microsecond)
	if err := b.rst.Out(gpio.Low); err != nil {
		return err
	}
	delay.Sleep(10 * time.Microsecond)
	return b.rst.Out(gpio.High)
}
