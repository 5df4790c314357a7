// Copyright 2024 The Mipidsi Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mipidsi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/almindor/mipidsi/dcs"
)

func TestNewSPIRequiresDC(t *testing.T) {
	if _, err := NewSPI(&spitest.Record{}, nil); err == nil {
		t.Error("NewSPI() accepted a nil data/command pin")
	}
	if _, err := NewSPI(&spitest.Record{}, gpio.INVALID); err == nil {
		t.Error("NewSPI() accepted gpio.INVALID as data/command pin")
	}
}

func TestSPISendCommand(t *testing.T) {
	record := &spitest.Record{}
	dc := &gpiotest.Pin{N: "DC", Num: 25}
	s, err := NewSPI(record, dc)
	if err != nil {
		t.Fatalf("NewSPI() failed: %v", err)
	}

	if err := s.SendCommand(dcs.CASET, 0x00, 0x00, 0x00, 0x09); err != nil {
		t.Fatalf("SendCommand() failed: %v", err)
	}
	if len(record.Ops) != 2 {
		t.Fatalf("recorded %d transfers, want 2", len(record.Ops))
	}
	if diff := cmp.Diff(record.Ops[0].W, []byte{dcs.CASET}); diff != "" {
		t.Errorf("command transfer difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(record.Ops[1].W, []byte{0x00, 0x00, 0x00, 0x09}); diff != "" {
		t.Errorf("parameter transfer difference (-got +want):\n%s", diff)
	}
	// Parameters go out with the data/command pin high.
	if dc.L != gpio.High {
		t.Error("data/command pin not high after parameters")
	}

	if err := s.SendCommand(dcs.NORON); err != nil {
		t.Fatalf("SendCommand() failed: %v", err)
	}
	if dc.L != gpio.Low {
		t.Error("data/command pin not low after a bare command")
	}
}

func TestSPISendRepeatedPixel(t *testing.T) {
	record := &spitest.Record{}
	dc := &gpiotest.Pin{N: "DC", Num: 25}
	s, err := NewSPI(record, dc)
	if err != nil {
		t.Fatalf("NewSPI() failed: %v", err)
	}

	word := []byte{0xAB, 0xCD}
	if err := s.SendRepeatedPixel(word, 3000); err != nil {
		t.Fatalf("SendRepeatedPixel() failed: %v", err)
	}

	total := 0
	for i, io := range record.Ops {
		if len(io.W) > len(s.buf) {
			t.Errorf("transfer %d is %d bytes, exceeds the scratch buffer", i, len(io.W))
		}
		if len(io.W)%len(word) != 0 {
			t.Errorf("transfer %d splits a pixel word: %d bytes", i, len(io.W))
		}
		for n := 0; n+1 < len(io.W); n += 2 {
			if io.W[n] != 0xAB || io.W[n+1] != 0xCD {
				t.Fatalf("transfer %d corrupt at offset %d", i, n)
			}
		}
		total += len(io.W)
	}
	if want := 3000 * len(word); total != want {
		t.Errorf("wrote %d bytes, want %d", total, want)
	}

	// Zero count writes nothing.
	record.Ops = nil
	if err := s.SendRepeatedPixel(word, 0); err != nil {
		t.Fatalf("SendRepeatedPixel() failed: %v", err)
	}
	if len(record.Ops) != 0 {
		t.Errorf("zero count transferred data: %v", record.Ops)
	}
}
