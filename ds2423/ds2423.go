// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds2423 implements the Dallas/Maxim DS2423 4kbit RAM with
// external counters (family code 0x1d). Reads are paged: a counter and its
// validation bytes trail each 32-byte memory page.
package ds2423

import (
	"encoding/binary"
	"fmt"

	"github.com/owbus/onewire"
)

// Family is the ROM family code of the DS2423.
const Family byte = 0x1d

// PageSize is the size of one memory page in bytes.
const PageSize = 32

// DefaultCounterOffset is the start of page 14, the first page with a
// user-visible external counter.
const DefaultCounterOffset uint16 = 0x01c0

// DefaultCounterWindow covers one memory page plus its 4-byte counter,
// 4 zero bytes and 2 CRC-16 bytes.
const DefaultCounterWindow = 42

// Dev is a handle to one DS2423 on a 1-Wire bus. It is stateless; every
// call is a direct memory read.
type Dev struct {
	*onewire.Dev
}

// New returns a handle for the counter at addr without touching the bus.
func New(bus *onewire.Bus, addr onewire.Address) *Dev {
	return &Dev{Dev: onewire.NewDev(bus, addr)}
}

func init() {
	onewire.Register(Family, func(bus *onewire.Bus, addr onewire.Address) (onewire.Device, error) {
		return New(bus, addr), nil
	})
}

// ReadMemory reads n bytes starting at the given memory offset.
func (d *Dev) ReadMemory(offset uint16, n int) ([]byte, error) {
	cmd := []byte{onewire.ReadMemory, byte(offset), byte(offset >> 8)}
	return d.Tx(cmd, n)
}

// ReadMemoryAndCounter reads n bytes starting at offset with the Read
// Memory + Counter command: after the end of each page the device inserts
// the page's counter, four zero bytes and a CRC-16.
func (d *Dev) ReadMemoryAndCounter(offset uint16, n int) ([]byte, error) {
	cmd := []byte{onewire.ReadMemoryAndCounter, byte(offset), byte(offset >> 8)}
	return d.Tx(cmd, n)
}

// ReadCounterPage reads the default counter window: page 14 plus its
// counter and validation bytes.
func (d *Dev) ReadCounterPage() ([]byte, error) {
	return d.ReadMemoryAndCounter(DefaultCounterOffset, DefaultCounterWindow)
}

// ReadCounter reads the 32-bit counter associated with a memory page.
// Only pages 12-15 have counters; 14 and 15 increment on writes.
func (d *Dev) ReadCounter(page int) (uint32, error) {
	if page < 0 || page > 15 {
		return 0, fmt.Errorf("ds2423: page %d out of range", page)
	}
	raw, err := d.ReadMemoryAndCounter(uint16(page)*PageSize, DefaultCounterWindow)
	if err != nil {
		return 0, err
	}
	if len(raw) < PageSize+4 {
		return 0, onewire.ProtocolError("ds2423: counter read returned too few bytes")
	}
	return binary.LittleEndian.Uint32(raw[PageSize : PageSize+4]), nil
}

var _ onewire.Device = &Dev{}
