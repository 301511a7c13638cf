// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "periph.io/x/conn/v3"

// Device is one physical unit on the bus. Family packages embed *Dev and
// add their protocol on top.
type Device interface {
	conn.Resource
	Address() Address
}

// Dev addresses a single device on a shared bus. It is the base for every
// family-specific type and the generic result for unknown families.
//
// Dev frames all traffic with Match ROM so a command can never leak to
// sibling devices. The Bus reference is shared, not owned.
type Dev struct {
	bus  *Bus
	addr Address
}

// NewDev returns a handle for the device with the given address without
// touching the bus.
func NewDev(bus *Bus, addr Address) *Dev {
	return &Dev{bus: bus, addr: addr}
}

// Address returns the device's ROM address.
func (d *Dev) Address() Address { return d.addr }

func (d *Dev) String() string {
	return Describe(d.addr.Family()) + "{" + d.addr.String() + "}"
}

// Halt implements conn.Resource. The protocol has no per-device shutdown.
func (d *Dev) Halt() error { return nil }

// Tx sends MATCH_ROM ++ address ++ cmd after a bus reset and reads readLen
// response bytes. This is the single choke point every family-specific
// command goes through: a transaction always targets exactly this device.
func (d *Dev) Tx(cmd []byte, readLen int) ([]byte, error) {
	w := make([]byte, 0, 9+len(cmd))
	w = append(w, MatchROM)
	w = append(w, d.addr[:]...)
	w = append(w, cmd...)
	return d.bus.transport.Tx(w, true, readLen)
}

// Select sends MATCH_ROM ++ address with a reset and no function command,
// making this device the sole active participant in a following whole-bus
// bit operation such as sampling a switch latch or polling conversion
// completion.
func (d *Dev) Select() error {
	w := make([]byte, 0, 9)
	w = append(w, MatchROM)
	w = append(w, d.addr[:]...)
	_, err := d.bus.transport.Tx(w, true, 0)
	return err
}

// ReadBit runs a single bus-wide read time slot. Meaningful only right
// after Select or a command that leaves the device driving the line.
func (d *Dev) ReadBit() (byte, error) {
	return d.bus.transport.ReadBit()
}

var _ conn.Resource = &Dev{}
var _ Device = &Dev{}
