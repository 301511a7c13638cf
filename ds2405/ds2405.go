// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds2405 implements the Dallas/Maxim DS2405 addressable switch
// (family code 0x05): a single open-drain output latch toggled by merely
// addressing the device.
package ds2405

import "github.com/owbus/onewire"

// Family is the ROM family code of the DS2405.
const Family byte = 0x05

// Dev is a handle to one DS2405 on a 1-Wire bus.
//
// The latch state is cached: the device toggles on every Match ROM, so the
// protocol offers no way to command an absolute state. Discovery samples
// the latch once; a manually constructed Dev stays unknown until Refresh.
type Dev struct {
	*onewire.Dev
	on    bool
	known bool
}

// New returns a handle for the switch at addr without touching the bus.
// The latch state is unknown until Refresh is called.
func New(bus *onewire.Bus, addr onewire.Address) *Dev {
	return &Dev{Dev: onewire.NewDev(bus, addr)}
}

func init() {
	onewire.Register(Family, discover)
}

func discover(bus *onewire.Bus, addr onewire.Address) (onewire.Device, error) {
	d := New(bus, addr)
	if err := d.Refresh(); err != nil {
		return nil, err
	}
	return d, nil
}

// Refresh samples the latch: select the device, then run one read time
// slot. The switch pulls the line low while closed, so bit 0 means on.
//
// Selecting a DS2405 toggles it, so Refresh reads the state the toggle
// produced.
func (d *Dev) Refresh() error {
	if err := d.Select(); err != nil {
		return err
	}
	bit, err := d.ReadBit()
	if err != nil {
		return err
	}
	d.on = bit == 0
	d.known = true
	return nil
}

// IsOn returns the cached latch state. It fails with a StateError if the
// state was never sampled.
func (d *Dev) IsOn() (bool, error) {
	if !d.known {
		return false, onewire.StateError("ds2405: latch state never sampled")
	}
	return d.on, nil
}

// Toggle flips the latch by selecting the device and flips the cached
// state with it. The physical toggle is assumed to succeed; there is no
// read-back verification.
func (d *Dev) Toggle() error {
	if !d.known {
		return onewire.StateError("ds2405: latch state never sampled")
	}
	if err := d.Select(); err != nil {
		return err
	}
	d.on = !d.on
	return nil
}

// On closes the latch. No bus transaction happens if it is already closed.
func (d *Dev) On() error {
	on, err := d.IsOn()
	if err != nil {
		return err
	}
	if on {
		return nil
	}
	return d.Toggle()
}

// Off opens the latch. No bus transaction happens if it is already open.
func (d *Dev) Off() error {
	on, err := d.IsOn()
	if err != nil {
		return err
	}
	if !on {
		return nil
	}
	return d.Toggle()
}

var _ onewire.Device = &Dev{}
