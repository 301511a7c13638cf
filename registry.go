// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// Constructor builds the typed device for one family code. It is invoked
// during discovery, so it must leave the returned device fully initialized
// and queryable; constructors for stateless families simply wrap the
// address.
type Constructor func(bus *Bus, addr Address) (Device, error)

var registry = map[byte]Constructor{}

// Register binds a family code to its constructor. Family packages call it
// from init, the same way database/sql drivers self-register, so the
// registry is complete before any discovery can run and read-only
// afterwards; no lock is needed. The last registration for a code wins.
func Register(family byte, ctor Constructor) {
	registry[family] = ctor
}

// Lookup returns the constructor for a family code, falling back to the
// generic device constructor for unknown codes. It never fails.
func Lookup(family byte) Constructor {
	if ctor, ok := registry[family]; ok {
		return ctor
	}
	return newGenericDevice
}

func newGenericDevice(bus *Bus, addr Address) (Device, error) {
	return NewDev(bus, addr), nil
}

func init() {
	// Serial-number-only parts carry no state beyond the ROM code.
	Register(FamilySerialNumber, newGenericDevice)
	Register(FamilySerialID, newGenericDevice)
}
