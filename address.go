// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/owbus/onewire/common"
)

// Address is the 64-bit ROM code burned into every 1-Wire device, in wire
// order: one family byte, six serial bytes least-significant-first, one
// CRC-8 checksum over the preceding seven bytes.
//
// The value is immutable; it is produced by bus discovery or by one of the
// constructors below and owned by exactly one device instance.
type Address [8]byte

// ParseAddress builds an Address from 8 raw wire bytes and verifies the
// checksum. It returns an AddressError if raw has the wrong length or the
// CRC does not match.
func ParseAddress(raw []byte) (Address, error) {
	a, err := MakeAddress(raw)
	if err != nil {
		return Address{}, err
	}
	if !a.Valid() {
		return Address{}, AddressError(fmt.Sprintf("onewire: ROM checksum mismatch in % x", raw))
	}
	return a, nil
}

// MakeAddress builds an Address from 8 raw wire bytes without checksum
// validation, preserving the permissive behavior needed for fabricated or
// historically recorded addresses. Only the length is checked.
func MakeAddress(raw []byte) (Address, error) {
	if len(raw) != 8 {
		return Address{}, AddressError(fmt.Sprintf("onewire: ROM address must be 8 bytes, got %d", len(raw)))
	}
	var a Address
	copy(a[:], raw)
	return a, nil
}

// ParseDisplay parses the canonical "crc.serial.family" display form, the
// inverse of String. The checksum is taken as-is, not recomputed, so
// addresses recorded by permissive implementations keep working.
func ParseDisplay(s string) (Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 12 || len(parts[2]) != 2 {
		return Address{}, AddressError("onewire: bad display address " + s)
	}
	raw, err := hex.DecodeString(parts[0] + parts[1] + parts[2])
	if err != nil {
		return Address{}, AddressError("onewire: bad display address " + s)
	}
	var a Address
	a[0] = raw[7]
	a[7] = raw[0]
	for i := 0; i < 6; i++ {
		// The display form carries the serial most-significant-first.
		a[1+i] = raw[6-i]
	}
	return a, nil
}

// Family returns the device family code, the first wire byte.
func (a Address) Family() byte { return a[0] }

// Serial returns the six serial bytes in wire order.
func (a Address) Serial() [6]byte {
	var s [6]byte
	copy(s[:], a[1:7])
	return s
}

// Checksum returns the CRC-8 byte, the last wire byte.
func (a Address) Checksum() byte { return a[7] }

// Valid reports whether the checksum matches the family and serial bytes.
func (a Address) Valid() bool {
	return common.CRC8(a[0:7]) == a[7]
}

// Bytes returns the address in wire order.
func (a Address) Bytes() []byte {
	b := make([]byte, 8)
	copy(b, a[:])
	return b
}

// String renders the canonical display form "crc.serial.family". The serial
// is printed most-significant-first even though the wire carries it
// least-significant-first; existing address books depend on this exact
// reversal.
func (a Address) String() string {
	return fmt.Sprintf("%02x.%02x%02x%02x%02x%02x%02x.%02x",
		a[7], a[6], a[5], a[4], a[3], a[2], a[1], a[0])
}
