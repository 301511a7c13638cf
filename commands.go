// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// ROM commands. Every transaction on the bus starts with one of these after
// a reset pulse.
const (
	ReadROM       byte = 0x33
	MatchROM      byte = 0x55
	SkipROM       byte = 0xcc
	SearchROM     byte = 0xf0
	CondSearchROM byte = 0xec
)

// Function commands understood by the device families implemented in this
// module. They are only valid once a device has been selected with a ROM
// command.
const (
	ConvertT             byte = 0x44
	ReadScratchpad       byte = 0xbe
	WriteScratchpad      byte = 0x4e
	CopyScratchpad       byte = 0x48
	RecallEEPROM         byte = 0xb8
	ReadPowerSupply      byte = 0xb4
	ReadMemory           byte = 0xf0
	ReadMemoryAndCounter byte = 0xa5
)

// Family codes for devices that carry no protocol state beyond their ROM
// address. They resolve to the generic Dev type.
const (
	FamilySerialNumber byte = 0x01 // DS2401
	FamilySerialID     byte = 0x81 // DS1420
)

var familyNames = map[byte]string{
	FamilySerialNumber: "DS2401",
	FamilySerialID:     "DS1420",
	0x05:               "DS2405",
	0x1d:               "DS2423",
	0x28:               "DS18B20",
}

// Describe returns the part name for a family code, or "family 0xNN" for
// codes this module has no name for.
func Describe(family byte) string {
	if name, ok := familyNames[family]; ok {
		return name
	}
	return "family 0x" + hexByte(family)
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
