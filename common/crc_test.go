// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC8(t *testing.T) {
	// ROM code of a real DS18B20: family + serial, checksum 0xb4.
	rom := []byte{0x28, 0x25, 0xea, 0x52, 0x05, 0x10, 0xf3, 0xb4}
	if got := CRC8(rom[:7]); got != 0xb4 {
		t.Errorf("CRC8 = %#02x, expected 0xb4", got)
	}
	// Application note 27 vector: DS1820 ROM 0x00000001B81C02.
	an27 := []byte{0x02, 0x1c, 0xb8, 0x01, 0x00, 0x00, 0x00}
	if got := CRC8(an27); got != 0xa2 {
		t.Errorf("CRC8 = %#02x, expected 0xa2", got)
	}
	// Including the checksum byte folds the CRC to zero.
	if got := CRC8(rom); got != 0 {
		t.Errorf("CRC8 over full ROM = %#02x, expected 0", got)
	}
	if got := CRC8(nil); got != 0 {
		t.Errorf("CRC8(nil) = %#02x, expected 0", got)
	}
}
