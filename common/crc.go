// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation
package common

// CRC8 calculates the Dallas/Maxim 8-bit CRC (polynomial x^8+x^5+x^4+1 in
// its right-shift 0x8C form) of the byte slice parameter and returns the
// calculated value. Every 1-Wire ROM address and scratchpad carries one.
func CRC8(bytes []byte) byte {
	var crc byte
	for _, val := range bytes {
		for i := 0; i < 8; i++ {
			mix := (crc ^ val) & 0x01
			crc >>= 1
			if mix != 0 {
				crc ^= 0x8c
			}
			val >>= 1
		}
	}
	return crc
}
