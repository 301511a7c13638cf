// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// Transport is the physical 1-Wire master this layer drives: a UART, a
// DS2490 USB adapter, a DS248x i2c bridge or a test fake. Implementations
// live outside this module.
//
// The bus is strictly single-flight: exactly one command is in progress at
// any time and every method is a complete request/response round trip.
// Errors returned by a Transport should implement BusError.
type Transport interface {
	// Reset issues a bus reset pulse and waits for the presence response.
	Reset() error

	// Tx writes w to the bus, preceded by a reset pulse when reset is
	// true, then reads readLen bytes back. The returned slice has exactly
	// readLen bytes; a bus fault or short read is an error.
	Tx(w []byte, reset bool, readLen int) ([]byte, error)

	// ReadBit runs a single read time slot and returns 0 or 1.
	ReadBit() (byte, error)

	// Search runs the ROM search algorithm for the given search command
	// (SearchROM or CondSearchROM) and returns the raw 8-byte ROM codes of
	// the devices that answered. Each invocation is a fresh search.
	Search(cmd byte) ([][]byte, error)
}
