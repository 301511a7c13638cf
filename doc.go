// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package onewire implements the device-addressing protocol layer of the
// Dallas/Maxim 1-Wire bus: ROM addresses, Match/Skip/Search ROM command
// framing, bus-wide broadcasts and a family registry that turns discovered
// addresses into typed devices.
//
// The electrical transport (bit timing, bus arbitration, adapter chips) is
// deliberately out of scope; it is consumed through the Transport interface.
// Family-specific protocol logic lives in the per-device packages ds18b20,
// ds2405 and ds2423, which register themselves with this package at init
// time. Import github.com/owbus/onewire/families to pull in all of them.
package onewire
