// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds18b20 implements the scratchpad protocol of the Dallas/Maxim
// DS18B20 programmable-resolution digital thermometer (family code 0x28).
//
// Range: -55°C - 125°C
//
// Accuracy: +/- 0.5°C
//
// Resolution: 9 to 12 bits, 0.0625°C at 12 bits
//
// A reading cycle is Convert T, a completion poll and a scratchpad read;
// Dev.Temperature runs the whole cycle, bounded by a context. For detailed
// information, refer to the [datasheet].
//
// [datasheet]: https://www.analog.com/media/en/technical-documentation/data-sheets/ds18b20.pdf
package ds18b20
