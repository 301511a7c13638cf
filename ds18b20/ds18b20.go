// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds18b20

import (
	"context"
	"encoding/binary"
	"time"

	"periph.io/x/conn/v3/physic"

	"github.com/owbus/onewire"
)

// Family is the ROM family code of the DS18B20.
const Family byte = 0x28

// Resolution is the conversion resolution code from the configuration
// register, bits 5-6.
type Resolution byte

const (
	Bits9 Resolution = iota
	Bits10
	Bits11
	Bits12
)

func (r Resolution) String() string {
	switch r {
	case Bits9:
		return "9 bits"
	case Bits10:
		return "10 bits"
	case Bits11:
		return "11 bits"
	case Bits12:
		return "12 bits"
	default:
		return "unknown"
	}
}

// Bits returns the number of temperature bits.
func (r Resolution) Bits() int {
	return 9 + int(r&3)
}

// ConversionTime returns the maximum conversion time at this resolution,
// datasheet p.6: 9bits:94ms, 10bits:188ms, 11bits:376ms, 12bits:752ms.
// Useful for deriving a deadline for Temperature.
func (r Resolution) ConversionTime() time.Duration {
	return (94 << (r & 3)) * time.Millisecond
}

// mask zeroes the temperature bits that are undefined below 12-bit
// resolution.
func (r Resolution) mask() uint16 {
	return uint16(r) | 0xfffc
}

// Scratchpad is the decoded content of one scratchpad read.
type Scratchpad struct {
	Temperature physic.Temperature
	AlarmHigh   int8 // TH register, °C
	AlarmLow    int8 // TL register, °C
	Resolution  Resolution
}

// Dev is a handle to one DS18B20 on a 1-Wire bus.
//
// The alarm, resolution and temperature fields mirror the device's
// scratchpad and are only meaningful after a successful ReadScratchpad.
type Dev struct {
	*onewire.Dev
	last      Scratchpad
	populated bool
}

// New returns a handle for the thermometer at addr without touching the
// bus. State populates on the first ReadScratchpad.
func New(bus *onewire.Bus, addr onewire.Address) *Dev {
	return &Dev{Dev: onewire.NewDev(bus, addr)}
}

func init() {
	onewire.Register(Family, discover)
}

// discover builds the discovery-time instance: the initial scratchpad read
// leaves it fully queryable without further calls.
func discover(bus *onewire.Bus, addr onewire.Address) (onewire.Device, error) {
	d := New(bus, addr)
	if _, err := d.ReadScratchpad(); err != nil {
		return nil, err
	}
	return d, nil
}

// StartConversion sends Convert T to this device only. The device pulls
// the line low until the conversion completes; poll with ReadBit or use
// Temperature which does the whole cycle.
func (d *Dev) StartConversion() error {
	_, err := d.Tx([]byte{onewire.ConvertT}, 0)
	return err
}

// ReadScratchpad reads and decodes the 9 scratchpad bytes, updating the
// cached temperature, alarm thresholds and resolution.
func (d *Dev) ReadScratchpad() (Scratchpad, error) {
	raw, err := d.Tx([]byte{onewire.ReadScratchpad}, 9)
	if err != nil {
		return Scratchpad{}, err
	}
	if len(raw) < 9 {
		return Scratchpad{}, onewire.ProtocolError("ds18b20: scratchpad read returned fewer than 9 bytes")
	}
	d.last = decode(raw)
	d.populated = true
	return d.last, nil
}

// decode interprets scratchpad bytes, datasheet p.7. The temperature bits
// below the configured resolution are undefined and get masked off.
func decode(raw []byte) Scratchpad {
	res := Resolution(raw[4] >> 5)
	t := int16(binary.LittleEndian.Uint16(raw[0:2]) & res.mask())
	return Scratchpad{
		// t has 4 fractional bits, so 1/16 K per count.
		Temperature: physic.Temperature(t)*physic.Kelvin/16 + physic.ZeroCelsius,
		AlarmHigh:   int8(raw[2]),
		AlarmLow:    int8(raw[3]),
		Resolution:  res,
	}
}

// Temperature runs a full reading cycle: Convert T, a busy-wait on the
// open-drain completion bit, then a scratchpad read. The device signals
// completion by letting the line go high.
//
// A device that never completes would block forever, so ctx must carry a
// deadline or be cancelable; Resolution.ConversionTime is a good bound.
func (d *Dev) Temperature(ctx context.Context) (physic.Temperature, error) {
	if err := d.StartConversion(); err != nil {
		return 0, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		bit, err := d.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			break
		}
	}
	sp, err := d.ReadScratchpad()
	if err != nil {
		return 0, err
	}
	return sp.Temperature, nil
}

// LastTemp returns the temperature decoded by the most recent scratchpad
// read, without touching the bus. It fails with a StateError if no read
// ever happened.
func (d *Dev) LastTemp() (physic.Temperature, error) {
	if !d.populated {
		return 0, onewire.StateError("ds18b20: no scratchpad has been read yet")
	}
	return d.last.Temperature, nil
}

// Alarms returns the cached TH/TL alarm thresholds.
func (d *Dev) Alarms() (high, low int8, err error) {
	if !d.populated {
		return 0, 0, onewire.StateError("ds18b20: no scratchpad has been read yet")
	}
	return d.last.AlarmHigh, d.last.AlarmLow, nil
}

// Resolution returns the cached conversion resolution.
func (d *Dev) Resolution() (Resolution, error) {
	if !d.populated {
		return 0, onewire.StateError("ds18b20: no scratchpad has been read yet")
	}
	return d.last.Resolution, nil
}

// WriteScratchpad writes the TH/TL alarm thresholds and the resolution in
// a single command. All three bytes must be written at once; the device
// discards partial writes.
func (d *Dev) WriteScratchpad(alarmHigh, alarmLow int8, res Resolution) error {
	cmd := []byte{onewire.WriteScratchpad, byte(alarmHigh), byte(alarmLow), byte(res<<5) & 0x7f}
	_, err := d.Tx(cmd, 0)
	return err
}

// SetAlarms rewrites the alarm thresholds, keeping the cached resolution.
// The scratchpad must have been read at least once, otherwise the
// resolution byte would be garbage.
func (d *Dev) SetAlarms(high, low int8) error {
	if !d.populated {
		return onewire.StateError("ds18b20: read the scratchpad before writing partial values")
	}
	return d.WriteScratchpad(high, low, d.last.Resolution)
}

// SetResolution rewrites the resolution, keeping the cached alarm
// thresholds. Same prior-read requirement as SetAlarms.
func (d *Dev) SetResolution(res Resolution) error {
	if !d.populated {
		return onewire.StateError("ds18b20: read the scratchpad before writing partial values")
	}
	return d.WriteScratchpad(d.last.AlarmHigh, d.last.AlarmLow, res)
}

// CopyScratchpad copies the scratchpad to EEPROM.
func (d *Dev) CopyScratchpad() error {
	_, err := d.Tx([]byte{onewire.CopyScratchpad}, 0)
	return err
}

// RecallEEPROM restores the scratchpad from EEPROM.
func (d *Dev) RecallEEPROM() error {
	_, err := d.Tx([]byte{onewire.RecallEEPROM}, 0)
	return err
}

// ReadPowerSupply issues the Read Power Supply command and passes the raw
// response through.
func (d *Dev) ReadPowerSupply() ([]byte, error) {
	return d.Tx([]byte{onewire.ReadPowerSupply}, 0)
}

var _ onewire.Device = &Dev{}
