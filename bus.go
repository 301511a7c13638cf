// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// Bus is the directory of one physical 1-Wire bus. It owns the Transport
// for its lifetime and hands out device instances that share it.
type Bus struct {
	transport Transport
}

// New returns a Bus driving the given transport.
func New(t Transport) *Bus {
	return &Bus{transport: t}
}

// Search discovers every device on the bus and returns one typed,
// state-initialized instance per address, resolved through the family
// registry. Addresses whose bytes do not form a valid ROM code are skipped
// rather than failing the whole scan.
func (b *Bus) Search() ([]Device, error) {
	return b.search(SearchROM)
}

// SearchAlarming discovers only devices currently in an alarm state, using
// the conditional search command.
func (b *Bus) SearchAlarming() ([]Device, error) {
	return b.search(CondSearchROM)
}

func (b *Bus) search(cmd byte) ([]Device, error) {
	raws, err := b.transport.Search(cmd)
	if err != nil {
		return nil, err
	}
	devices := make([]Device, 0, len(raws))
	for _, raw := range raws {
		addr, err := ParseAddress(raw)
		if err != nil {
			continue
		}
		dev, err := Lookup(addr.Family())(b, addr)
		if err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// SkipROM addresses every device on the bus at once: reset pulse followed
// by the Skip ROM command.
func (b *Bus) SkipROM() error {
	_, err := b.transport.Tx([]byte{SkipROM}, true, 0)
	return err
}

// ConvertAll triggers a temperature conversion on every thermometer on the
// bus simultaneously (SKIP_ROM ++ CONVERT_T after a reset). The caller is
// responsible for waiting out or polling conversion completion afterwards.
func (b *Bus) ConvertAll() error {
	_, err := b.transport.Tx([]byte{SkipROM, ConvertT}, true, 0)
	return err
}

// ReadBit runs a single bus-wide read time slot.
func (b *Bus) ReadBit() (byte, error) {
	return b.transport.ReadBit()
}
