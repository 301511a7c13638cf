// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds2405

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owbus/onewire"
	"github.com/owbus/onewire/onewiretest"
)

var addr = onewire.Address{0x05, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x00}

func selectOp() onewiretest.IO {
	return onewiretest.IO{W: append([]byte{0x55}, addr[:]...), Reset: true}
}

func TestRefreshSamplesLatch(t *testing.T) {
	var testData = []struct {
		bit byte
		on  bool
	}{
		// Inverted logic: the switch pulls the line low while closed.
		{0, true},
		{1, false},
	}
	for _, entry := range testData {
		transport := &onewiretest.Playback{
			Ops:  []onewiretest.IO{selectOp()},
			Bits: []byte{entry.bit},
		}
		d := New(onewire.New(transport), addr)

		require.NoError(t, d.Refresh())
		on, err := d.IsOn()
		require.NoError(t, err)
		assert.Equal(t, entry.on, on)
		require.NoError(t, transport.Close())
	}
}

func TestToggleInvertsCachedState(t *testing.T) {
	transport := &onewiretest.Playback{
		Ops:  []onewiretest.IO{selectOp(), selectOp(), selectOp()},
		Bits: []byte{0},
	}
	d := New(onewire.New(transport), addr)
	require.NoError(t, d.Refresh())

	require.NoError(t, d.Toggle())
	on, err := d.IsOn()
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, d.Toggle())
	on, err = d.IsOn()
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, transport.Close())
}

func TestOnOffIdempotent(t *testing.T) {
	// Refresh samples the latch closed; one Off transaction, then a
	// second Off and both On calls must not touch the bus.
	transport := &onewiretest.Playback{
		Ops:  []onewiretest.IO{selectOp(), selectOp()},
		Bits: []byte{0},
	}
	d := New(onewire.New(transport), addr)
	require.NoError(t, d.Refresh())

	require.NoError(t, d.Off())
	require.NoError(t, d.Off())
	require.NoError(t, transport.Close(), "second Off must not select again")

	on, err := d.IsOn()
	require.NoError(t, err)
	assert.False(t, on)
}

func TestUnknownStateUntilRefresh(t *testing.T) {
	d := New(onewire.New(&onewiretest.Playback{}), addr)

	_, err := d.IsOn()
	assert.True(t, onewire.IsStateError(err))
	assert.True(t, onewire.IsStateError(d.Toggle()))
	assert.True(t, onewire.IsStateError(d.On()))
	assert.True(t, onewire.IsStateError(d.Off()))
}
