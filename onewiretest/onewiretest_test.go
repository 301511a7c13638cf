// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewiretest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owbus/onewire"
)

func TestPlaybackReplaysTranscript(t *testing.T) {
	p := &Playback{
		Ops:  []IO{{W: []byte{0xcc, 0x44}, Reset: true, R: []byte{0x01}}},
		Bits: []byte{1},
		Searches: []Search{
			{Cmd: 0xf0, Addresses: [][]byte{{1, 2, 3, 4, 5, 6, 7, 8}}},
		},
	}

	r, err := p.Tx([]byte{0xcc, 0x44}, true, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, r)

	bit, err := p.ReadBit()
	require.NoError(t, err)
	assert.Equal(t, byte(1), bit)

	addrs, err := p.Search(0xf0)
	require.NoError(t, err)
	assert.Len(t, addrs, 1)

	require.NoError(t, p.Close())
}

func TestPlaybackDivergenceReturnsError(t *testing.T) {
	p := &Playback{
		Ops:       []IO{{W: []byte{0xcc}, Reset: true}},
		DontPanic: true,
	}

	_, err := p.Tx([]byte{0x55}, true, 0)
	require.Error(t, err)
	assert.True(t, onewire.IsBusError(err))
}

func TestPlaybackPanicsByDefault(t *testing.T) {
	p := &Playback{}
	defer func() {
		assert.NotNil(t, recover(), "unscripted Tx must panic")
	}()
	_, _ = p.Tx([]byte{0x33}, true, 0)
}

func TestCloseReportsUnconsumedScript(t *testing.T) {
	p := &Playback{Ops: []IO{{W: []byte{0xcc}, Reset: true}}}
	assert.Error(t, p.Close())
}
