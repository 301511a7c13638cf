// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var romBytes = []byte{0x28, 0x25, 0xea, 0x52, 0x05, 0x10, 0xf3, 0xb4}

func TestParseAddress(t *testing.T) {
	a, err := ParseAddress(romBytes)
	require.NoError(t, err)
	assert.Equal(t, byte(0x28), a.Family())
	assert.Equal(t, byte(0xb4), a.Checksum())
	assert.Equal(t, [6]byte{0x25, 0xea, 0x52, 0x05, 0x10, 0xf3}, a.Serial())
	assert.Equal(t, romBytes, a.Bytes())
	assert.True(t, a.Valid())
}

func TestAddressString(t *testing.T) {
	a, err := ParseAddress(romBytes)
	require.NoError(t, err)
	// Checksum first, serial reversed to most-significant-first, family
	// last. Address books depend on this exact layout.
	assert.Equal(t, "b4.f3100552ea25.28", a.String())
	assert.Equal(t, a.String(), a.String())
}

func TestParseDisplayRoundTrip(t *testing.T) {
	a, err := ParseAddress(romBytes)
	require.NoError(t, err)
	back, err := ParseDisplay(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestParseDisplayRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "ce.f3100552ea25", "xx.f3100552ea25.28", "ce.f3100552ea.28"} {
		_, err := ParseDisplay(s)
		assert.Error(t, err, "%q", s)
		assert.True(t, IsMalformedAddress(err), "%q", s)
	}
}

func TestParseAddressWrongLength(t *testing.T) {
	_, err := ParseAddress(romBytes[:7])
	require.Error(t, err)
	assert.True(t, IsMalformedAddress(err))

	_, err = ParseAddress(append(romBytes, 0x00))
	require.Error(t, err)
	assert.True(t, IsMalformedAddress(err))
}

func TestParseAddressChecksumMismatch(t *testing.T) {
	corrupt := append([]byte(nil), romBytes...)
	corrupt[7] ^= 0x01
	_, err := ParseAddress(corrupt)
	require.Error(t, err)
	assert.True(t, IsMalformedAddress(err))

	// MakeAddress stays permissive for fabricated addresses.
	a, err := MakeAddress(corrupt)
	require.NoError(t, err)
	assert.False(t, a.Valid())
}
