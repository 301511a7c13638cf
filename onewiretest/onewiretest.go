// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package onewiretest provides a scripted onewire.Transport for testing
// protocol code against recorded or hand-written bus transcripts.
package onewiretest

import (
	"bytes"
	"fmt"

	"github.com/owbus/onewire"
)

// IO is one expected Tx transaction: the bytes the code under test must
// write, whether it must request a reset first, and the scripted response.
//
// The scripted response is returned verbatim, so a transcript may supply
// fewer bytes than requested to exercise short-response handling.
type IO struct {
	W     []byte
	Reset bool
	R     []byte
}

// Search is one expected Search invocation and its scripted result of raw
// 8-byte ROM codes.
type Search struct {
	Cmd       byte
	Addresses [][]byte
}

// Playback implements onewire.Transport by replaying a scripted transcript
// and failing on any divergence.
//
// By default a divergence panics, which gives a test a useful stack trace.
// Set DontPanic to turn divergences into returned errors instead, for tests
// that exercise error paths.
type Playback struct {
	Ops       []IO
	Bits      []byte
	Searches  []Search
	DontPanic bool

	count       int
	bitCount    int
	searchCount int
	resets      int
}

// Reset implements onewire.Transport.
func (p *Playback) Reset() error {
	p.resets++
	return nil
}

// Tx implements onewire.Transport.
func (p *Playback) Tx(w []byte, reset bool, readLen int) ([]byte, error) {
	if p.count >= len(p.Ops) {
		return nil, p.fail(fmt.Sprintf("onewiretest: unexpected Tx of % x", w))
	}
	op := p.Ops[p.count]
	p.count++
	if !bytes.Equal(w, op.W) {
		return nil, p.fail(fmt.Sprintf("onewiretest: expected write % x, got % x", op.W, w))
	}
	if reset != op.Reset {
		return nil, p.fail(fmt.Sprintf("onewiretest: expected reset=%t on write % x", op.Reset, w))
	}
	return append([]byte(nil), op.R...), nil
}

// ReadBit implements onewire.Transport.
func (p *Playback) ReadBit() (byte, error) {
	if p.bitCount >= len(p.Bits) {
		return 0, p.fail("onewiretest: unexpected ReadBit")
	}
	bit := p.Bits[p.bitCount]
	p.bitCount++
	return bit, nil
}

// Search implements onewire.Transport.
func (p *Playback) Search(cmd byte) ([][]byte, error) {
	if p.searchCount >= len(p.Searches) {
		return nil, p.fail("onewiretest: unexpected Search")
	}
	s := p.Searches[p.searchCount]
	p.searchCount++
	if cmd != s.Cmd {
		return nil, p.fail(fmt.Sprintf("onewiretest: expected search command %#02x, got %#02x", s.Cmd, cmd))
	}
	return s.Addresses, nil
}

// Close verifies that the whole transcript was consumed.
func (p *Playback) Close() error {
	if p.count != len(p.Ops) {
		return busError(fmt.Sprintf("onewiretest: expected %d Tx calls, got %d", len(p.Ops), p.count))
	}
	if p.bitCount != len(p.Bits) {
		return busError(fmt.Sprintf("onewiretest: expected %d ReadBit calls, got %d", len(p.Bits), p.bitCount))
	}
	if p.searchCount != len(p.Searches) {
		return busError(fmt.Sprintf("onewiretest: expected %d Search calls, got %d", len(p.Searches), p.searchCount))
	}
	return nil
}

func (p *Playback) fail(msg string) error {
	if p.DontPanic {
		return busError(msg)
	}
	panic(msg)
}

// busError implements error and onewire.BusError.
type busError string

func (e busError) Error() string  { return string(e) }
func (e busError) BusError() bool { return true }

var _ onewire.Transport = &Playback{}
var _ onewire.BusError = busError("")
