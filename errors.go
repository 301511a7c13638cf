// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "errors"

// BusError is implemented by errors coming out of a Transport: reset
// failures, write/read faults, short reads. This layer never retries them.
type BusError interface {
	error
	BusError() bool
}

// AddressError reports raw ROM bytes that cannot form a valid address.
type AddressError string

func (e AddressError) Error() string { return string(e) }
func (e AddressError) MalformedAddress() bool { return true }

// ProtocolError reports a response that is structurally wrong for the
// command that was sent, typically shorter than the device family mandates.
// No partial decode is attempted.
type ProtocolError string

func (e ProtocolError) Error() string { return string(e) }
func (e ProtocolError) ProtocolError() bool { return true }

// StateError reports an operation that needs device state which was never
// established, such as reading a cached temperature before any conversion.
type StateError string

func (e StateError) Error() string { return string(e) }
func (e StateError) StateError() bool { return true }

// IsBusError returns true if err originated in the transport.
func IsBusError(err error) bool {
	var e BusError
	return errors.As(err, &e) && e.BusError()
}

// IsMalformedAddress returns true if err reports unusable ROM bytes.
func IsMalformedAddress(err error) bool {
	var e interface {
		error
		MalformedAddress() bool
	}
	return errors.As(err, &e) && e.MalformedAddress()
}

// IsProtocolError returns true if err reports a malformed device response.
func IsProtocolError(err error) bool {
	var e interface {
		error
		ProtocolError() bool
	}
	return errors.As(err, &e) && e.ProtocolError()
}

// IsStateError returns true if err reports missing prior device state.
func IsStateError(err error) bool {
	var e interface {
		error
		StateError() bool
	}
	return errors.As(err, &e) && e.StateError()
}
