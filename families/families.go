// Copyright 2026 The OneWire Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package families registers every device family implemented by this
// module. Importing it is enough to make onewire.Bus discovery return
// fully typed devices:
//
//	import _ "github.com/owbus/onewire/families"
package families

import (
	_ "github.com/owbus/onewire/ds18b20"
	_ "github.com/owbus/onewire/ds2405"
	_ "github.com/owbus/onewire/ds2423"
)
