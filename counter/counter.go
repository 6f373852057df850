// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - type to denote a monotonic counter
// just a 64 bit unsigned integer that can only increase
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// IncrementBelow - add 1 only while the current value is below limit
//
// returns the value before the increment and true, or the current
// value and false when the limit is already reached; in that case the
// counter is not modified
func (ic *Counter) IncrementBelow(limit uint64) (uint64, bool) {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if n >= limit {
			return n, false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n+1) {
			return n, true
		}
	}
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return atomic.LoadUint64((*uint64)(ic)) == 0
}
