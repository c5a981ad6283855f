// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic counters shared between goroutines
//
// Used for process-wide statistics where many independently owned
// structures report into a single total.
package counter

import (
	"sync/atomic"
)

// Counter - a monotonic event count, only ever incremented or reset
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Add - add n to a counter, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// Reset - set to zero, returns the value before the reset
func (c *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}

// Gauge - a level that moves both ways, e.g. number of live objects
type Gauge int64

// Increment - add 1 to a gauge, returns new value
func (g *Gauge) Increment() int64 {
	return atomic.AddInt64((*int64)(g), 1)
}

// Decrement - subtract 1 from a gauge, returns new value
func (g *Gauge) Decrement() int64 {
	return atomic.AddInt64((*int64)(g), -1)
}

// Int64 - returns current value
func (g *Gauge) Int64() int64 {
	return atomic.LoadInt64((*int64)(g))
}

// IsZero - check if zero
func (g *Gauge) IsZero() bool {
	return atomic.LoadInt64((*int64)(g)) == 0
}
