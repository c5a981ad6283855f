// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/ordtree/counter"
)

// global data, totals across all trees in the process
var (
	totalElements    counter.Counter // elements ever created
	releasedElements counter.Counter // elements released after their last value was removed
	liveElements     counter.Gauge   // elements currently linked into some tree
	totalRotations   counter.Counter // single rotations performed by the AVL layer
)

// Statistics - snapshot of the process-wide element and rotation totals
type Statistics struct {
	Created   uint64 `json:"created"`
	Released  uint64 `json:"released"`
	Live      int64  `json:"live"`
	Rotations uint64 `json:"rotations"`
}

// ReadStatistics - fetch the current totals
func ReadStatistics() Statistics {
	return Statistics{
		Created:   totalElements.Uint64(),
		Released:  releasedElements.Uint64(),
		Live:      liveElements.Int64(),
		Rotations: totalRotations.Uint64(),
	}
}
