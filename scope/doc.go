// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scope - nested symbol tables for the evaluator
//
// Each scope holds its bindings in its own ordered tree, guarded by
// the scope's own mutex.  A name may be bound more than once in the
// same scope (Shadow); the most recent binding is the visible one
// and removing it uncovers the previous binding.
package scope
