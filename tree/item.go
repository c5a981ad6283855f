// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
)

//go:generate mockgen -destination=mocks/item.go -package=mocks github.com/bitmark-inc/ordtree/tree Item

// Item - a value stored in the tree must implement the Compare function
//
// Compare returns <0, 0, >0 when the receiver is less than, equal to
// or greater than other.  A non-nil error means the two values could
// not be ordered and the result must be ignored.
type Item interface {
	Compare(other Item) (int, error)
}

// Identifier - optional identity test for items
//
// items that do not implement this are identical only if they are
// the same comparable Go value, i.e. the same pointer for pointer types
type Identifier interface {
	Identical(other Item) bool
}

// identity match between two items
func identical(a Item, b Item) bool {
	if x, ok := a.(Identifier); ok {
		return x.Identical(b)
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || nil == ta || !ta.Comparable() {
		return false
	}
	return a == b
}
