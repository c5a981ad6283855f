// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/ordtree/fault"
)

// Search - find the element holding items equal to value and its
// index as used by Get
//
// returns nil and -1 if there is no such element
func (tree *Tree) Search(value Item) (*Element, int, error) {
	if nil == value {
		return nil, -1, fault.ErrNilItem
	}
	index := 0
	e := tree.root
	for nil != e {
		c, err := value.Compare(e.key())
		if nil != err {
			return nil, -1, err
		}
		switch {
		case c < 0:
			e = e.left
		case c > 0:
			index += e.leftNodes + 1
			e = e.right
		default:
			return e, index + e.leftNodes, nil
		}
	}
	return nil, -1, nil
}
