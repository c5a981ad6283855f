// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/ordtree/fault"
)

// consistency checks, for testing and debugging only; they traverse
// the entire tree

// Verify - true if every structural invariant holds
func (tree *Tree) Verify() bool {
	return nil == tree.Check()
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return nil == checkUp(tree.root, nil)
}

// CheckCounts - check the cached sub-tree element counts
func (tree *Tree) CheckCounts() bool {
	_, err := checkCounts(tree.root)
	return nil == err
}

// Check - verify the whole tree, returning a description of the
// first inconsistency found
//
// a comparison failure during the check is returned unchanged
func (tree *Tree) Check() error {
	if err := checkUp(tree.root, nil); nil != err {
		return err
	}
	if _, err := checkCounts(tree.root); nil != err {
		return err
	}
	items, err := checkBuckets(tree.root)
	if nil != err {
		return err
	}
	if items != tree.count {
		return corrupt("item count: %d  expected: %d", tree.count, items)
	}
	if err := tree.checkOrder(); nil != err {
		return err
	}
	if SelfBalancing == tree.variant {
		return checkBalance(tree.root)
	}
	return nil
}

func corrupt(format string, arguments ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{fault.ErrTreeCorrupt}, arguments...)...)
}

// internal: parent/child consistency
func checkUp(e *Element, up *Element) error {
	if nil == e {
		return nil
	}
	if e.up != up {
		return corrupt("element: %v  up: %p  expected: %p", e.values, e.up, up)
	}
	if err := checkUp(e.left, e); nil != err {
		return err
	}
	return checkUp(e.right, e)
}

// internal: recompute element counts and heights; returns the number
// of elements in the sub-tree
func checkCounts(e *Element) (int, error) {
	if nil == e {
		return 0, nil
	}
	nl, err := checkCounts(e.left)
	if nil != err {
		return 0, err
	}
	nr, err := checkCounts(e.right)
	if nil != err {
		return 0, err
	}
	if nl != e.leftNodes || nr != e.rightNodes {
		return 0, corrupt("element: %v  counts: [%d,%d]  expected: [%d,%d]", e.values, e.leftNodes, e.rightNodes, nl, nr)
	}
	h := e.left.safeHeight()
	if r := e.right.safeHeight(); r > h {
		h = r
	}
	if 1+h != e.height {
		return 0, corrupt("element: %v  height: %d  expected: %d", e.values, e.height, 1+h)
	}
	return 1 + nl + nr, nil
}

// internal: buckets are never empty and hold only equal items;
// returns the number of items in the sub-tree
func checkBuckets(e *Element) (int, error) {
	if nil == e {
		return 0, nil
	}
	if 0 == len(e.values) {
		return 0, corrupt("empty element")
	}
	for _, v := range e.values[1:] {
		c, err := v.Compare(e.key())
		if nil != err {
			return 0, err
		}
		if 0 != c {
			return 0, corrupt("bucket: %v  holds unequal item: %v", e.key(), v)
		}
	}
	nl, err := checkBuckets(e.left)
	if nil != err {
		return 0, err
	}
	nr, err := checkBuckets(e.right)
	if nil != err {
		return 0, err
	}
	return len(e.values) + nl + nr, nil
}

// internal: keys strictly ascend in order, equal items share a bucket
func (tree *Tree) checkOrder() error {
	var previous *Element
	for e := tree.First(); nil != e; e = e.Next() {
		if nil != previous {
			c, err := e.key().Compare(previous.key())
			if nil != err {
				return err
			}
			if c <= 0 {
				return corrupt("order: %v  follows: %v", e.key(), previous.key())
			}
		}
		previous = e
	}
	return nil
}

// internal: AVL height balance at every element
func checkBalance(e *Element) error {
	if nil == e {
		return nil
	}
	if b := e.balance(); b < -1 || b > 1 {
		return corrupt("element: %v  balance: %+d", e.values, b)
	}
	if err := checkBalance(e.left); nil != err {
		return err
	}
	return checkBalance(e.right)
}
