// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// First - return the element with the lowest key value
func (tree *Tree) First() *Element {
	return tree.root.first()
}

// internal: lowest element in a sub-tree
func (e *Element) first() *Element {
	if e == nil {
		return nil
	}
	for e.left != nil {
		e = e.left
	}
	return e
}

// Last - return the element with the highest key value
func (tree *Tree) Last() *Element {
	return tree.root.last()
}

// internal: highest element in a sub-tree
func (e *Element) last() *Element {
	if e == nil {
		return nil
	}
	for e.right != nil {
		e = e.right
	}
	return e
}

// Next - given an element, return the element with the next highest
// key value or nil if no more elements.
//
// found from the structure alone, no comparisons are made
func (e *Element) Next() *Element {
	if e.right != nil {
		return e.right.first()
	}
	for ; e.up != nil; e = e.up {
		if e.up.left == e {
			return e.up
		}
	}
	return nil
}

// Prev - given an element, return the element with the next lowest
// key value or nil if no more elements
func (e *Element) Prev() *Element {
	if e.left != nil {
		return e.left.last()
	}
	for ; e.up != nil; e = e.up {
		if e.up.right == e {
			return e.up
		}
	}
	return nil
}

// Walk - call f for every item in ascending order, the items of a
// bucket in insertion order; stops early if f returns false
func (tree *Tree) Walk(f func(Item) bool) {
	for e := tree.First(); nil != e; e = e.Next() {
		for _, v := range e.values {
			if !f(v) {
				return
			}
		}
	}
}

// Items - all items in ascending order
func (tree *Tree) Items() []Item {
	items := make([]Item, 0, tree.count)
	tree.Walk(func(v Item) bool {
		items = append(items, v)
		return true
	})
	return items
}
