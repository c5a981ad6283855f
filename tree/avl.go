// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/ordtree/fault"
)

// AVL layer: the plain binary search tree routines perform the
// change, then the path from the change to the root is rebalanced
//
// balance factors are taken from the sub-tree heights; the element
// counts are kept exact alongside for the rank queries

func (tree *Tree) avlInsert(value Item) (*Element, error) {
	e, created, err := tree.insert(value)
	if nil != err {
		return nil, err
	}
	if created {
		tree.rebalanceAncestors(e)
	}
	return e, nil
}

func (tree *Tree) avlDelete(value Item, byIdentity bool) (bool, error) {
	parent, removed, err := tree.deleteWithParent(value, byIdentity)
	if nil != err || !removed {
		return false, err
	}
	// a soft deletion or the removal of the root returns no parent
	// and only the root is checked
	tree.rebalanceAncestors(parent)
	return true, nil
}

// rebalance each element from e to the top of the tree, then the
// root once more as rotations may have replaced it
func (tree *Tree) rebalanceAncestors(e *Element) {
	for p := e; nil != p; {
		up := p.up // captured before any rotation here
		tree.rebalance(p)
		p = up
	}
	if nil != tree.root {
		tree.rebalance(tree.root)
	}
}

// restore the balance of a single element
//
// returns the element now occupying e's position
func (tree *Tree) rebalance(e *Element) *Element {
	e.setHeight()
	b := e.balance()
	switch {
	case b <= -2: // right heavy
		if e.right.balance() > 0 {
			// double RL rotation
			tree.rotateRight(e.right)
		}
		return tree.rotateLeft(e)
	case b >= 2: // left heavy
		if e.left.balance() < 0 {
			// double LR rotation
			tree.rotateLeft(e.left)
		}
		return tree.rotateRight(e)
	}
	return e
}

// single left rotation: the right child of first takes its place
//
//       first                 second
//      /     \               /      \
//     a     second   →    first      c
//          /      \      /     \
//         b        c    a       b
func (tree *Tree) rotateLeft(first *Element) *Element {
	second := first.right
	if nil == second {
		fault.Panicf("tree: rotate left without right child: %v", first.values)
	}
	tree.replaceChild(first.up, first, second)

	first.right = second.left
	first.rightNodes = second.leftNodes
	if nil != first.right {
		first.right.up = first
	}

	second.left = first
	first.up = second
	second.leftNodes = first.nodes()

	first.setHeight()
	second.setHeight()
	totalRotations.Increment()
	return second
}

// single right rotation: mirror image of rotateLeft
func (tree *Tree) rotateRight(first *Element) *Element {
	second := first.left
	if nil == second {
		fault.Panicf("tree: rotate right without left child: %v", first.values)
	}
	tree.replaceChild(first.up, first, second)

	first.left = second.right
	first.leftNodes = second.rightNodes
	if nil != first.left {
		first.left.up = first
	}

	second.right = first
	first.up = second
	second.rightNodes = first.nodes()

	first.setHeight()
	second.setHeight()
	totalRotations.Increment()
	return second
}

// put replacement where old was below parent; the parent's counts
// are unchanged as the sub-tree holds the same elements
func (tree *Tree) replaceChild(parent *Element, old *Element, replacement *Element) {
	replacement.up = parent
	switch {
	case nil == parent:
		tree.root = replacement
	case parent.left == old:
		parent.left = replacement
	case parent.right == old:
		parent.right = replacement
	default:
		fault.Panicf("tree: element is not a child of its parent: %v", old.values)
	}
}
