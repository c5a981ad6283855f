// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/ordtree/fault"
)

// internal routine for insert
//
// all comparisons happen before the first modification so a failed
// comparison leaves the tree untouched
//
// returns the element holding value and whether it was newly created
func (tree *Tree) insert(value Item) (*Element, bool, error) {
	var parent *Element
	p := tree.root
	c := 0
	for nil != p {
		var err error
		c, err = value.Compare(p.key())
		if nil != err {
			return nil, false, err
		}
		if 0 == c {
			p.values = append(p.values, value)
			tree.count += 1
			return p, false, nil
		}
		parent = p
		if c < 0 {
			p = p.left
		} else {
			p = p.right
		}
	}

	e := newElement(value)
	e.up = parent
	switch {
	case nil == parent:
		tree.root = e
	case c < 0:
		parent.left = e
	default:
		parent.right = e
	}
	tree.count += 1

	// every ancestor has gained one element on the side of the path
	for below, p := e, parent; nil != p; below, p = p, p.up {
		if p.left == below {
			p.leftNodes += 1
		} else {
			p.rightNodes += 1
		}
		p.setHeight()
	}
	return e, true, nil
}

// internal routine for find
//
// returns the matching element or nil
func (tree *Tree) find(value Item, byIdentity bool) (*Element, error) {
	p := tree.root
	for nil != p {
		c, err := value.Compare(p.key())
		if nil != err {
			return nil, err
		}
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			if byIdentity && p.indexOf(value) < 0 {
				return nil, nil
			}
			return p, nil
		}
	}
	return nil, nil
}

// internal delete routine
//
// returns the structural parent of the element that was physically
// unlinked, nil if nothing was unlinked or the unlinked element was
// the root
func (tree *Tree) deleteWithParent(value Item, byIdentity bool) (*Element, bool, error) {
	e, err := tree.find(value, false)
	if nil != err || nil == e {
		return nil, false, err
	}

	index := 0
	if byIdentity {
		index = e.indexOf(value)
		if index < 0 {
			return nil, false, nil
		}
	}
	parent, _ := tree.removeItem(e, index)
	return parent, true, nil
}

// remove one item from an element, removing the element itself when
// the item was its last
//
// returns the structural parent as deleteWithParent and whether the
// tree structure was changed
func (tree *Tree) removeItem(e *Element, index int) (*Element, bool) {
	tree.count -= 1
	if len(e.values) > 1 {
		e.removeAt(index)
		return nil, false
	}
	return tree.remove(e), true
}

// hard deletion of an element
func (tree *Tree) remove(e *Element) *Element {
	if nil != e.left && nil != e.right {
		var m *Element
		if tree.chooser() {
			m = e.right.first() // successor: no left child
		} else {
			m = e.left.last() // predecessor: no right child
		}
		e.values = m.values
		m.values = nil
		return tree.unlink(m)
	}
	return tree.unlink(e)
}

// detach an element that has at most one child, splicing the child
// into its position, then release it
//
// returns the parent of the detached element
func (tree *Tree) unlink(e *Element) *Element {
	child := e.left
	if nil == child {
		child = e.right
	} else if nil != e.right {
		fault.Panicf("tree: unlink element with two children: %v", e.values)
	}

	parent := e.up
	if nil != child {
		child.up = parent
	}

	switch {
	case nil == parent:
		tree.root = child
	case parent.left == e:
		parent.left = child
		parent.leftNodes -= 1
		parent.setHeight()
	case parent.right == e:
		parent.right = child
		parent.rightNodes -= 1
		parent.setHeight()
	default:
		fault.Panicf("tree: element is not a child of its parent: %v", e.values)
	}

	// every further ancestor has lost one element on the side of the path
	if nil != parent {
		for below, p := parent, parent.up; nil != p; below, p = p, p.up {
			if p.left == below {
				p.leftNodes -= 1
			} else {
				p.rightNodes -= 1
			}
			p.setHeight()
		}
	}

	freeElement(e)
	return parent
}
