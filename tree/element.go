// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Element - a node in the tree
//
// values holds one item, or a bucket of items that all compare equal
// kept in insertion order; it is never empty and values[0] is the
// representative used for ordering
type Element struct {
	left       *Element // left sub-tree
	right      *Element // right sub-tree
	up         *Element // points to parent element, nil for root
	values     []Item   // one item or a bucket of equal items
	leftNodes  int      // number of elements in left sub-tree
	rightNodes int      // number of elements in right sub-tree
	height     int      // 1 for a leaf
}

// allocate a new leaf element
func newElement(value Item) *Element {
	totalElements.Increment()
	liveElements.Increment()
	return &Element{
		values: []Item{value},
		height: 1,
	}
}

// reclaim an element that has already been unlinked from its tree
func freeElement(e *Element) {
	e.left = nil
	e.right = nil
	e.up = nil
	e.values = nil
	e.leftNodes = 0
	e.rightNodes = 0
	e.height = 0
	releasedElements.Increment()
	liveElements.Decrement()
}

// the representative item used for ordering
func (e *Element) key() Item {
	return e.values[0]
}

// remove one item from the bucket, collapsing to a single item when
// only one remains
func (e *Element) removeAt(i int) {
	n := len(e.values)
	if n <= 1 {
		return
	}
	if 2 == n {
		e.values = []Item{e.values[1-i]}
		return
	}
	copy(e.values[i:], e.values[i+1:])
	e.values[n-1] = nil
	e.values = e.values[:n-1]
}

// index of the item identical to value, or -1
func (e *Element) indexOf(value Item) int {
	for i, v := range e.values {
		if identical(v, value) {
			return i
		}
	}
	return -1
}

// height of a possibly empty sub-tree
func (e *Element) safeHeight() int {
	if nil == e {
		return 0
	}
	return e.height
}

// recompute height from the children
func (e *Element) setHeight() {
	l := e.left.safeHeight()
	r := e.right.safeHeight()
	if l > r {
		e.height = 1 + l
	} else {
		e.height = 1 + r
	}
}

// left height minus right height
func (e *Element) balance() int {
	return e.left.safeHeight() - e.right.safeHeight()
}

// total elements in this sub-tree
func (e *Element) nodes() int {
	if nil == e {
		return 0
	}
	return 1 + e.leftNodes + e.rightNodes
}

// Value - the representative (earliest inserted) item
func (e *Element) Value() Item {
	return e.values[0]
}

// Values - copy of all items held, in insertion order
func (e *Element) Values() []Item {
	v := make([]Item, len(e.values))
	copy(v, e.values)
	return v
}

// At - the i'th item in insertion order
func (e *Element) At(i int) Item {
	return e.values[i]
}

// Len - number of items held, more than one for a bucket
func (e *Element) Len() int {
	return len(e.values)
}

// Left - return left child element
func (e *Element) Left() *Element {
	return e.left
}

// Right - return right child element
func (e *Element) Right() *Element {
	return e.right
}

// Parent - return parent element
func (e *Element) Parent() *Element {
	return e.up
}

// Height - height of the sub-tree rooted here, a leaf is 1
func (e *Element) Height() int {
	return e.height
}

// BranchSizes - cached element counts of the left and right sub-trees
func (e *Element) BranchSizes() (int, int) {
	return e.leftNodes, e.rightNodes
}

// Depth - get the depth of an element, root is zero
func (e *Element) Depth() uint {
	count := uint(0)
	parent := e.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// ChildrenAtDepth - returns all elements at a specific depth below this one
func (e *Element) ChildrenAtDepth(depth uint) []*Element {
	if depth == 0 {
		return []*Element{e}
	}
	elements := []*Element{}
	if e.left != nil {
		elements = append(elements, e.left.ChildrenAtDepth(depth-1)...)
	}
	if e.right != nil {
		elements = append(elements, e.right.ChildrenAtDepth(depth-1)...)
	}
	return elements
}
