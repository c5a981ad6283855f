// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Get - index to a specific element, zero based in ascending order
//
// indexes count elements, so a bucket occupies a single index
func (tree *Tree) Get(index int) *Element {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, e *Element) *Element {
	for nil != e {
		nl := e.leftNodes
		switch {
		case index < nl:
			e = e.left
		case index > nl:
			// subtract left elements + 1 (for this element)
			index -= nl + 1
			e = e.right
		default:
			return e
		}
	}
	return nil
}
