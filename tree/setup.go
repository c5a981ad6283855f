// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"math/rand"
	"strings"

	"github.com/bitmark-inc/ordtree/fault"
)

// Variant - selects the balancing behaviour of a tree
type Variant int

// the available variants
const (
	Unbalanced    Variant = iota // plain binary search tree
	SelfBalancing Variant = iota // AVL
)

// String - printable name of a variant
func (v Variant) String() string {
	switch v {
	case Unbalanced:
		return "bst"
	case SelfBalancing:
		return "avl"
	default:
		return "invalid"
	}
}

// IsValid - true for a known variant
func (v Variant) IsValid() bool {
	return Unbalanced == v || SelfBalancing == v
}

// ParseVariant - convert a name to a variant
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst", "unbalanced":
		return Unbalanced, nil
	case "avl", "balanced", "self-balancing":
		return SelfBalancing, nil
	default:
		return Unbalanced, fault.ErrInvalidVariant
	}
}

// Tree - type to hold the root element of a tree
type Tree struct {
	root    *Element
	count   int // individual items, a bucket of n counts n
	variant Variant
	chooser func() bool // true: promote successor, false: predecessor
}

// Option - modify a tree as it is created
type Option func(*Tree)

// WithChooser - decide which neighbour replaces an element with two
// children when it is deleted; true selects the in-order successor
//
// the choice only affects the shape of an unbalanced tree, never
// its contents
func WithChooser(chooser func() bool) Option {
	return func(tree *Tree) {
		if nil != chooser {
			tree.chooser = chooser
		}
	}
}

// WithRandom - use a specific random source for the successor or
// predecessor choice
func WithRandom(r *rand.Rand) Option {
	return func(tree *Tree) {
		if nil != r {
			tree.chooser = func() bool {
				return 0 == r.Intn(2)
			}
		}
	}
}

// default coin flip, the top-level rand functions are safe for
// concurrent use by separate trees
func coinFlip() bool {
	return 0 == rand.Intn(2)
}

// New - create an initially empty tree
func New(variant Variant, options ...Option) *Tree {
	if !variant.IsValid() {
		fault.Panicf("tree.New: invalid variant: %d", variant)
	}
	tree := &Tree{
		root:    nil,
		count:   0,
		variant: variant,
		chooser: coinFlip,
	}
	for _, option := range options {
		option(tree)
	}
	return tree
}

// Variant - the balancing behaviour fixed at creation
func (tree *Tree) Variant() Variant {
	return tree.variant
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of items currently in the tree, including duplicates
func (tree *Tree) Size() int {
	return tree.count
}

// Count - number of distinct elements currently in the tree
func (tree *Tree) Count() int {
	return tree.root.nodes()
}

// Height - height of the tree, zero when empty
func (tree *Tree) Height() int {
	return tree.root.safeHeight()
}

// Root - return the root element of the tree
func (tree *Tree) Root() *Element {
	return tree.root
}

// CompareSizes - order two trees by their item counts
func CompareSizes(a *Tree, b *Tree) int {
	switch {
	case a.count < b.count:
		return -1
	case a.count > b.count:
		return 1
	default:
		return 0
	}
}

// Insert - add an item to the tree
//
// returns the element that now holds the item, either a new element
// or an existing one whose bucket the item was appended to
func (tree *Tree) Insert(value Item) (*Element, error) {
	if nil == value {
		return nil, fault.ErrNilItem
	}
	switch tree.variant {
	case SelfBalancing:
		return tree.avlInsert(value)
	default:
		e, _, err := tree.insert(value)
		return e, err
	}
}

// Find - check whether an item is present
//
// with byIdentity an element of equal items only matches if one of
// its items is identical to value
func (tree *Tree) Find(value Item, byIdentity bool) (bool, error) {
	if nil == value {
		return false, fault.ErrNilItem
	}
	e, err := tree.find(value, byIdentity)
	return nil != e, err
}

// Delete - remove one item from the tree
//
// with byIdentity only an identical item is removed; otherwise one
// equal item is removed, the earliest inserted of a bucket
func (tree *Tree) Delete(value Item, byIdentity bool) (bool, error) {
	if nil == value {
		return false, fault.ErrNilItem
	}
	switch tree.variant {
	case SelfBalancing:
		return tree.avlDelete(value, byIdentity)
	default:
		_, removed, err := tree.deleteWithParent(value, byIdentity)
		return removed, err
	}
}

// Pop - remove the representative item of the current root
//
// returns false if the tree was empty
func (tree *Tree) Pop() bool {
	if nil == tree.root {
		return false
	}
	parent, structural := tree.removeItem(tree.root, 0)
	if structural && SelfBalancing == tree.variant {
		tree.rebalanceAncestors(parent)
	}
	return true
}

// Clear - release every element, leaving an empty tree
func (tree *Tree) Clear() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

func release(e *Element) {
	if nil == e {
		return
	}
	release(e.left)
	release(e.right)
	freeElement(e)
}
