// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - an ordered search tree that tolerates duplicate keys
//
// Items that compare equal share a single element, which then holds
// a bucket of values in insertion order.  Every element keeps a
// pointer to its parent and the number of elements in each of its
// sub-trees, so ranks can be computed and the tree walked in order
// without a stack.
//
// Two variants are available, chosen when the tree is created:
//
//   Unbalanced     plain binary search tree
//   SelfBalancing  AVL tree, rebalanced by rotations after every
//                  structural change
//
// Comparison may fail (e.g. values from different domains); a failed
// comparison aborts the operation before anything is modified and
// the error is returned unchanged to the caller.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package tree
