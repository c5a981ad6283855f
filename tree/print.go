// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, e *Element, prefix string, br branch, printData bool) int {
	if nil == e {
		return 0
	}
	rd := 0
	ld := 0
	if nil != e.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, e.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != e.up {
		up = e.up.key()
	}
	if printData {
		fmt.Fprintf(w, "%v ×%d ^%v %+2d/[%d,%d]\n", e.key(), len(e.values), up, e.balance(), e.leftNodes, e.rightNodes)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", e.key(), up)
	}
	if nil != e.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, e.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
