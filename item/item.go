// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/tree"
)

// Kind - the domain of a value
type Kind int

// the kinds of value
const (
	IntegerKind Kind = iota
	TextKind    Kind = iota
	SymbolKind  Kind = iota
)

// String - printable kind
func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case TextKind:
		return "text"
	case SymbolKind:
		return "symbol"
	default:
		return "unknown"
	}
}

// Value - common behaviour of all runtime values
type Value interface {
	tree.Item
	Kind() Kind
	String() string
}

// KindOf - kind of any tree item, false if it is not a runtime value
func KindOf(x tree.Item) (Kind, bool) {
	if v, ok := x.(Value); ok {
		return v.Kind(), true
	}
	return 0, false
}

func incomparable(a Value, b tree.Item) error {
	if k, ok := KindOf(b); ok {
		return fmt.Errorf("%w: %s with %s", fault.ErrIncomparable, a.Kind(), k)
	}
	return fmt.Errorf("%w: %s with %T", fault.ErrIncomparable, a.Kind(), b)
}

// Integer - a signed integer value
type Integer struct {
	i int64
}

// NewInteger - create a new integer value
func NewInteger(i int64) *Integer {
	return &Integer{i: i}
}

// Int64 - the numeric value
func (x *Integer) Int64() int64 {
	return x.i
}

// Kind - always IntegerKind
func (x *Integer) Kind() Kind {
	return IntegerKind
}

// String - decimal representation
func (x *Integer) String() string {
	return strconv.FormatInt(x.i, 10)
}

// Compare - order integers numerically
func (x *Integer) Compare(other tree.Item) (int, error) {
	y, ok := other.(*Integer)
	if !ok || nil == y {
		return 0, incomparable(x, other)
	}
	switch {
	case x.i < y.i:
		return -1, nil
	case x.i > y.i:
		return 1, nil
	default:
		return 0, nil
	}
}

// Text - a string value
type Text struct {
	s string
}

// NewText - create a new text value
func NewText(s string) *Text {
	return &Text{s: s}
}

// Kind - always TextKind
func (x *Text) Kind() Kind {
	return TextKind
}

// String - the text itself
func (x *Text) String() string {
	return x.s
}

// Compare - order text bytewise
func (x *Text) Compare(other tree.Item) (int, error) {
	y, ok := other.(*Text)
	if !ok || nil == y {
		return 0, incomparable(x, other)
	}
	return strings.Compare(x.s, y.s), nil
}
