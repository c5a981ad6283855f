// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scope

import (
	"fmt"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/item"
	"github.com/bitmark-inc/ordtree/tree"
)

// Binding - a name bound to a value
//
// ordered by name only, so all bindings of one name in a scope share
// a tree element
type Binding struct {
	name  *item.Symbol
	value interface{}
}

// Name - the bound symbol
func (b *Binding) Name() *item.Symbol {
	return b.name
}

// Value - the bound value
func (b *Binding) Value() interface{} {
	return b.value
}

// String - printable binding
func (b *Binding) String() string {
	return fmt.Sprintf("%s=%v", b.name, b.value)
}

// Compare - order bindings by name
func (b *Binding) Compare(other tree.Item) (int, error) {
	o, ok := other.(*Binding)
	if !ok || nil == o {
		return 0, fmt.Errorf("%w: binding with %T", fault.ErrIncomparable, other)
	}
	return b.name.Compare(o.name)
}

// a binding used only to search
func probe(name string) *Binding {
	return &Binding{name: item.Intern(name)}
}
