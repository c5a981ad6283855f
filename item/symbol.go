// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"strings"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ordtree/tree"
)

// Symbol - an interned name
type Symbol struct {
	name string
}

// symbols never expire and no janitor is started
var symbols = cache.New(cache.NoExpiration, 0)

// Intern - return the unique symbol for a name
func Intern(name string) *Symbol {
	if s, found := symbols.Get(name); found {
		return s.(*Symbol)
	}
	s := &Symbol{name: name}
	if err := symbols.Add(name, s, cache.NoExpiration); nil != err {
		// lost a race with another goroutine, use its symbol
		if existing, found := symbols.Get(name); found {
			return existing.(*Symbol)
		}
	}
	return s
}

// InternedCount - number of distinct symbols created so far
func InternedCount() int {
	return symbols.ItemCount()
}

// Name - the symbol's name
func (x *Symbol) Name() string {
	return x.name
}

// Kind - always SymbolKind
func (x *Symbol) Kind() Kind {
	return SymbolKind
}

// String - the name
func (x *Symbol) String() string {
	return x.name
}

// Compare - order symbols by name
func (x *Symbol) Compare(other tree.Item) (int, error) {
	y, ok := other.(*Symbol)
	if !ok || nil == y {
		return 0, incomparable(x, other)
	}
	return strings.Compare(x.name, y.name), nil
}
