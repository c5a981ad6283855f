// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scope

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/item"
	"github.com/bitmark-inc/ordtree/tree"
)

// Scope - one level of nested bindings
type Scope struct {
	sync.Mutex
	log      *logger.L
	parent   *Scope
	depth    int
	bindings *tree.Tree
}

// New - create a scope enclosed by parent, nil for the global scope
func New(log *logger.L, parent *Scope, variant tree.Variant) (*Scope, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if !variant.IsValid() {
		return nil, fault.ErrInvalidVariant
	}
	depth := 0
	if nil != parent {
		depth = parent.depth + 1
	}
	s := &Scope{
		log:      log,
		parent:   parent,
		depth:    depth,
		bindings: tree.New(variant),
	}
	log.Debugf("new scope at depth: %d  variant: %s", depth, variant)
	return s, nil
}

// Parent - the enclosing scope
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Depth - nesting level, zero for the global scope
func (s *Scope) Depth() int {
	return s.depth
}

// Len - number of local bindings, including shadowed ones
func (s *Scope) Len() int {
	s.Lock()
	defer s.Unlock()
	return s.bindings.Size()
}

// Define - bind a name that is not yet bound in this scope
func (s *Scope) Define(name string, value interface{}) error {
	s.Lock()
	defer s.Unlock()

	b := &Binding{name: item.Intern(name), value: value}
	found, err := s.bindings.Find(b, false)
	if nil != err {
		return err
	}
	if found {
		s.log.Debugf("define: %q already bound", name)
		return fault.ErrSymbolExists
	}
	if _, err := s.bindings.Insert(b); nil != err {
		return err
	}
	s.log.Tracef("define: %s", b)
	return nil
}

// Shadow - bind a name, hiding any existing local binding of it
func (s *Scope) Shadow(name string, value interface{}) error {
	s.Lock()
	defer s.Unlock()

	b := &Binding{name: item.Intern(name), value: value}
	e, err := s.bindings.Insert(b)
	if nil != err {
		return err
	}
	s.log.Tracef("shadow: %s  bindings: %d", b, e.Len())
	return nil
}

// the visible local binding of a name, caller holds the lock
func (s *Scope) local(name string) (*Binding, error) {
	e, _, err := s.bindings.Search(probe(name))
	if nil != err || nil == e {
		return nil, err
	}
	return e.At(e.Len() - 1).(*Binding), nil
}

// LookupLocal - value of a name bound in this scope only
func (s *Scope) LookupLocal(name string) (interface{}, bool) {
	s.Lock()
	defer s.Unlock()

	b, err := s.local(name)
	if nil != err || nil == b {
		return nil, false
	}
	return b.value, true
}

// Lookup - value of a name from the innermost scope that binds it
func (s *Scope) Lookup(name string) (interface{}, bool) {
	for scope := s; nil != scope; scope = scope.parent {
		if value, ok := scope.LookupLocal(name); ok {
			return value, true
		}
	}
	return nil, false
}

// Assign - replace the value of the visible binding of a name in the
// innermost scope that binds it
func (s *Scope) Assign(name string, value interface{}) error {
	for scope := s; nil != scope; scope = scope.parent {
		scope.Lock()
		b, err := scope.local(name)
		if nil == err && nil != b {
			b.value = value
		}
		scope.Unlock()

		if nil != err {
			return err
		}
		if nil != b {
			s.log.Tracef("assign: %s at depth: %d", b, scope.depth)
			return nil
		}
	}
	s.log.Debugf("assign: %q undefined", name)
	return fault.ErrUndefinedSymbol
}

// Remove - remove the visible local binding of a name, uncovering
// any binding it shadowed
func (s *Scope) Remove(name string) bool {
	s.Lock()
	defer s.Unlock()

	b, err := s.local(name)
	if nil != err || nil == b {
		return false
	}
	removed, err := s.bindings.Delete(b, true)
	if nil != err {
		s.log.Errorf("remove: %q  error: %s", name, err)
		return false
	}
	s.log.Tracef("remove: %s", b)
	return removed
}

// Names - distinct locally bound names in ascending order
func (s *Scope) Names() []string {
	s.Lock()
	defer s.Unlock()

	names := make([]string, 0, s.bindings.Count())
	for e := s.bindings.First(); nil != e; e = e.Next() {
		names = append(names, e.Value().(*Binding).name.Name())
	}
	return names
}

// Bindings - visible local bindings in ascending name order
func (s *Scope) Bindings() []*Binding {
	s.Lock()
	defer s.Unlock()

	bindings := make([]*Binding, 0, s.bindings.Count())
	for e := s.bindings.First(); nil != e; e = e.Next() {
		bindings = append(bindings, e.At(e.Len()-1).(*Binding))
	}
	return bindings
}

// Close - drop all local bindings
func (s *Scope) Close() {
	s.Lock()
	defer s.Unlock()

	s.log.Debugf("close scope at depth: %d  bindings: %d", s.depth, s.bindings.Size())
	s.bindings.Clear()
}
