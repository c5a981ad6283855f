// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scope_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/item"
	"github.com/bitmark-inc/ordtree/scope"
	"github.com/bitmark-inc/ordtree/tree"
)

func TestNewScope(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := scope.New(nil, nil, tree.SelfBalancing)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	_, err = scope.New(logger.New(logCategory), nil, tree.Variant(99))
	assert.Equal(t, fault.ErrInvalidVariant, err, "bad variant")

	global, err := scope.New(logger.New(logCategory), nil, tree.SelfBalancing)
	assert.Nil(t, err, "wrong New")
	assert.Equal(t, 0, global.Depth())
	assert.Nil(t, global.Parent())

	inner, err := scope.New(logger.New(logCategory), global, tree.Unbalanced)
	assert.Nil(t, err, "wrong New")
	assert.Equal(t, 1, inner.Depth())
	assert.True(t, global == inner.Parent())
}

func TestDefineAndLookup(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	log := logger.New(logCategory)
	global, _ := scope.New(log, nil, tree.SelfBalancing)
	inner, _ := scope.New(log, global, tree.SelfBalancing)

	assert.Nil(t, global.Define("x", 1))
	assert.Nil(t, global.Define("y", 2))
	assert.Nil(t, inner.Define("x", 10))

	err := global.Define("x", 3)
	assert.Equal(t, fault.ErrSymbolExists, err, "redefine")

	v, ok := inner.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 10, v, "inner x hides outer x")

	v, ok = inner.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, 2, v, "y from enclosing scope")

	_, ok = inner.LookupLocal("y")
	assert.False(t, ok, "y is not local")

	_, ok = inner.Lookup("z")
	assert.False(t, ok, "z is undefined")

	assert.Equal(t, []string{"x", "y"}, global.Names())
	assert.Equal(t, 2, global.Len())
}

func TestShadowAndRemove(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	s, _ := scope.New(logger.New(logCategory), nil, tree.SelfBalancing)

	assert.Nil(t, s.Define("a", "first"))
	assert.Nil(t, s.Shadow("a", "second"))
	assert.Nil(t, s.Shadow("a", "third"))
	assert.Nil(t, s.Define("b", "other"))

	assert.Equal(t, 4, s.Len(), "shadowed bindings are counted")
	assert.Equal(t, []string{"a", "b"}, s.Names())

	bindings := s.Bindings()
	assert.Equal(t, 2, len(bindings))
	assert.Equal(t, "third", bindings[0].Value())
	assert.True(t, item.Intern("a") == bindings[0].Name(), "symbol not interned")

	expected := []interface{}{"third", "second", "first"}
	for i, e := range expected {
		v, ok := s.Lookup("a")
		assert.True(t, ok, "%d: lookup", i)
		assert.Equal(t, e, v, "%d: visible binding", i)
		assert.True(t, s.Remove("a"), "%d: remove", i)
	}

	_, ok := s.Lookup("a")
	assert.False(t, ok, "all bindings removed")
	assert.False(t, s.Remove("a"), "nothing left to remove")
	assert.Equal(t, 1, s.Len())
}

func TestAssign(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	log := logger.New(logCategory)
	global, _ := scope.New(log, nil, tree.Unbalanced)
	inner, _ := scope.New(log, global, tree.Unbalanced)

	assert.Nil(t, global.Define("counter", 0))
	assert.Nil(t, inner.Assign("counter", 5), "assign through inner scope")

	v, _ := global.LookupLocal("counter")
	assert.Equal(t, 5, v, "outer binding updated")

	err := inner.Assign("missing", 1)
	assert.Equal(t, fault.ErrUndefinedSymbol, err)
}

func TestClose(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	s, _ := scope.New(logger.New(logCategory), nil, tree.SelfBalancing)
	for _, name := range []string{"p", "q", "r"} {
		assert.Nil(t, s.Define(name, name))
	}
	s.Close()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{}, s.Names())
}

// one lock per scope serialises concurrent definitions
func TestConcurrentDefine(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	s, _ := scope.New(logger.New(logCategory), nil, tree.SelfBalancing)

	const workers = 8
	const names = 50

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w += 1 {
		go func() {
			for i := 0; i < names; i += 1 {
				_ = s.Shadow(item.NewInteger(int64(i)).String(), i)
			}
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*names, s.Len())
	assert.Equal(t, names, len(s.Names()))
}

func TestBindingCompare(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	s, _ := scope.New(logger.New(logCategory), nil, tree.SelfBalancing)
	assert.Nil(t, s.Define("m", 1))
	b := s.Bindings()[0]

	_, err := b.Compare(item.NewInteger(1))
	assert.True(t, fault.IsErrComparison(err), "binding with integer")
	assert.Equal(t, "m=1", b.String())
}
