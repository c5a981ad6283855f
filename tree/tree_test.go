// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/tree"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x tree.Item) (int, error) {
	other, ok := x.(stringItem)
	if !ok {
		return 0, fault.ErrIncomparable
	}
	return strings.Compare(s.s, other.s), nil
}

var variants = []tree.Variant{tree.Unbalanced, tree.SelfBalancing}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	for _, v := range variants {
		doList(t, v, addList)
		doTraverse(t, v, addList)
		doGet(t, v, addList)
	}
}

// to make sure that lots of duplicates do not increment the element
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"3630"}, {"1427"}, {"5843"}, {"9549"}, {"5433"},
		{"1274"}, {"9034"}, {"4724"}, {"6179"}, {"5072"},
		{"9272"}, {"4030"}, {"4205"}, {"3363"}, {"8582"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	for _, v := range variants {
		doList(t, v, addList)
		doTraverse(t, v, addList)
		doGet(t, v, addList)
	}
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
		{"4342"}, {"7958"}, {"7138"}, {"9382"}, {"0672"},
		{"5402"}, {"0204"}, {"2397"}, {"2712"}, {"0938"},
		{"9610"}, {"3611"}, {"2140"}, {"4289"}, {"9271"},
		{"4786"}, {"4145"}, {"1066"}, {"4366"}, {"6716"},
		{"8579"}, {"1012"}, {"5935"}, {"8278"}, {"5761"},
		{"1871"}, {"6257"}, {"2649"}, {"8643"}, {"1239"},
		{"3416"}, {"6146"}, {"7127"}, {"9517"}, {"5788"},
		{"9025"}, {"6880"}, {"9064"}, {"4849"}, {"4503"},
		{"4898"}, {"6815"}, {"8811"}, {"6745"}, {"6907"},
		{"7503"}, {"9869"}, {"5491"}, {"9940"}, {"5955"},
		{"3764"}, {"3254"}, {"8048"}, {"5339"}, {"2406"},
		{"3137"}, {"0251"}, {"0486"}, {"4202"}, {"1844"},
		{"1741"}, {"7154"}, {"4286"}, {"5160"}, {"9472"},
		{"2998"}, {"1935"}, {"4758"}, {"6478"}, {"9572"},
		{"9254"}, {"6848"}, {"3126"}, {"1848"}, {"7692"},
		{"2791"}, {"1504"}, {"3469"}, {"9701"}, {"5077"},
		{"7928"}, {"7978"}, {"5383"}, {"4319"}, {"8197"},
	}
	for _, v := range variants {
		doList(t, v, addList)
		doTraverse(t, v, addList)
		doGet(t, v, addList)
	}
}

// fail with a dump of the tree
func dumpAndFail(t *testing.T, tr *tree.Tree, format string, arguments ...interface{}) {
	buffer := &bytes.Buffer{}
	depth := tr.Print(buffer, true)
	t.Logf("tree:\n%s", buffer.String())
	t.Logf("depth: %d", depth)
	t.Fatalf(format, arguments...)
}

func doList(t *testing.T, variant tree.Variant, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		tr := tree.New(variant)
		for _, key := range addList {
			if _, err := tr.Insert(key); nil != err {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
		}

		if err := tr.Check(); nil != err {
			dumpAndFail(t, tr, "%s: add: inconsistent tree: %s", variant, err)
		}
		if len(addList) != tr.Size() {
			t.Fatalf("%s: size: %d  expected: %d", variant, tr.Size(), len(addList))
		}

		for _, key := range addList[:i] {
			removed, err := tr.Delete(key, false)
			if nil != err {
				t.Fatalf("%s: delete: %q  error: %s", variant, key, err)
			}
			if !removed {
				dumpAndFail(t, tr, "%s: delete: %q  not removed", variant, key)
			}
		}

		if err := tr.Check(); nil != err {
			dumpAndFail(t, tr, "%s: delete: inconsistent tree: %s", variant, err)
		}

		for _, key := range addList[i:] {
			removed, err := tr.Delete(key, false)
			if nil != err {
				t.Fatalf("%s: delete: %q  error: %s", variant, key, err)
			}
			if !removed {
				dumpAndFail(t, tr, "%s: delete: %q  not removed", variant, key)
			}
		}
		if !tr.IsEmpty() {
			dumpAndFail(t, tr, "%s: remainder: remaining elements", variant)
		}
		if 0 != tr.Size() {
			t.Fatalf("%s: remaining size not zero: %d", variant, tr.Size())
		}
	}
}

// sorted distinct keys of a list
func uniqueSorted(addList []stringItem) []string {
	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key.String()] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, variant tree.Variant, addList []stringItem) {

	tr := tree.New(variant)
	for _, key := range addList {
		tr.Insert(key)
	}
	expected := uniqueSorted(addList)

	p := tr.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if c, _ := p.Value().Compare(stringItem{expected[i]}); 0 != c {
			t.Fatalf("next item: actual: %q  expected: %q", p.Value(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tr.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if c, _ := p.Value().Compare(stringItem{expected[i]}); 0 != c {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Value(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tr.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tr.Count(), n)
	}

	// bucket expanded walk is the sorted input
	sorted := make([]string, len(addList))
	for i, key := range addList {
		sorted[i] = key.s
	}
	sort.Strings(sorted)
	walked := make([]string, 0, len(addList))
	tr.Walk(func(x tree.Item) bool {
		walked = append(walked, x.(stringItem).s)
		return true
	})
	if fmt.Sprint(sorted) != fmt.Sprint(walked) {
		t.Fatalf("walk: actual: %v  expected: %v", walked, sorted)
	}
}

// use indexing to fetch each element
func doGet(t *testing.T, variant tree.Variant, addList []stringItem) {

	tr := tree.New(variant)
	for _, key := range addList {
		tr.Insert(key)
	}
	expected := uniqueSorted(addList)

	if len(expected) != tr.Count() {
		t.Fatalf("expected: %d elements, but tree count: %d", len(expected), tr.Count())
	}

	for index, key := range expected {
		e := tr.Get(index)
		if nil == e {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if c, _ := e.Value().Compare(stringItem{key}); 0 != c {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, e.Value())
		}
		e1, index1, err := tr.Search(stringItem{key})
		if nil != err {
			t.Fatalf("[%d]: search: %q error: %s", index, key, err)
		}
		if e != e1 {
			t.Fatalf("[%d]: search: %q returned different element", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
	}

	if nil != tr.Get(-1) || nil != tr.Get(len(expected)) {
		t.Fatal("out of range index returned an element")
	}

	// delete even elements, all their duplicates too
	for index, key := range expected {
		if 0 == index%2 {
			for {
				removed, _ := tr.Delete(stringItem{key}, false)
				if !removed {
					break
				}
			}
		}
	}

	// check odd elements are all present
	for index, key := range expected {
		if 0 == index%2 {
			continue
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		e := tr.Get(index)
		if nil == e {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if c, _ := e.Value().Compare(stringItem{key}); 0 != c {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, e.Value())
		}
	}
	if !tr.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}
	if err := tr.Check(); nil != err {
		dumpAndFail(t, tr, "%s: inconsistent tree: %s", variant, err)
	}
}

func makeKey(r *rand.Rand) stringItem {
	return stringItem{fmt.Sprintf("%04d", r.Intn(10000))}
}

func TestRandomTree(t *testing.T) {
	r := rand.New(rand.NewSource(20201017))
	for _, v := range variants {
		randomTree(t, r, v, 2200, 2000)
		randomTree(t, r, v, 3400, 2760)
		randomTree(t, r, v, 5467, 1234)
	}
}

func randomTree(t *testing.T, r *rand.Rand, variant tree.Variant, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tr := tree.New(variant, tree.WithRandom(r))
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey(r)
		if i < len(d) {
			d[i] = key
		}
		tr.Insert(key)
	}

	if err := tr.Check(); nil != err {
		dumpAndFail(t, tr, "%s: inconsistent tree: %s", variant, err)
	}

	for i, key := range d {
		removed, err := tr.Delete(key, false)
		if nil != err || !removed {
			t.Fatalf("%s: delete: %q  removed: %v  error: %v", variant, key, removed, err)
		}
		if 0 == i%97 {
			if err := tr.Check(); nil != err {
				dumpAndFail(t, tr, "%s: inconsistent tree: %s", variant, err)
			}
		}
	}
	if total-toDelete != tr.Size() {
		t.Fatalf("%s: size: %d  expected: %d", variant, tr.Size(), total-toDelete)
	}

	// add back the test value
	testKey := stringItem{"500"}
	e, err := tr.Insert(testKey)
	if nil != err {
		t.Fatalf("insert error: %s", err)
	}

	if err := tr.Check(); nil != err {
		dumpAndFail(t, tr, "%s: inconsistent tree: %s", variant, err)
	}

	// check that test value is searchable
	tv, _, _ := tr.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if e != tv {
		t.Fatalf("insert and search returned different elements")
	}
	if testKey != tv.Value() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Value(), testKey)
	}

	// check iterators
	if nil == tv.Next() {
		t.Fatal("could not find next")
	}
	if nil == tv.Prev() {
		t.Fatal("could not find prev")
	}

	// delete the test value, and check it is no longer in the tree
	removed, err := tr.Delete(testKey, true)
	if nil != err || !removed {
		t.Fatalf("delete test key: removed: %v  error: %v", removed, err)
	}
	found, _ := tr.Find(testKey, false)
	if found {
		t.Fatalf("test key not deleted")
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tr := tree.New(tree.SelfBalancing)
	for _, key := range addList {
		tr.Insert(key)
	}

	if d := tr.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect element depth: %d", d)
	}

	if d := tr.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect element depth: %d", d)
	}
	if h := tr.Height(); h != 3 {
		t.Fatalf("incorrect height: %d", h)
	}
}

func TestChildrenAtDepth(t *testing.T) {
	addList := []stringItem{
		{"01"}, {"02"}, {"03"}, {"04"}, {"05"},
		{"06"}, {"07"},
	}

	tr := tree.New(tree.SelfBalancing)
	for _, key := range addList {
		tr.Insert(key)
	}

	if len(tr.Root().ChildrenAtDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tr.Root().ChildrenAtDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}

// sorted input degenerates an unbalanced tree into a list
func TestUnbalancedSortedInput(t *testing.T) {
	const n = 500
	tr := tree.New(tree.Unbalanced)
	for i := 0; i < n; i += 1 {
		tr.Insert(stringItem{fmt.Sprintf("%04d", i)})
	}
	if n != tr.Height() {
		t.Fatalf("height: %d  expected: %d", tr.Height(), n)
	}
	if err := tr.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}
	for i := n - 1; i >= 0; i -= 1 {
		removed, _ := tr.Delete(stringItem{fmt.Sprintf("%04d", i)}, false)
		if !removed {
			t.Fatalf("delete: %d failed", i)
		}
	}
	if !tr.IsEmpty() {
		t.Fatal("tree not empty")
	}
}

func TestPrint(t *testing.T) {
	tr := tree.New(tree.SelfBalancing)
	for _, s := range []string{"b", "a", "c", "a"} {
		tr.Insert(stringItem{s})
	}
	buffer := &bytes.Buffer{}
	depth := tr.Print(buffer, true)
	if tr.Height() != depth {
		t.Fatalf("depth: %d  expected: %d", depth, tr.Height())
	}
	expected := "       /------+ c ×1 ^b +0/[0,0]\n" +
		"|------+ b ×1 ^<nil> +0/[1,1]\n" +
		"       \\------+ a ×2 ^b +0/[0,0]\n"
	if expected != buffer.String() {
		t.Fatalf("print actual:\n%s\nexpected:\n%s", buffer.String(), expected)
	}
}
