// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/background"
	"github.com/bitmark-inc/ordtree/configuration"
	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/item"
	"github.com/bitmark-inc/ordtree/tree"
)

// summary of a workload run
type report struct {
	Seed       int64           `json:"seed"`
	Variant    string          `json:"variant"`
	Inserted   int             `json:"inserted"`
	Duplicates int             `json:"duplicates"`
	Deleted    int             `json:"deleted"`
	Checks     int             `json:"checks"`
	Size       int             `json:"size"`
	Elements   int             `json:"elements"`
	Height     int             `json:"height"`
	Statistics tree.Statistics `json:"statistics"`
}

// periodic verification
type checker struct {
	log   *logger.L
	tree  *tree.Tree
	every int
	count int
}

func (c *checker) step(operation string, n int) error {
	if 0 == c.every || 0 != n%c.every {
		return nil
	}
	c.count += 1
	if err := c.tree.Check(); nil != err {
		c.log.Criticalf("%s: step: %d  check failed: %s", operation, n, err)
		return err
	}
	return nil
}

// insert random integers then delete a random selection of them,
// verifying the tree as configured
func runWorkload(log *logger.L, w configuration.WorkloadType, variant tree.Variant) (*tree.Tree, *report, error) {

	seed := w.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("seed: %d  variant: %s  items: %d  deletions: %d", seed, variant, w.Items, w.Deletions)

	r := rand.New(rand.NewSource(seed))
	tr := tree.New(variant, tree.WithRandom(r))
	c := &checker{
		log:   log,
		tree:  tr,
		every: w.CheckEvery,
	}
	rpt := &report{
		Seed:    seed,
		Variant: variant.String(),
	}

	values := make([]*item.Integer, w.Items)
	for i := range values {
		values[i] = item.NewInteger(int64(r.Intn(w.KeyRange)))
		e, err := tr.Insert(values[i])
		if nil != err {
			return nil, nil, err
		}
		if e.Len() > 1 {
			rpt.Duplicates += 1
		}
		rpt.Inserted += 1
		if err := c.step("insert", i+1); nil != err {
			return nil, nil, err
		}
	}
	log.Infof("inserted: %d  duplicates: %d  elements: %d  height: %d", rpt.Inserted, rpt.Duplicates, tr.Count(), tr.Height())

	for i, j := range r.Perm(w.Items)[:w.Deletions] {
		removed, err := tr.Delete(values[j], w.ByIdentity)
		if nil != err {
			return nil, nil, err
		}
		if !removed {
			log.Criticalf("delete: %s  not found", values[j])
			return nil, nil, fmt.Errorf("%w: inserted value: %s not found", fault.ErrTreeCorrupt, values[j])
		}
		rpt.Deleted += 1
		if err := c.step("delete", i+1); nil != err {
			return nil, nil, err
		}
	}
	log.Infof("deleted: %d", rpt.Deleted)

	if w.Items-w.Deletions != tr.Size() {
		return nil, nil, fmt.Errorf("%w: size: %d  expected: %d", fault.ErrTreeCorrupt, tr.Size(), w.Items-w.Deletions)
	}

	// always finish with a full check
	c.count += 1
	if err := tr.Check(); nil != err {
		log.Criticalf("final check failed: %s", err)
		return nil, nil, err
	}

	rpt.Checks = c.count
	rpt.Size = tr.Size()
	rpt.Elements = tr.Count()
	rpt.Height = tr.Height()
	rpt.Statistics = tree.ReadStatistics()
	return tr, rpt, nil
}

// outcome of one concurrent workload
type result struct {
	n      int
	tree   *tree.Tree
	report *report
	err    error
}

// shared by all workers
type workerArgs struct {
	log     *logger.L
	w       configuration.WorkloadType
	variant tree.Variant
}

// each worker owns its tree; the result is sent before waiting for shutdown
func worker(n int, results chan<- result) background.Process {
	return func(args interface{}, shutdown <-chan struct{}, done chan<- struct{}) {
		defer close(done)

		a := args.(*workerArgs)
		w := a.w
		w.Seed += int64(n)
		tr, rpt, err := runWorkload(a.log, w, a.variant)
		results <- result{
			n:      n,
			tree:   tr,
			report: rpt,
			err:    err,
		}
		<-shutdown
	}
}

// run w.Parallel independent workloads, seeded from w.Seed upwards
func runParallel(log *logger.L, w configuration.WorkloadType, variant tree.Variant) ([]result, error) {

	if 0 == w.Seed {
		w.Seed = time.Now().UnixNano()
	}
	if w.Parallel < 1 {
		w.Parallel = 1
	}

	results := make(chan result, w.Parallel)
	processes := make(background.Processes, w.Parallel)
	for i := range processes {
		processes[i] = worker(i, results)
	}

	log.Infof("starting: %d workloads", len(processes))
	b := background.Start(processes, &workerArgs{
		log:     log,
		w:       w,
		variant: variant,
	})

	all := make([]result, 0, len(processes))
	for i := 0; i < b.Len(); i += 1 {
		all = append(all, <-results)
	}
	b.Stop()

	sort.Slice(all, func(i, j int) bool {
		return all[i].n < all[j].n
	})

	for _, r := range all {
		if nil != r.err {
			log.Errorf("workload: %d  failed: %s", r.n, r.err)
			return nil, r.err
		}
	}
	return all, nil
}
