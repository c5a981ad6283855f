// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// channels connecting one process to its handle
type control struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a set of running processes
type T struct {
	c []control
}

// Process - a background process must return only after shutdown is
// closed, closing done as it exits
type Process func(args interface{}, shutdown <-chan struct{}, done chan<- struct{})

// Processes - list of processes to start
type Processes []Process

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	t := &T{
		c: make([]control, len(processes)),
	}

	for i, p := range processes {
		t.c[i].shutdown = make(chan struct{})
		t.c[i].finished = make(chan struct{})
		go p(args, t.c[i].shutdown, t.c[i].finished)
	}
	return t
}

// Len - number of processes started
func (t *T) Len() int {
	return len(t.c)
}

// Stop - signal every process then wait for all of them to finish
func (t *T) Stop() {
	for _, c := range t.c {
		close(c.shutdown)
	}
	for _, c := range t.c {
		<-c.finished
	}
}
