// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/configuration"
	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/tree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--print] [--json] [--config=FILE]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	verbose := len(options["verbose"]) > 0

	var config *configuration.Configuration
	if len(options["config"]) > 0 {
		config, err = configuration.GetConfiguration(options["config"][0])
	} else {
		config = configuration.Default()
		err = config.Validate()
	}
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}
	if verbose {
		config.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(config.LoggerConfiguration()); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	results, err := runParallel(log, config.Workload, config.Variant())
	if nil != err {
		exitwithstatus.Message("%s: workload failed: %s", program, err)
	}

	if len(options["print"]) > 0 {
		depth := results[0].tree.Print(os.Stdout, verbose)
		fmt.Printf("depth: %d\n", depth)
	}

	reports := make([]*report, len(results))
	for i, r := range results {
		reports[i] = r.report
	}

	if len(options["json"]) > 0 {
		b, err := json.MarshalIndent(reports, "", "  ")
		if nil != err {
			exitwithstatus.Message("%s: json error: %s", program, err)
		}
		fmt.Printf("%s\n", b)
	} else {
		for i, rpt := range reports {
			fmt.Printf("workload:   %d\n", i)
			fmt.Printf("variant:    %s  seed: %d\n", rpt.Variant, rpt.Seed)
			fmt.Printf("inserted:   %d  duplicates: %d\n", rpt.Inserted, rpt.Duplicates)
			fmt.Printf("deleted:    %d\n", rpt.Deleted)
			fmt.Printf("remaining:  %d items in %d elements, height: %d\n", rpt.Size, rpt.Elements, rpt.Height)
			fmt.Printf("checks:     %d\n", rpt.Checks)
		}
	}

	// process-wide totals across all workloads
	statistics := tree.ReadStatistics()
	if 0 == len(options["json"]) {
		fmt.Printf("rotations:  %d\n", statistics.Rotations)
	}
	log.Infof("statistics: %+v", statistics)
}
