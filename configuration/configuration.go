// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/tree"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultVariant    = "avl"
	defaultItems      = 1000
	defaultDeletions  = 800
	defaultKeyRange   = 10000
	defaultCheckEvery = 1
	defaultParallel   = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "treecheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// WorkloadType - the randomised operations to run
type WorkloadType struct {
	Variant    string `gluamapper:"variant" json:"variant"`
	Items      int    `gluamapper:"items" json:"items"`
	Deletions  int    `gluamapper:"deletions" json:"deletions"`
	KeyRange   int    `gluamapper:"key_range" json:"key_range"`
	Seed       int64  `gluamapper:"seed" json:"seed"`
	CheckEvery int    `gluamapper:"check_every" json:"check_every"`
	ByIdentity bool   `gluamapper:"by_identity" json:"by_identity"`
	Parallel   int    `gluamapper:"parallel" json:"parallel"`
}

// LoggerType - logging setup
type LoggerType struct {
	Directory string            `gluamapper:"directory" json:"directory"`
	File      string            `gluamapper:"file" json:"file"`
	Size      int               `gluamapper:"size" json:"size"`
	Count     int               `gluamapper:"count" json:"count"`
	Console   bool              `gluamapper:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" json:"levels"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	Workload      WorkloadType `gluamapper:"workload" json:"workload"`
	Logging       LoggerType   `gluamapper:"logging" json:"logging"`

	variant tree.Variant
}

// Default - configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Workload: WorkloadType{
			Variant:    defaultVariant,
			Items:      defaultItems,
			Deletions:  defaultDeletions,
			KeyRange:   defaultKeyRange,
			CheckEvery: defaultCheckEvery,
			Parallel:   defaultParallel,
		},
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	if err := options.Validate(); nil != err {
		return nil, err
	}
	return options, nil
}

// Validate - check values and expand the paths
func (options *Configuration) Validate() error {

	variant, err := tree.ParseVariant(options.Workload.Variant)
	if nil != err {
		return err
	}
	options.variant = variant

	w := &options.Workload
	if w.Items <= 0 || w.Deletions < 0 || w.Deletions > w.Items || w.CheckEvery < 0 || w.Parallel < 1 {
		return fault.ErrInvalidCount
	}
	if w.KeyRange <= 0 {
		return fault.ErrInvalidKeyRange
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	}
	options.DataDirectory, err = filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return err
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("file: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}
	return nil
}

// Variant - the tree variant selected by the workload
func (options *Configuration) Variant() tree.Variant {
	return options.variant
}

// LoggerConfiguration - convert to the logger's own setup structure
func (options *Configuration) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
