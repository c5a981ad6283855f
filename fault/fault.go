// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ComparisonError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigurationFile    = InvalidError("configuration file did not return a table")
	ErrIncomparable         = ComparisonError("values are not comparable")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidKeyRange      = InvalidError("invalid key range")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidVariant       = InvalidError("invalid tree variant")
	ErrNilItem              = InvalidError("nil item")
	ErrNilScope             = InvalidError("nil scope")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrSymbolExists         = ExistsError("symbol already defined")
	ErrTreeCorrupt          = ProcessError("tree structure is corrupt")
	ErrUndefinedSymbol      = NotFoundError("undefined symbol")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ComparisonError) Error() string { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrComparison(e error) bool { var x ComparisonError; return errors.As(e, &x) }
func IsErrExists(e error) bool     { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool    { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool   { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool    { var x ProcessError; return errors.As(e, &x) }
