// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - runtime values that can be stored in a tree
//
// Values of the same kind are ordered by content; values of
// different kinds cannot be ordered and comparing them returns an
// error of the fault.ComparisonError class.
//
// Every constructor returns a new pointer, so two values with the
// same content are equal but not identical.  Symbols are the
// exception: Intern returns the same pointer for the same name.
package item
