// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped into classes so that callers can decide whether a failure
// is fatal to their own operation, e.g. a comparison failure between
// values of different domains is a ComparisonError.
package fault
