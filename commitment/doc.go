// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commitment folds the notes of a transaction into a single
// word.
//
// The output notes commitment is the hash of the sequence
// (id[0], metadata[0], id[1], metadata[1], ...) in slot order and the
// input notes commitment is the hash of (nullifier, script root) pairs.
// An empty list commits to the zero word.
package commitment
