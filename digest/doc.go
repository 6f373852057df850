// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - field elements, words and the sequential hash
//
// every value the kernel handles (assets, recipients, commitments) is
// a word of four field elements
package digest
