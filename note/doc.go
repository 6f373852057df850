// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package note - output note types, tags and records
//
// A note is created with a type and a tag; Validate decides whether
// the pair is acceptable before the kernel allocates a slot for it.
package note
