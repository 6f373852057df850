// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// limits shared by every kernel implementation
const (
	// maximum number of notes a single transaction can create
	MaxCreatedNotes = 4096

	// maximum number of notes a single transaction can consume
	MaxInputNotes = 1023

	// a note currently carries exactly one asset
	AssetsPerNote = 1

	// maximum number of elements passed to a note script
	MaxInputsPerNote = 16
)

// event codes emitted by the kernel
const (
	NoteCreatedEvent uint32 = 0x0002000b
)
