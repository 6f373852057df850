// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// kernel error codes
//
// these values are shared by every kernel implementation and must
// never be renumbered
const (
	CodeOutputNotesOverflow uint32 = 0x00020001
	CodeInvalidNoteType     uint32 = 0x00020002
	CodeTagPrefixMismatch   uint32 = 0x00020003
	CodeTagHighBitsSet      uint32 = 0x00020004
	CodeAssetInvalid        uint32 = 0x00020005
	CodeTransactionAborted  uint32 = 0x00020006
)

// Code - return the protocol error code for a kernel error
//
// second value is false for errors that have no protocol code
func Code(e error) (uint32, bool) {
	switch e {
	case ErrOutputNotesOverflow:
		return CodeOutputNotesOverflow, true
	case ErrInvalidNoteType:
		return CodeInvalidNoteType, true
	case ErrTagPrefixMismatch:
		return CodeTagPrefixMismatch, true
	case ErrTagHighBitsSet:
		return CodeTagHighBitsSet, true
	case ErrAssetInvalid:
		return CodeAssetInvalid, true
	case ErrTransactionAborted:
		return CodeTransactionAborted, true
	default:
		return 0, false
	}
}
