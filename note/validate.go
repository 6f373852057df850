// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"github.com/bitmark-inc/notekernel/fault"
)

// Validate - check a note type and tag are acceptable together
//
// the prefix must be zero whatever the type; it is not compared with
// the type's own encoding
func Validate(noteType NoteType, tag Tag) error {
	if !noteType.IsSupported() {
		return fault.ErrInvalidNoteType
	}
	if 0 != tag.ReservedBits() {
		return fault.ErrTagHighBitsSet
	}
	if 0 != tag.Prefix() {
		return fault.ErrTagPrefixMismatch
	}
	return nil
}
