// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"strings"

	"github.com/bitmark-inc/notekernel/fault"
)

// NoteType - visibility of a note, the value is its 2 bit encoding
type NoteType uint8

// enumerate the note types
const (
	// zero is not a note type
	InvalidType = NoteType(0x00)

	Public    = NoteType(0x01) // details are published
	OffChain  = NoteType(0x02) // only the id and metadata are published
	Encrypted = NoteType(0x03) // reserved, always rejected by Validate
)

// String - lower case name of a note type
func (t NoteType) String() string {
	switch t {
	case Public:
		return "public"
	case OffChain:
		return "offchain"
	case Encrypted:
		return "encrypted"
	default:
		return "invalid"
	}
}

// IsSupported - true for the types a note can currently be created with
func (t NoteType) IsSupported() bool {
	return Public == t || OffChain == t
}

// MarshalText - name of the type
func (t NoteType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText - convert a name to a type
//
// encrypted is accepted here so it can reach the validator and be
// rejected there
func (t *NoteType) UnmarshalText(s []byte) error {
	switch strings.ToLower(string(s)) {
	case "public":
		*t = Public
	case "offchain", "off-chain":
		*t = OffChain
	case "encrypted":
		*t = Encrypted
	default:
		return fault.ErrInvalidNoteType
	}
	return nil
}
