// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/digest"
)

// Metadata - the public part of a note
type Metadata struct {
	Sender account.Id  `json:"sender"`
	Type   NoteType    `json:"type"`
	Tag    Tag         `json:"tag"`
	Aux    digest.Felt `json:"aux"`
}

// Word - metadata as committed: [tag, sender, type, aux]
func (m Metadata) Word() digest.Word {
	return digest.Word{
		m.Tag.Felt(),
		m.Sender.Felt(),
		digest.Felt(m.Type),
		m.Aux,
	}
}

// Created - payload of the note created event
//
// carries metadata only; the asset and recipient of the note at Slot
// are not readable when this is emitted
type Created struct {
	Slot     uint64   `json:"slot"`
	Metadata Metadata `json:"metadata"`
}
