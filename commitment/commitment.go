// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment

import (
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/note"
)

// Committer - computes the commitments of a transaction
type Committer interface {
	OutputNotes(envelopes []note.Envelope) digest.Word
	InputNotes(inputs []InputNote) digest.Word
}

// InputNote - the part of a consumed note that enters the commitment
type InputNote struct {
	Nullifier  digest.Word `json:"nullifier"`
	ScriptRoot digest.Word `json:"scriptRoot"`
}

// Sequential - hashes the flattened list of words in one pass
type Sequential struct{}

// OutputNotes - commitment over (id, metadata) pairs
func (Sequential) OutputNotes(envelopes []note.Envelope) digest.Word {
	if 0 == len(envelopes) {
		return digest.Zero
	}

	words := make([]digest.Word, 0, 2*len(envelopes))
	for _, e := range envelopes {
		words = append(words, e.Id, e.Metadata.Word())
	}
	return digest.Hash(words...)
}

// InputNotes - commitment over (nullifier, script root) pairs
func (Sequential) InputNotes(inputs []InputNote) digest.Word {
	if 0 == len(inputs) {
		return digest.Zero
	}

	words := make([]digest.Word, 0, 2*len(inputs))
	for _, i := range inputs {
		words = append(words, i.Nullifier, i.ScriptRoot)
	}
	return digest.Hash(words...)
}
