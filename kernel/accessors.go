// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// BlockHash - hash of the reference block
func (ctx *Context) BlockHash() digest.Word {
	return ctx.blockHash
}

// BlockNumber - number of the reference block
func (ctx *Context) BlockNumber() uint32 {
	return ctx.blockNumber
}

// InputNotesCommitment - commitment over the consumed notes
func (ctx *Context) InputNotesCommitment() digest.Word {
	return ctx.committer.InputNotes(ctx.inputNotes)
}

// OutputNotesCommitment - commitment over the created notes in slot order
func (ctx *Context) OutputNotesCommitment() digest.Word {
	return ctx.committer.OutputNotes(ctx.envelopes())
}

// AccountId - the account executing the transaction
func (ctx *Context) AccountId() account.Id {
	return ctx.identity.CurrentAccountId()
}

// NoteCount - number of allocated slots
func (ctx *Context) NoteCount() uint64 {
	return ctx.counter.Uint64()
}

// Note - the record stored at a slot
func (ctx *Context) Note(slot uint64) (note.Record, error) {
	if slot >= uint64(len(ctx.notes)) {
		return note.Record{}, fault.ErrNoteNotFound
	}
	return *ctx.notes[slot], nil
}

// Notes - copy of all records in slot order
func (ctx *Context) Notes() []note.Record {
	records := make([]note.Record, len(ctx.notes))
	for i, r := range ctx.notes {
		records[i] = *r
	}
	return records
}

// Aborted - true once a failure after allocation poisoned the context
func (ctx *Context) Aborted() bool {
	return ctx.aborted
}

func (ctx *Context) envelopes() []note.Envelope {
	envelopes := make([]note.Envelope, len(ctx.notes))
	for i, r := range ctx.notes {
		envelopes[i] = r.Envelope()
	}
	return envelopes
}
