// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/constants"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// CreateNote - register a new output note and return its slot
//
// checks run in order: asset, type and tag, slot ceiling; a failure
// in any of them leaves the context untouched
func (ctx *Context) CreateNote(a asset.Asset, tag note.Tag, noteType note.NoteType, recipient digest.Word) (uint64, error) {
	if ctx.aborted {
		return 0, fault.ErrTransactionAborted
	}

	if err := ctx.assets.ValidateAsset(a); nil != err {
		ctx.log.Warnf("create note: asset: %s  error: %s", a, err)
		return 0, err
	}

	if err := note.Validate(noteType, tag); nil != err {
		ctx.log.Warnf("create note: type: %s  tag: %s  error: %s", noteType, tag, err)
		return 0, err
	}

	slot, err := ctx.allocateNextSlot()
	if nil != err {
		return 0, err
	}

	metadata := note.Metadata{
		Sender: ctx.identity.CurrentAccountId(),
		Type:   noteType,
		Tag:    tag,
		Aux:    0,
	}

	if err := ctx.announce(slot, metadata); nil != err {
		ctx.abort(err)
		return 0, err
	}

	if err := ctx.populate(slot, metadata, a, recipient); nil != err {
		ctx.abort(err)
		return 0, err
	}

	ctx.log.Debugf("created note: slot: %d  sender: %s  type: %s  tag: %s", slot, metadata.Sender, noteType, tag)

	return slot, nil
}

// emit the creation event before the payload is written
func (ctx *Context) announce(slot uint64, metadata note.Metadata) error {
	return ctx.sink.NoteCreated(note.Created{
		Slot:     slot,
		Metadata: metadata,
	})
}

// write the payload into the slot returned by the allocator
func (ctx *Context) populate(slot uint64, metadata note.Metadata, a asset.Asset, recipient digest.Word) error {
	if uint64(len(ctx.notes)) != slot {
		ctx.log.Criticalf("populate: slot: %d  arena length: %d", slot, len(ctx.notes))
		return fault.ErrSlotOutOfSequence
	}

	r := &note.Record{Slot: slot}
	r.Metadata = metadata
	r.AssetCount = constants.AssetsPerNote
	r.Asset = a
	r.Recipient = recipient

	ctx.notes = append(ctx.notes, r)
	return nil
}
