// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"encoding/binary"
	"io"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// CreatePayToId - public note only the target account can consume
func (ctx *Context) CreatePayToId(a asset.Asset, target account.Id, serial digest.Word) (uint64, error) {
	if ctx.aborted {
		return 0, fault.ErrTransactionAborted
	}
	recipient, err := note.PayToIdRecipient(serial, target)
	if nil != err {
		return 0, err
	}
	return ctx.CreateNote(a, note.TagFromAccount(target), note.Public, recipient)
}

// CreatePayToIdRecall - pay to id note the sender can reclaim once the
// chain reaches recallHeight
func (ctx *Context) CreatePayToIdRecall(a asset.Asset, target account.Id, recallHeight uint32, serial digest.Word) (uint64, error) {
	if ctx.aborted {
		return 0, fault.ErrTransactionAborted
	}
	recipient, err := note.PayToIdRecallRecipient(serial, target, recallHeight)
	if nil != err {
		return 0, err
	}
	return ctx.CreateNote(a, note.TagFromAccount(target), note.Public, recipient)
}

// CreateSwap - public note offering one asset in exchange for another
//
// the consumer pays requested back to the sender with a pay to id note
// whose serial number is returned here so the sender can find it
func (ctx *Context) CreateSwap(offered asset.Asset, requested asset.Asset, serial digest.Word) (uint64, digest.Word, error) {
	if ctx.aborted {
		return 0, digest.Zero, fault.ErrTransactionAborted
	}

	if err := ctx.assets.ValidateAsset(requested); nil != err {
		ctx.log.Warnf("create swap: requested: %s  error: %s", requested, err)
		return 0, digest.Zero, err
	}

	paybackSerial, err := ctx.drawWord()
	if nil != err {
		return 0, digest.Zero, err
	}

	sender := ctx.identity.CurrentAccountId()
	payback, err := note.PayToIdRecipient(paybackSerial, sender)
	if nil != err {
		return 0, digest.Zero, err
	}
	recipient, err := note.SwapRecipient(serial, payback, requested, sender)
	if nil != err {
		return 0, digest.Zero, err
	}

	slot, err := ctx.CreateNote(offered, 0, note.Public, recipient)
	if nil != err {
		return 0, digest.Zero, err
	}
	return slot, paybackSerial, nil
}

// read a word of field elements from the random source
func (ctx *Context) drawWord() (digest.Word, error) {
	buffer := make([]byte, digest.Length)
	if _, err := io.ReadFull(ctx.random, buffer); nil != err {
		ctx.log.Errorf("random source error: %s", err)
		return digest.Zero, err
	}
	var w digest.Word
	for i := range w {
		w[i] = digest.Felt(binary.LittleEndian.Uint64(buffer[i*8:]) % digest.Modulus)
	}
	return w, nil
}
