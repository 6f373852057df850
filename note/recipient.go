// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/constants"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
)

// script roots of the standard notes
var (
	PayToIdScript       = scriptRoot("P2ID")
	PayToIdRecallScript = scriptRoot("P2IDR")
	SwapScript          = scriptRoot("SWAP")
)

// number of elements absorbed per hash block
const inputsBlockSize = 2 * digest.WordSize

// NewRecipient - the recipient of a note consumed by scriptRoot
//
//	recipient = hash(hash(serial, scriptRoot), inputsCommitment)
func NewRecipient(serial digest.Word, scriptRoot digest.Word, inputs []digest.Felt) (digest.Word, error) {
	if !serial.IsValid() || !scriptRoot.IsValid() {
		return digest.Zero, fault.ErrInvalidFieldElement
	}
	commitment, err := InputsCommitment(inputs)
	if nil != err {
		return digest.Zero, err
	}
	return digest.Hash(digest.Hash(serial, scriptRoot), commitment), nil
}

// InputsCommitment - hash of the note inputs
//
// the inputs are padded with zeros to a multiple of two words, the
// same padding the asset commitment uses
func InputsCommitment(inputs []digest.Felt) (digest.Word, error) {
	if len(inputs) > constants.MaxInputsPerNote {
		return digest.Zero, fault.ErrTooManyNoteInputs
	}

	blocks := (len(inputs) + inputsBlockSize - 1) / inputsBlockSize
	if 0 == blocks {
		blocks = 1
	}
	words := make([]digest.Word, 2*blocks)
	for i, f := range inputs {
		if !f.IsValid() {
			return digest.Zero, fault.ErrInvalidFieldElement
		}
		words[i/digest.WordSize][i%digest.WordSize] = f
	}
	return digest.Hash(words...), nil
}

// PayToIdRecipient - recipient of a note only target can consume
func PayToIdRecipient(serial digest.Word, target account.Id) (digest.Word, error) {
	if !target.IsValid() {
		return digest.Zero, fault.ErrInvalidAccountId
	}
	inputs := []digest.Felt{target.Felt(), 0, 0, 0}
	return NewRecipient(serial, PayToIdScript, inputs)
}

// PayToIdRecallRecipient - as PayToIdRecipient, the sender can reclaim
// the note from block recallHeight
func PayToIdRecallRecipient(serial digest.Word, target account.Id, recallHeight uint32) (digest.Word, error) {
	if !target.IsValid() {
		return digest.Zero, fault.ErrInvalidAccountId
	}
	inputs := []digest.Felt{target.Felt(), digest.Felt(recallHeight), 0, 0}
	return NewRecipient(serial, PayToIdRecallScript, inputs)
}

// SwapRecipient - recipient of a note that any account can consume by
// paying requested back to sender through a note with paybackRecipient
func SwapRecipient(serial digest.Word, paybackRecipient digest.Word, requested asset.Asset, sender account.Id) (digest.Word, error) {
	if !sender.IsValid() {
		return digest.Zero, fault.ErrInvalidAccountId
	}
	r := requested.Word()
	inputs := []digest.Felt{
		paybackRecipient[0], paybackRecipient[1], paybackRecipient[2], paybackRecipient[3],
		r[0], r[1], r[2], r[3],
		sender.Felt(), 0, 0, 0,
	}
	return NewRecipient(serial, SwapScript, inputs)
}

// fixed root for a named script: the name packed little endian into
// the first element and hashed
func scriptRoot(name string) digest.Word {
	var f uint64
	for i := len(name) - 1; i >= 0; i -= 1 {
		f = f<<8 | uint64(name[i])
	}
	return digest.Hash(digest.Word{digest.Felt(f)})
}
