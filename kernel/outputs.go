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

// Outputs - the results a proven transaction carries
type Outputs struct {
	Account               account.Id    `json:"account"`
	BlockHash             digest.Word   `json:"blockHash"`
	BlockNumber           uint32        `json:"blockNumber"`
	InputNotesCommitment  digest.Word   `json:"inputNotesCommitment"`
	OutputNotesCommitment digest.Word   `json:"outputNotesCommitment"`
	Notes                 []note.Record `json:"notes"`
}

// Outputs - collect the outputs of a completed execution
func (ctx *Context) Outputs() (*Outputs, error) {
	if ctx.aborted {
		return nil, fault.ErrTransactionAborted
	}

	return &Outputs{
		Account:               ctx.AccountId(),
		BlockHash:             ctx.blockHash,
		BlockNumber:           ctx.blockNumber,
		InputNotesCommitment:  ctx.InputNotesCommitment(),
		OutputNotesCommitment: ctx.OutputNotesCommitment(),
		Notes:                 ctx.Notes(),
	}, nil
}
