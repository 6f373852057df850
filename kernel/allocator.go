// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/bitmark-inc/notekernel/fault"
)

// reserve the next output note slot
//
// the counter is left unchanged when the ceiling is reached
func (ctx *Context) allocateNextSlot() (uint64, error) {
	slot, ok := ctx.counter.IncrementBelow(ctx.maxNotes)
	if !ok {
		ctx.log.Warnf("allocate slot: count: %d  limit: %d", slot, ctx.maxNotes)
		return 0, fault.ErrOutputNotesOverflow
	}

	ctx.log.Debugf("allocated slot: %d", slot)
	return slot, nil
}
