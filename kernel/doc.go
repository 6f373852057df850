// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kernel registers the output notes created while a single
// transaction executes.
//
// A Context is created per transaction and is not safe for use by
// more than one goroutine. Each successful CreateNote allocates the
// next slot, announces the note to the event sink and then writes the
// note payload into the slot. Errors are the fault package values and
// are returned without wrapping so callers can compare them directly.
//
// If anything fails after a slot has been allocated the context is
// aborted; no rollback is attempted and every later call fails with
// fault.ErrTransactionAborted.
package kernel
