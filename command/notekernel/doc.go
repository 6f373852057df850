// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// notekernel - execute a transaction described in a Lua configuration
// file, archive its output notes and inspect the archive
//
// commands:
//
//   execute  execute the configured transaction and archive the outputs
//   list     summaries of archived transactions
//   show     one archived transaction with its notes
//   tag      validate a note type and tag, or derive a tag from an account
//   account  create or decode an account id
//
// execute, list and show require --config
package main
