// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk archive of executed transactions
//
// This maintains a LevelDB database split into pools. Each pool is
// defined by a prefix byte.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. txKey        = 32 byte word identifying an executed transaction
// 3. slot         = big endian uint64 (8 bytes)
// 4. block number = big endian uint32 (4 bytes)
//
// Transactions:
//
//   T ++ txKey                 - executed transactions
//                                data: block number ++ block hash ++ account ++ note count
//                                      ++ input notes commitment ++ output notes commitment
//
// Notes:
//
//   N ++ txKey ++ slot         - created output notes
//                                data: packed note record
//
// All entries of one transaction are written in a single batch.
package storage
