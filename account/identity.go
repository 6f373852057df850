// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

// Identity - the account identity service
//
// reports the account the transaction is executing against
type Identity interface {
	CurrentAccountId() Id
}

// Fixed - identity for a transaction executed against a single known account
type Fixed Id

// CurrentAccountId - the fixed account
func (f Fixed) CurrentAccountId() Id {
	return Id(f)
}
