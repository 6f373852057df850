// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
)

// Validator - the asset validation service
//
// must return fault.ErrAssetInvalid for any asset it rejects
type Validator interface {
	ValidateAsset(a Asset) error
}

// StandardValidator - checks the fungible and non-fungible layouts
type StandardValidator struct{}

// ValidateAsset - accept a well formed asset
func (StandardValidator) ValidateAsset(a Asset) error {
	if !digest.Word(a).IsValid() {
		return fault.ErrAssetInvalid
	}

	if a.IsFungible() {
		if 0 != a[1] || 0 != a[2] {
			return fault.ErrAssetInvalid
		}
		if uint64(a[fungibleAmountIndex]) > MaxFungibleAmount {
			return fault.ErrAssetInvalid
		}
		return nil
	}

	faucet := account.Id(a[nonFungibleFaucetIndex])
	if account.NonFungibleFaucet != faucet.Type() {
		return fault.ErrAssetInvalid
	}

	// NewNonFungible always clears this bit
	if 0 != uint64(a[fungibleFaucetIndex])&nonFungibleClearedBit {
		return fault.ErrAssetInvalid
	}
	return nil
}
