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

// MaxFungibleAmount - largest amount a fungible asset can hold
const MaxFungibleAmount = uint64(1)<<63 - 1

// layout of the asset word
//
//	fungible:     [amount, 0, 0, faucet]
//	non-fungible: [data0, faucet, data2, data3]
const (
	fungibleAmountIndex    = 0
	fungibleFaucetIndex    = 3
	nonFungibleFaucetIndex = 1

	// top bit of the last element of a non-fungible asset
	nonFungibleClearedBit = uint64(1) << 63
)

// Asset - an asset is a single word
type Asset digest.Word

// NewFungible - create a fungible asset issued by faucet
func NewFungible(faucet account.Id, amount uint64) (Asset, error) {
	if account.FungibleFaucet != faucet.Type() || amount > MaxFungibleAmount {
		return Asset{}, fault.ErrAssetInvalid
	}
	var a Asset
	a[fungibleAmountIndex] = digest.Felt(amount)
	a[fungibleFaucetIndex] = faucet.Felt()
	return a, nil
}

// NewNonFungible - create a non-fungible asset from a data commitment
//
// the second element of data is replaced by the faucet id and the top
// bit of the last element is cleared so it never reads as a fungible
// faucet
func NewNonFungible(faucet account.Id, data digest.Word) (Asset, error) {
	if account.NonFungibleFaucet != faucet.Type() || !data.IsValid() {
		return Asset{}, fault.ErrAssetInvalid
	}
	a := Asset(data)
	a[nonFungibleFaucetIndex] = faucet.Felt()
	a[fungibleFaucetIndex] &^= digest.Felt(nonFungibleClearedBit)
	return a, nil
}

// Word - the asset as a plain word
func (a Asset) Word() digest.Word {
	return digest.Word(a)
}

// IsFungible - true if the last element is a fungible faucet
func (a Asset) IsFungible() bool {
	return account.FungibleFaucet == account.Id(a[fungibleFaucetIndex]).Type()
}

// FaucetId - the issuing faucet
func (a Asset) FaucetId() account.Id {
	if a.IsFungible() {
		return account.Id(a[fungibleFaucetIndex])
	}
	return account.Id(a[nonFungibleFaucetIndex])
}

// Amount - the amount of a fungible asset, 1 for a non-fungible asset
func (a Asset) Amount() uint64 {
	if a.IsFungible() {
		return uint64(a[fungibleAmountIndex])
	}
	return 1
}

// String - big endian hex
func (a Asset) String() string {
	return digest.Word(a).String()
}

// MarshalText - little endian hex text
func (a Asset) MarshalText() ([]byte, error) {
	return digest.Word(a).MarshalText()
}

// UnmarshalText - little endian hex text
func (a *Asset) UnmarshalText(s []byte) error {
	return (*digest.Word)(a).UnmarshalText(s)
}
