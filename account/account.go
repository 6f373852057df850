// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
)

// Type - account type held in the two most significant bits of an id
type Type uint8

// enumeration of account types
const (
	RegularUpdatable  Type = iota // 00
	RegularImmutable  Type = iota // 01
	FungibleFaucet    Type = iota // 10
	NonFungibleFaucet Type = iota // 11
)

// String - name of the account type
func (t Type) String() string {
	switch t {
	case RegularUpdatable:
		return "regular"
	case RegularImmutable:
		return "immutable"
	case FungibleFaucet:
		return "fungible"
	case NonFungibleFaucet:
		return "nonfungible"
	default:
		return "unknown"
	}
}

// miscellaneous constants
const (
	checksumLength = 4
	idLength       = 8

	typeShift   = 62
	onChainFlag = uint64(1) << 61
	seedMask    = onChainFlag - 1
)

// Id - an account identifier, always a valid field element
type Id uint64

// NewId - build an id from its type, storage flag and remaining bits
//
// only the low 61 bits of seed are used
func NewId(accountType Type, onChain bool, seed uint64) (Id, error) {
	value := uint64(accountType&0x03)<<typeShift | seed&seedMask
	if onChain {
		value |= onChainFlag
	}
	id := Id(value)
	if !id.IsValid() {
		return 0, fault.ErrInvalidAccountId
	}
	return id, nil
}

// IsValid - id must be a canonical field element
func (id Id) IsValid() bool {
	return digest.Felt(id).IsValid()
}

// Type - the account type
func (id Id) Type() Type {
	return Type(uint64(id) >> typeShift)
}

// IsFaucet - true for either kind of faucet
func (id Id) IsFaucet() bool {
	t := id.Type()
	return FungibleFaucet == t || NonFungibleFaucet == t
}

// IsOnChain - true if the account state is public
func (id Id) IsOnChain() bool {
	return 0 != uint64(id)&onChainFlag
}

// Felt - the id as a field element
func (id Id) Felt() digest.Felt {
	return digest.Felt(id)
}

// Bytes - little endian binary form
func (id Id) Bytes() []byte {
	buffer := make([]byte, idLength)
	binary.LittleEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// String - base58 encoding of id followed by a checksum
func (id Id) String() string {
	buffer := id.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an id to its Base58 JSON form
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert Base58 JSON text to an id
func (id *Id) UnmarshalText(s []byte) error {
	a, err := IdFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// IdFromBase58 - decode and verify a Base58 encoded id
func IdFromBase58(encoded string) (Id, error) {
	decoded, err := base58.Decode(encoded)
	if nil != err || idLength+checksumLength != len(decoded) {
		return 0, fault.ErrCannotDecodeAccount
	}

	checksum := sha3.Sum256(decoded[:idLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[idLength:]) {
		return 0, fault.ErrChecksumMismatch
	}

	id := Id(binary.LittleEndian.Uint64(decoded[:idLength]))
	if !id.IsValid() {
		return 0, fault.ErrInvalidAccountId
	}
	return id, nil
}
