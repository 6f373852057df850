// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"encoding/binary"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/constants"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
)

// Record - an output note created by a transaction
type Record struct {
	Slot       uint64      `json:"slot"`
	Metadata   Metadata    `json:"metadata"`
	AssetCount uint64      `json:"assetCount"`
	Asset      asset.Asset `json:"asset"`
	Recipient  digest.Word `json:"recipient"`
}

// Envelope - note id and metadata, the pair folded into the output
// notes commitment
type Envelope struct {
	Id       digest.Word `json:"id"`
	Metadata Metadata    `json:"metadata"`
}

// AssetCommitment - hash of the assets padded to an even number of words
func (r *Record) AssetCommitment() digest.Word {
	return digest.Hash(r.Asset.Word(), digest.Zero)
}

// Id - note id: hash(recipient, asset commitment)
func (r *Record) Id() digest.Word {
	return digest.Hash(r.Recipient, r.AssetCommitment())
}

// Envelope - id and metadata of this note
func (r *Record) Envelope() Envelope {
	return Envelope{
		Id:       r.Id(),
		Metadata: r.Metadata,
	}
}

// packed layout, all fields little endian
//
//	slot          8
//	sender        8
//	type          1
//	tag           8
//	aux           8
//	asset count   1
//	asset        32
//	recipient    32
const (
	PackedLength = 8 + 8 + 1 + 8 + 8 + 1 + digest.Length + digest.Length
)

// Packed - binary form of a record
type Packed []byte

// Pack - convert a record to its fixed width binary form
//
// rejects anything Unpack would not accept
func (r *Record) Pack() (Packed, error) {
	if constants.AssetsPerNote != r.AssetCount {
		return nil, fault.ErrUnsupportedAssetCount
	}
	if !r.Metadata.Sender.IsValid() {
		return nil, fault.ErrInvalidAccountId
	}
	if err := Validate(r.Metadata.Type, r.Metadata.Tag); nil != err {
		return nil, err
	}
	if !r.Metadata.Aux.IsValid() || !r.Asset.Word().IsValid() || !r.Recipient.IsValid() {
		return nil, fault.ErrInvalidFieldElement
	}

	buffer := make([]byte, 0, PackedLength)
	buffer = appendUint64(buffer, r.Slot)
	buffer = appendUint64(buffer, uint64(r.Metadata.Sender))
	buffer = append(buffer, byte(r.Metadata.Type))
	buffer = appendUint64(buffer, uint64(r.Metadata.Tag))
	buffer = appendUint64(buffer, uint64(r.Metadata.Aux))
	buffer = append(buffer, byte(r.AssetCount))
	buffer = append(buffer, r.Asset.Word().Bytes()...)
	buffer = append(buffer, r.Recipient.Bytes()...)
	return buffer, nil
}

// Unpack - convert the binary form back to a record
func (p Packed) Unpack() (*Record, error) {
	if len(p) < PackedLength {
		return nil, fault.ErrRecordTruncated
	}

	r := &Record{}
	n := 0

	r.Slot = binary.LittleEndian.Uint64(p[n:])
	n += 8

	sender := account.Id(binary.LittleEndian.Uint64(p[n:]))
	if !sender.IsValid() {
		return nil, fault.ErrInvalidAccountId
	}
	r.Metadata.Sender = sender
	n += 8

	r.Metadata.Type = NoteType(p[n])
	n += 1

	r.Metadata.Tag = Tag(binary.LittleEndian.Uint64(p[n:]))
	if err := Validate(r.Metadata.Type, r.Metadata.Tag); nil != err {
		return nil, err
	}
	n += 8

	r.Metadata.Aux = digest.Felt(binary.LittleEndian.Uint64(p[n:]))
	if !r.Metadata.Aux.IsValid() {
		return nil, fault.ErrInvalidFieldElement
	}
	n += 8

	r.AssetCount = uint64(p[n])
	if constants.AssetsPerNote != r.AssetCount {
		return nil, fault.ErrUnsupportedAssetCount
	}
	n += 1

	var w digest.Word
	if err := digest.WordFromBytes(&w, p[n:n+digest.Length]); nil != err {
		return nil, err
	}
	r.Asset = asset.Asset(w)
	n += digest.Length

	if err := digest.WordFromBytes(&r.Recipient, p[n:n+digest.Length]); nil != err {
		return nil, err
	}

	return r, nil
}

func appendUint64(buffer []byte, value uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, value)
	return append(buffer, b...)
}
