// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
)

// Tag - routing value attached to a note
//
// a tag is a field element split into two 32 bit halves:
//
//	high bits 31..30  reserved, must be zero
//	high bits 29..0   routing data
//	low  bits 31..30  type prefix, must currently be zero
//	low  bits 29..0   routing data
type Tag uint64

const (
	halfShift    = 32
	halfMask     = 0xffffffff
	topBitsShift = 30
	topBitsMask  = 0x03

	// clears the reserved bits and the prefix
	routingMask = uint64(0x3fffffff3fffffff)
)

// NewTag - assemble a tag from its two halves
func NewTag(high uint32, low uint32) Tag {
	return Tag(uint64(high)<<halfShift | uint64(low))
}

// TagFromAccount - route a note to a target account
//
// the tag is the target id with the reserved bits and the prefix
// cleared, so it always passes Validate
func TagFromAccount(id account.Id) Tag {
	return Tag(uint64(id) & routingMask)
}

// High - bits 32..63
func (tag Tag) High() uint32 {
	return uint32(uint64(tag) >> halfShift)
}

// Low - bits 0..31
func (tag Tag) Low() uint32 {
	return uint32(uint64(tag) & halfMask)
}

// ReservedBits - the two most significant bits of the high half
func (tag Tag) ReservedBits() uint8 {
	return uint8(tag.High()>>topBitsShift) & topBitsMask
}

// Prefix - the two most significant bits of the low half
func (tag Tag) Prefix() uint8 {
	return uint8(tag.Low()>>topBitsShift) & topBitsMask
}

// Felt - the tag as a field element
func (tag Tag) Felt() digest.Felt {
	return digest.Felt(tag)
}

// String - hex with separated halves
func (tag Tag) String() string {
	return fmt.Sprintf("0x%08x_%08x", tag.High(), tag.Low())
}

// MarshalText - same as String
func (tag Tag) MarshalText() ([]byte, error) {
	return []byte(tag.String()), nil
}

// UnmarshalText - accept decimal, 0x hex and '_' separators
func (tag *Tag) UnmarshalText(s []byte) error {
	t, err := ParseTag(string(s))
	if nil != err {
		return err
	}
	*tag = t
	return nil
}

// ParseTag - convert text to a tag, the value must be a field element
func ParseTag(s string) (Tag, error) {
	value, err := strconv.ParseUint(s, 0, 64)
	if nil != err || !digest.Felt(value).IsValid() {
		return 0, fault.ErrInvalidNoteTag
	}
	return Tag(value), nil
}
