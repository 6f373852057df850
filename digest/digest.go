// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/notekernel/fault"
)

// Modulus - the field modulus 2^64 - 2^32 + 1
const Modulus uint64 = 0xffffffff00000001

// WordSize - number of field elements in a word
const WordSize = 4

// Length - number of bytes in the binary form of a word
const Length = WordSize * 8

// Felt - a single field element
type Felt uint64

// Word - four field elements
// stored as little endian elements
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
type Word [WordSize]Felt

// Zero - the all zero word
var Zero Word

// IsValid - true if the value is a canonical field element
func (f Felt) IsValid() bool {
	return uint64(f) < Modulus
}

// NewFelt - convert a uint64 to a field element
func NewFelt(value uint64) (Felt, error) {
	if value >= Modulus {
		return 0, fault.ErrInvalidFieldElement
	}
	return Felt(value), nil
}

// IsValid - true if all elements are canonical
func (w Word) IsValid() bool {
	for _, f := range w {
		if !f.IsValid() {
			return false
		}
	}
	return true
}

// IsZero - true for the all zero word
func (w Word) IsZero() bool {
	return w == Zero
}

// Bytes - little endian binary form
func (w Word) Bytes() []byte {
	buffer := make([]byte, Length)
	for i, f := range w {
		binary.LittleEndian.PutUint64(buffer[i*8:], uint64(f))
	}
	return buffer
}

// Hash - sequential hash of a list of words
//
// the words are concatenated in order and hashed with SHA3-256; each
// 8 byte limb of the result is reduced into the field so the result is
// itself a valid word
func Hash(words ...Word) Word {
	h := sha3.New256()
	for _, w := range words {
		h.Write(w.Bytes())
	}
	sum := h.Sum(nil)

	var result Word
	for i := range result {
		result[i] = Felt(binary.LittleEndian.Uint64(sum[i*8:]) % Modulus)
	}
	return result
}

// internal function to return a reversed byte order copy of a word
func reversed(w Word) []byte {
	b := w.Bytes()
	result := make([]byte, Length)
	for i := 0; i < Length; i += 1 {
		result[i] = b[Length-1-i]
	}
	return result
}

// String - convert a word to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (w Word) String() string {
	return hex.EncodeToString(reversed(w))
}

// GoString - convert a word to big endian hex string for use by the fmt package (for %#v)
func (w Word) GoString() string {
	return "<Word:" + hex.EncodeToString(reversed(w)) + ">"
}

// Scan - convert a big endian hex representation to a word for use by the format package scan routines
func (w *Word) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.ErrInvalidWordLength
	}

	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, token); nil != err {
		return err
	}
	for i, j := 0, Length-1; i < j; i, j = i+1, j-1 {
		buffer[i], buffer[j] = buffer[j], buffer[i]
	}
	return WordFromBytes(w, buffer)
}

// MarshalText - convert word to little endian hex text
func (w Word) MarshalText() ([]byte, error) {
	b := w.Bytes()
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a word
func (w *Word) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidWordLength
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return err
	}
	return WordFromBytes(w, buffer)
}

// WordFromBytes - convert and validate little endian binary byte slice to a word
func WordFromBytes(w *Word, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidWordLength
	}
	var result Word
	for i := range result {
		result[i] = Felt(binary.LittleEndian.Uint64(buffer[i*8:]))
		if !result[i].IsValid() {
			return fault.ErrInvalidFieldElement
		}
	}
	*w = result
	return nil
}
