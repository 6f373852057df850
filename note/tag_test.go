// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package note_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

func TestTagAccessors(t *testing.T) {
	items := []struct {
		tag      note.Tag
		high     uint32
		low      uint32
		reserved uint8
		prefix   uint8
	}{
		{0x00000000_00000000, 0x00000000, 0x00000000, 0, 0},
		{0x00000000_40000000, 0x00000000, 0x40000000, 0, 1},
		{0x00000000_80000000, 0x00000000, 0x80000000, 0, 2},
		{0x00000000_c0000000, 0x00000000, 0xc0000000, 0, 3},
		{0x40000000_00000000, 0x40000000, 0x00000000, 1, 0},
		{0x80000000_00000000, 0x80000000, 0x00000000, 2, 0},
		{0x3fffffff_3fffffff, 0x3fffffff, 0x3fffffff, 0, 0},
		{0xc0000001_c0000002, 0xc0000001, 0xc0000002, 3, 3},
	}

	for i, item := range items {
		assert.Equal(t, item.high, item.tag.High(), "%d: high", i)
		assert.Equal(t, item.low, item.tag.Low(), "%d: low", i)
		assert.Equal(t, item.reserved, item.tag.ReservedBits(), "%d: reserved", i)
		assert.Equal(t, item.prefix, item.tag.Prefix(), "%d: prefix", i)
		assert.Equal(t, item.tag, note.NewTag(item.high, item.low), "%d: new tag", i)
	}
}

func TestValidate(t *testing.T) {
	items := []struct {
		name     string
		noteType note.NoteType
		tag      note.Tag
		err      error
	}{
		{"public zero tag", note.Public, 0, nil},
		{"offchain zero tag", note.OffChain, 0, nil},
		{"routing bits", note.Public, 0x3fffffff_3fffffff, nil},
		{"encrypted", note.Encrypted, 0, fault.ErrInvalidNoteType},
		{"zero type", note.InvalidType, 0, fault.ErrInvalidNoteType},
		{"out of range type", note.NoteType(7), 0, fault.ErrInvalidNoteType},
		{"type checked before tag", note.Encrypted, 0xc0000000_c0000000, fault.ErrInvalidNoteType},
		{"reserved bit 62", note.Public, 0x40000000_00000000, fault.ErrTagHighBitsSet},
		{"reserved bit 63", note.OffChain, 0x80000000_00000000, fault.ErrTagHighBitsSet},
		{"reserved checked before prefix", note.Public, 0xc0000000_c0000000, fault.ErrTagHighBitsSet},
		{"prefix 01", note.Public, 0x4000_0000, fault.ErrTagPrefixMismatch},
		{"prefix 10 matching offchain encoding", note.OffChain, 0x8000_0000, fault.ErrTagPrefixMismatch},
		{"prefix 01 matching public encoding", note.Public, 0x4000_0000, fault.ErrTagPrefixMismatch},
		{"prefix 11", note.OffChain, 0xc000_0000, fault.ErrTagPrefixMismatch},
	}

	for _, item := range items {
		assert.Equal(t, item.err, note.Validate(item.noteType, item.tag), item.name)
	}
}

func TestTagFromAccount(t *testing.T) {
	ids := []account.Id{
		0,
		0x0000000000000042,
		0x8000000000001234,
		0xa0000000c000beef,
		0xc0000000ffffffff,
	}
	for i, id := range ids {
		tag := note.TagFromAccount(id)
		assert.Nil(t, note.Validate(note.Public, tag), "%d: tag: %s", i, tag)
		assert.Equal(t, uint64(id)&0x3fffffff_3fffffff, uint64(tag), "%d: routing bits", i)
	}
}

func TestParseTag(t *testing.T) {
	items := []struct {
		text string
		tag  note.Tag
		err  error
	}{
		{"0", 0, nil},
		{"0x4000_0000", 0x40000000, nil},
		{"0x00000001_00000002", 0x0000000100000002, nil},
		{"1234", 1234, nil},
		{"0xffffffff00000001", 0, fault.ErrInvalidNoteTag},
		{"tag", 0, fault.ErrInvalidNoteTag},
		{"", 0, fault.ErrInvalidNoteTag},
	}
	for i, item := range items {
		tag, err := note.ParseTag(item.text)
		assert.Equal(t, item.err, err, "%d: %q error", i, item.text)
		assert.Equal(t, item.tag, tag, "%d: %q value", i, item.text)
	}

	assert.Equal(t, "0x00000001_00000002", note.NewTag(1, 2).String(), "string")
}

func TestNoteTypeText(t *testing.T) {
	items := []struct {
		text     string
		noteType note.NoteType
		err      error
	}{
		{"public", note.Public, nil},
		{"OffChain", note.OffChain, nil},
		{"off-chain", note.OffChain, nil},
		{"encrypted", note.Encrypted, nil},
		{"secret", note.InvalidType, fault.ErrInvalidNoteType},
	}
	for _, item := range items {
		var noteType note.NoteType
		err := noteType.UnmarshalText([]byte(item.text))
		assert.Equal(t, item.err, err, item.text)
		assert.Equal(t, item.noteType, noteType, item.text)
	}

	assert.True(t, note.Public.IsSupported(), "public")
	assert.True(t, note.OffChain.IsSupported(), "offchain")
	assert.False(t, note.Encrypted.IsSupported(), "encrypted")
	assert.Equal(t, "invalid", note.NoteType(9).String(), "unknown name")
}
