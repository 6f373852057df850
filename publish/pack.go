// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/constants"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// Topic - the subscription prefix of note events
const Topic = "note"

// PayloadLength - size of a packed event
const PayloadLength = 4 + 8 + 1 + 8 + 8 + 8

// Pack - topic and payload of an event
func Pack(event note.Created) (string, []byte) {
	m := event.Metadata

	payload := make([]byte, PayloadLength)
	binary.LittleEndian.PutUint32(payload[0:], constants.NoteCreatedEvent)
	binary.LittleEndian.PutUint64(payload[4:], uint64(m.Aux))
	payload[12] = byte(m.Type)
	binary.LittleEndian.PutUint64(payload[13:], uint64(m.Sender))
	binary.LittleEndian.PutUint64(payload[21:], uint64(m.Tag))
	binary.LittleEndian.PutUint64(payload[29:], event.Slot)

	return Topic, payload
}

// Unpack - decode a payload received by a subscriber
func Unpack(payload []byte) (note.Created, error) {
	if PayloadLength != len(payload) {
		return note.Created{}, fault.ErrRecordTruncated
	}
	if constants.NoteCreatedEvent != binary.LittleEndian.Uint32(payload[0:]) {
		return note.Created{}, fault.ErrInvalidEventCode
	}

	event := note.Created{
		Slot: binary.LittleEndian.Uint64(payload[29:]),
		Metadata: note.Metadata{
			Aux:    digest.Felt(binary.LittleEndian.Uint64(payload[4:])),
			Type:   note.NoteType(payload[12]),
			Sender: account.Id(binary.LittleEndian.Uint64(payload[13:])),
			Tag:    note.Tag(binary.LittleEndian.Uint64(payload[21:])),
		},
	}

	m := &event.Metadata
	if !m.Sender.IsValid() {
		return note.Created{}, fault.ErrInvalidAccountId
	}
	if !m.Aux.IsValid() {
		return note.Created{}, fault.ErrInvalidFieldElement
	}
	if err := note.Validate(m.Type, m.Tag); nil != err {
		return note.Created{}, err
	}
	return event, nil
}
