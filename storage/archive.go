// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/kernel"
	"github.com/bitmark-inc/notekernel/note"
)

const (
	slotLength    = 8
	summaryLength = 4 + digest.Length + 8 + 8 + digest.Length + digest.Length
)

// Summary - the transaction entry without its notes
type Summary struct {
	Key                   digest.Word `json:"key"`
	BlockNumber           uint32      `json:"blockNumber"`
	BlockHash             digest.Word `json:"blockHash"`
	Account               account.Id  `json:"account"`
	NoteCount             uint64      `json:"noteCount"`
	InputNotesCommitment  digest.Word `json:"inputNotesCommitment"`
	OutputNotesCommitment digest.Word `json:"outputNotesCommitment"`
}

// Key - identifies an executed transaction
//
//	hash([account, blockNumber, 0, 0], blockHash, inputs, outputs)
//
// the block reference stands where a transaction id has the account
// state hashes; the output notes commitment alone is not unique as
// every transaction without output notes commits to the zero word
func Key(outputs *kernel.Outputs) digest.Word {
	header := digest.Word{
		outputs.Account.Felt(),
		digest.Felt(outputs.BlockNumber),
	}
	return digest.Hash(header, outputs.BlockHash, outputs.InputNotesCommitment, outputs.OutputNotesCommitment)
}

// Archive - store the outputs of a transaction in one batch
func (s *Store) Archive(outputs *kernel.Outputs) (digest.Word, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return digest.Zero, fault.ErrNotInitialised
	}

	key := Key(outputs)
	txKey := key.Bytes()

	found, err := s.transactions.has(txKey)
	if nil != err {
		return digest.Zero, err
	}
	if found {
		return digest.Zero, fault.ErrTransactionExists
	}

	batch := new(leveldb.Batch)
	packedNotes := make([]note.Packed, 0, len(outputs.Notes))

	for i := range outputs.Notes {
		r := &outputs.Notes[i]
		if uint64(i) != r.Slot {
			s.log.Errorf("archive: %s  slot: %d  expected: %d", key, r.Slot, i)
			return digest.Zero, fault.ErrSlotOutOfSequence
		}
		packed, err := r.Pack()
		if nil != err {
			return digest.Zero, err
		}
		s.notes.put(batch, makeNoteKey(txKey, r.Slot), packed)
		packedNotes = append(packedNotes, packed)
	}

	summary := Summary{
		Key:                   key,
		BlockNumber:           outputs.BlockNumber,
		BlockHash:             outputs.BlockHash,
		Account:               outputs.Account,
		NoteCount:             uint64(len(outputs.Notes)),
		InputNotesCommitment:  outputs.InputNotesCommitment,
		OutputNotesCommitment: outputs.OutputNotesCommitment,
	}
	s.transactions.put(batch, txKey, packSummary(&summary))

	if err := s.db.Write(batch, nil); nil != err {
		s.log.Errorf("archive: %s  write error: %s", key, err)
		return digest.Zero, err
	}

	for slot, packed := range packedNotes {
		s.cache.put(txKey, uint64(slot), packed)
	}

	s.log.Infof("archived: %s  notes: %d", key, summary.NoteCount)
	return key, nil
}

// Delete - remove a transaction and its notes
func (s *Store) Delete(key digest.Word) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}

	txKey := key.Bytes()
	summary, err := s.summary(txKey)
	if nil != err {
		return err
	}

	batch := new(leveldb.Batch)
	for slot := uint64(0); slot < summary.NoteCount; slot += 1 {
		noteKey := makeNoteKey(txKey, slot)
		s.notes.delete(batch, noteKey)
	}
	s.transactions.delete(batch, txKey)

	if err := s.db.Write(batch, nil); nil != err {
		return err
	}

	s.cache.forget(txKey, summary.NoteCount)

	s.log.Infof("deleted: %s", key)
	return nil
}

// Transaction - read a transaction summary
func (s *Store) Transaction(key digest.Word) (*Summary, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}
	return s.summary(key.Bytes())
}

// Note - read one note of a transaction
func (s *Store) Note(key digest.Word, slot uint64) (*note.Record, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	txKey := key.Bytes()

	packed, found := s.cache.get(txKey, slot)
	if !found {
		value, err := s.notes.get(makeNoteKey(txKey, slot))
		if nil != err {
			return nil, err
		}
		if nil == value {
			return nil, fault.ErrNoteNotFound
		}
		packed = note.Packed(value)
		s.cache.put(txKey, slot, packed)
	}

	return packed.Unpack()
}

// Notes - read all notes of a transaction in slot order
func (s *Store) Notes(key digest.Word) ([]note.Record, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	elements, err := s.notes.fetch(key.Bytes())
	if nil != err {
		return nil, err
	}

	records := make([]note.Record, 0, len(elements))
	for _, e := range elements {
		r, err := note.Packed(e.Value).Unpack()
		if nil != err {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, nil
}

// Transactions - summaries of every archived transaction in key order
func (s *Store) Transactions() ([]Summary, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	elements, err := s.transactions.fetch(nil)
	if nil != err {
		return nil, err
	}

	summaries := make([]Summary, 0, len(elements))
	for _, e := range elements {
		summary, err := unpackSummary(e.Key, e.Value)
		if nil != err {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *Store) summary(txKey []byte) (*Summary, error) {
	value, err := s.transactions.get(txKey)
	if nil != err {
		return nil, err
	}
	if nil == value {
		return nil, fault.ErrTransactionNotFound
	}
	return unpackSummary(txKey, value)
}

func makeNoteKey(txKey []byte, slot uint64) []byte {
	key := make([]byte, len(txKey)+slotLength)
	copy(key, txKey)
	binary.BigEndian.PutUint64(key[len(txKey):], slot)
	return key
}

func packSummary(summary *Summary) []byte {
	buffer := make([]byte, 4, summaryLength)
	binary.BigEndian.PutUint32(buffer, summary.BlockNumber)
	buffer = append(buffer, summary.BlockHash.Bytes()...)
	buffer = append(buffer, summary.Account.Bytes()...)

	count := make([]byte, 8)
	binary.BigEndian.PutUint64(count, summary.NoteCount)
	buffer = append(buffer, count...)

	buffer = append(buffer, summary.InputNotesCommitment.Bytes()...)
	buffer = append(buffer, summary.OutputNotesCommitment.Bytes()...)
	return buffer
}

func unpackSummary(txKey []byte, buffer []byte) (*Summary, error) {
	if summaryLength != len(buffer) {
		return nil, fault.ErrRecordTruncated
	}

	summary := &Summary{}
	if err := digest.WordFromBytes(&summary.Key, txKey); nil != err {
		return nil, err
	}

	n := 0
	summary.BlockNumber = binary.BigEndian.Uint32(buffer[n:])
	n += 4

	if err := digest.WordFromBytes(&summary.BlockHash, buffer[n:n+digest.Length]); nil != err {
		return nil, err
	}
	n += digest.Length

	summary.Account = account.Id(binary.LittleEndian.Uint64(buffer[n:]))
	if !summary.Account.IsValid() {
		return nil, fault.ErrInvalidAccountId
	}
	n += 8

	summary.NoteCount = binary.BigEndian.Uint64(buffer[n:])
	n += 8

	if err := digest.WordFromBytes(&summary.InputNotesCommitment, buffer[n:n+digest.Length]); nil != err {
		return nil, err
	}
	n += digest.Length

	if err := digest.WordFromBytes(&summary.OutputNotesCommitment, buffer[n:n+digest.Length]); nil != err {
		return nil, err
	}

	return summary, nil
}
