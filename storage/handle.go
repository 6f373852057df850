// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

type poolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

func newPool(prefix byte, db *leveldb.DB) *poolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &poolHandle{
		prefix:   prefix,
		limit:    limit,
		database: db,
	}
}

// prepend the prefix onto the key
func (p *poolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// queue a key/value bytes pair into a batch
func (p *poolHandle) put(batch *leveldb.Batch, key []byte, value []byte) {
	batch.Put(p.prefixKey(key), value)
}

// queue removal of a key into a batch
func (p *poolHandle) delete(batch *leveldb.Batch, key []byte) {
	batch.Delete(p.prefixKey(key))
}

// read a value for a given key
//
// returns nil if not found
func (p *poolHandle) get(key []byte) ([]byte, error) {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// check if a key exists
func (p *poolHandle) has(key []byte) (bool, error) {
	return p.database.Has(p.prefixKey(key), nil)
}

// fetch all elements whose key starts with the given bytes
//
// the prefix byte is stripped from the returned keys
func (p *poolHandle) fetch(keyPrefix []byte) ([]Element, error) {
	r := ldb_util.BytesPrefix(p.prefixKey(keyPrefix))
	if 0 == len(keyPrefix) {
		r = &ldb_util.Range{
			Start: []byte{p.prefix},
			Limit: p.limit,
		}
	}

	iter := p.database.NewIterator(r, nil)
	defer iter.Release()

	results := make([]Element, 0, 16)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	return results, iter.Error()
}
