// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/notekernel/note"
)

const (
	noteExpiration = 2 * time.Minute
	noteCleanup    = 1 * time.Minute
)

// packed records recently archived or read, keyed by note key
type noteCache struct {
	items *cache.Cache
}

func newNoteCache() *noteCache {
	return &noteCache{
		items: cache.New(noteExpiration, noteCleanup),
	}
}

func (c *noteCache) get(txKey []byte, slot uint64) (note.Packed, bool) {
	item, found := c.items.Get(noteCacheKey(txKey, slot))
	if !found {
		return nil, false
	}
	return item.(note.Packed), true
}

func (c *noteCache) put(txKey []byte, slot uint64, packed note.Packed) {
	c.items.Set(noteCacheKey(txKey, slot), packed, cache.DefaultExpiration)
}

// drop the first count slots of a transaction
func (c *noteCache) forget(txKey []byte, count uint64) {
	for slot := uint64(0); slot < count; slot += 1 {
		c.items.Delete(noteCacheKey(txKey, slot))
	}
}

func (c *noteCache) flush() {
	c.items.Flush()
}

func noteCacheKey(txKey []byte, slot uint64) string {
	return hex.EncodeToString(makeNoteKey(txKey, slot))
}
