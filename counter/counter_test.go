// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/notekernel/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}
}

// test the bounded increment stops at the limit
func TestIncrementBelow(t *testing.T) {

	const limit = 4

	var c1 counter.Counter

	for i := uint64(0); i < limit; i += 1 {
		n, ok := c1.IncrementBelow(limit)
		if !ok {
			t.Fatalf("%d: increment refused below limit", i)
		}
		if i != n {
			t.Errorf("%d: returned: %d  expected previous value: %d", i, n, i)
		}
	}

	n, ok := c1.IncrementBelow(limit)
	if ok {
		t.Errorf("increment allowed at limit")
	}
	if limit != n {
		t.Errorf("returned: %d  expected: %d", n, limit)
	}
	if limit != c1.Uint64() {
		t.Errorf("counter modified by refused increment: %d", c1.Uint64())
	}
}

// a zero limit never allows an increment
func TestIncrementBelowZeroLimit(t *testing.T) {

	var c1 counter.Counter

	if _, ok := c1.IncrementBelow(0); ok {
		t.Errorf("increment allowed with zero limit")
	}
	if !c1.IsZero() {
		t.Errorf("counter is not zero: %d", c1.Uint64())
	}
}

// concurrent callers can never push the counter past the limit
func TestIncrementBelowConcurrent(t *testing.T) {

	const (
		limit   = 100
		workers = 8
		tries   = 50
	)

	var c1 counter.Counter
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[uint64]bool)

	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < tries; i += 1 {
				n, ok := c1.IncrementBelow(limit)
				if !ok {
					continue
				}
				mu.Lock()
				if seen[n] {
					t.Errorf("value: %d returned twice", n)
				}
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if limit != c1.Uint64() {
		t.Errorf("counter: %d  expected: %d", c1.Uint64(), limit)
	}
	if limit != len(seen) {
		t.Errorf("distinct values: %d  expected: %d", len(seen), limit)
	}
}
