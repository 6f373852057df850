// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// internal constants
const (
	defaultQueueSize = 1000
	noteCreatedFrom  = "note"
)

// Message - an item on the queue and the component that sent it
type Message struct {
	From string
	Item interface{}
}

// Queue - buffered queue that never blocks the sender
type Queue struct {
	sync.Mutex
	queue  chan Message
	closed bool
}

// New - create a queue, a size of zero selects the default
func New(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		queue: make(chan Message, size),
	}
}

// Send - data to queue
func (q *Queue) Send(from string, item interface{}) error {
	q.Lock()
	defer q.Unlock()

	if q.closed {
		return fault.ErrQueueClosed
	}

	select {
	case q.queue <- Message{From: from, Item: item}:
		return nil
	default:
		return fault.ErrQueueFull
	}
}

// NoteCreated - queue a note creation event
func (q *Queue) NoteCreated(event note.Created) error {
	return q.Send(noteCreatedFrom, event)
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.queue
}

// Release - close the channel, pending messages can still be read
func (q *Queue) Release() {
	q.Lock()
	defer q.Unlock()

	if !q.closed {
		q.closed = true
		close(q.queue)
	}
}
