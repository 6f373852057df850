// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notekernel/note"
)

// EventSink - receives one event per created note
//
// NoteCreated is called after the slot is allocated and before the
// payload is stored, so an implementation must not read the note back
// from the context; the payload is readable once CreateNote returns.
// A non-nil error aborts the transaction.
type EventSink interface {
	NoteCreated(event note.Created) error
}

// LogSink - write events to a logger channel
type LogSink struct {
	Log *logger.L
}

// NoteCreated - implement EventSink
func (s LogSink) NoteCreated(event note.Created) error {
	s.Log.Infof("note created: slot: %d  sender: %s  type: %s  tag: %s",
		event.Slot, event.Metadata.Sender, event.Metadata.Type, event.Metadata.Tag)
	return nil
}

// Sinks - deliver each event to every sink in order, stopping at the first error
type Sinks []EventSink

// NoteCreated - implement EventSink
func (s Sinks) NoteCreated(event note.Created) error {
	for _, sink := range s {
		if err := sink.NoteCreated(event); nil != err {
			return err
		}
	}
	return nil
}
