// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"crypto/rand"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/asset"
	"github.com/bitmark-inc/notekernel/commitment"
	"github.com/bitmark-inc/notekernel/constants"
	"github.com/bitmark-inc/notekernel/counter"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/fault"
	"github.com/bitmark-inc/notekernel/note"
)

// Parameters - everything a context needs from its environment
type Parameters struct {
	Assets    asset.Validator
	Identity  account.Identity
	Sink      EventSink
	Committer commitment.Committer

	BlockHash   digest.Word
	BlockNumber uint32
	InputNotes  []commitment.InputNote

	// lower ceiling for testing, zero selects constants.MaxCreatedNotes
	MaxNotes uint64

	// source of generated serial numbers, nil selects crypto/rand
	Random io.Reader
}

// Context - execution state of one transaction
type Context struct {
	log *logger.L

	maxNotes uint64
	counter  counter.Counter
	notes    []*note.Record

	assets    asset.Validator
	identity  account.Identity
	sink      EventSink
	committer commitment.Committer

	blockHash   digest.Word
	blockNumber uint32
	inputNotes  []commitment.InputNote

	random io.Reader

	aborted bool
}

// New - create a context for a transaction
func New(log *logger.L, parameters Parameters) (*Context, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	if nil == parameters.Assets || nil == parameters.Identity || nil == parameters.Sink || nil == parameters.Committer {
		log.Error("missing collaborator")
		return nil, fault.ErrMissingCollaborator
	}

	maxNotes := parameters.MaxNotes
	if 0 == maxNotes || maxNotes > constants.MaxCreatedNotes {
		maxNotes = constants.MaxCreatedNotes
	}

	if len(parameters.InputNotes) > constants.MaxInputNotes {
		log.Errorf("input notes: %d  exceeds: %d", len(parameters.InputNotes), constants.MaxInputNotes)
		return nil, fault.ErrTooManyInputNotes
	}

	inputs := make([]commitment.InputNote, len(parameters.InputNotes))
	copy(inputs, parameters.InputNotes)

	random := parameters.Random
	if nil == random {
		random = rand.Reader
	}

	ctx := &Context{
		log:         log,
		maxNotes:    maxNotes,
		notes:       make([]*note.Record, 0, 16),
		assets:      parameters.Assets,
		identity:    parameters.Identity,
		sink:        parameters.Sink,
		committer:   parameters.Committer,
		blockHash:   parameters.BlockHash,
		blockNumber: parameters.BlockNumber,
		inputNotes:  inputs,
		random:      random,
	}

	log.Debugf("new context: block: %d  max notes: %d  input notes: %d", ctx.blockNumber, maxNotes, len(inputs))

	return ctx, nil
}

// mark the context as unusable
func (ctx *Context) abort(err error) {
	ctx.aborted = true
	ctx.log.Warnf("transaction aborted: %s", err)
}
