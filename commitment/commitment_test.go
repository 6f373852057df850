// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commitment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/commitment"
	"github.com/bitmark-inc/notekernel/digest"
	"github.com/bitmark-inc/notekernel/note"
)

func TestEmptyCommitments(t *testing.T) {
	c := commitment.Sequential{}
	assert.Equal(t, digest.Zero, c.OutputNotes(nil), "no outputs")
	assert.Equal(t, digest.Zero, c.InputNotes([]commitment.InputNote{}), "no inputs")
}

func TestOutputNotes(t *testing.T) {
	m0 := note.Metadata{Sender: account.Id(0x42), Type: note.Public, Tag: 7}
	m1 := note.Metadata{Sender: account.Id(0x42), Type: note.OffChain, Tag: 9}
	e0 := note.Envelope{Id: digest.Word{1, 2, 3, 4}, Metadata: m0}
	e1 := note.Envelope{Id: digest.Word{5, 6, 7, 8}, Metadata: m1}

	c := commitment.Sequential{}

	one := c.OutputNotes([]note.Envelope{e0})
	assert.Equal(t, digest.Hash(e0.Id, m0.Word()), one, "single note")

	two := c.OutputNotes([]note.Envelope{e0, e1})
	assert.Equal(t, digest.Hash(e0.Id, m0.Word(), e1.Id, m1.Word()), two, "two notes")

	swapped := c.OutputNotes([]note.Envelope{e1, e0})
	assert.NotEqual(t, two, swapped, "order matters")
}

func TestInputNotes(t *testing.T) {
	inputs := []commitment.InputNote{
		{Nullifier: digest.Word{1}, ScriptRoot: digest.Word{2}},
		{Nullifier: digest.Word{3}, ScriptRoot: digest.Word{4}},
	}

	c := commitment.Sequential{}
	expected := digest.Hash(digest.Word{1}, digest.Word{2}, digest.Word{3}, digest.Word{4})
	assert.Equal(t, expected, c.InputNotes(inputs), "input commitment")
}
