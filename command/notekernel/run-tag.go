// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/account"
	"github.com/bitmark-inc/notekernel/note"
)

type tagResult struct {
	Tag          note.Tag      `json:"tag"`
	Type         note.NoteType `json:"type"`
	High         uint32        `json:"high"`
	Low          uint32        `json:"low"`
	ReservedBits uint8         `json:"reservedBits"`
	Prefix       uint8         `json:"prefix"`
	Valid        bool          `json:"valid"`
	Error        string        `json:"error,omitempty"`
}

func runTag(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	noteType, err := parseNoteType(c.String("type"))
	if nil != err {
		return err
	}

	var tag note.Tag
	switch {
	case "" != c.String("account"):
		target, err := account.IdFromBase58(c.String("account"))
		if nil != err {
			return err
		}
		tag = note.TagFromAccount(target)
	case "" != c.String("tag"):
		tag, err = note.ParseTag(c.String("tag"))
		if nil != err {
			return err
		}
	default:
		return ErrRequiredTagOrTarget
	}

	result := tagResult{
		Tag:          tag,
		Type:         noteType,
		High:         tag.High(),
		Low:          tag.Low(),
		ReservedBits: tag.ReservedBits(),
		Prefix:       tag.Prefix(),
		Valid:        true,
	}
	if err := note.Validate(noteType, tag); nil != err {
		result.Valid = false
		result.Error = withCode(err).Error()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "tag: %s  type: %s  valid: %t\n", tag, noteType, result.Valid)
	}
	return printJson(m.w, result)
}
