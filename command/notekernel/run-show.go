// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/note"
	"github.com/bitmark-inc/notekernel/storage"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == c.String("key") {
		return ErrRequiredKey
	}
	key, err := parseWord(c.String("key"))
	if nil != err {
		return err
	}

	store, err := storage.Open(logger.New("storage"), m.config.Database.Name, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	summary, err := store.Transaction(key)
	if nil != err {
		return err
	}
	notes, err := store.Notes(key)
	if nil != err {
		return err
	}

	out := struct {
		Transaction *storage.Summary `json:"transaction"`
		Notes       []note.Record    `json:"notes"`
	}{
		Transaction: summary,
		Notes:       notes,
	}
	return printJson(m.w, out)
}
