// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/notekernel/storage"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	store, err := storage.Open(logger.New("storage"), m.config.Database.Name, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	summaries, err := store.Transactions()
	if nil != err {
		return err
	}

	return printJson(m.w, summaries)
}
